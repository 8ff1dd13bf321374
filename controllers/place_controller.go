package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/services"
	"github.com/moments-social/api-go/storage"
	"github.com/moments-social/api-go/utils"
)

type PlaceController struct {
	Places *services.PlaceService
	Media  storage.MediaStorage
}

func NewPlaceController(places *services.PlaceService, media storage.MediaStorage) *PlaceController {
	return &PlaceController{Places: places, Media: media}
}

type createPlaceInput struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required,min=5"`
	Address     string `form:"address" binding:"required"`
}

type updatePlaceInput struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description" binding:"required,min=5"`
}

func (pc *PlaceController) GetPlaces(c *gin.Context) {
	places, err := pc.Places.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

func (pc *PlaceController) GetPlaceByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find a place for the provided id"})
		return
	}

	place, err := pc.Places.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": place})
}

func (pc *PlaceController) GetPlacesByUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find places for the provided user id"})
		return
	}

	places, err := pc.Places.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

func (pc *PlaceController) CreatePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
		return
	}

	var input createPlaceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	imageRef, err := pc.Media.SaveImage(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	place, err := pc.Places.Create(c.Request.Context(), user.UserID, services.PlaceInput{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
	}, imageRef)
	if err != nil {
		pc.cleanupImage(imageRef)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"place": place})
}

func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find a place for the provided id"})
		return
	}

	var input updatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	place, err := pc.Places.Update(c.Request.Context(), id, user.UserID, input.Title, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": place})
}

func (pc *PlaceController) DeletePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find place for this id"})
		return
	}

	if err := pc.Places.Delete(c.Request.Context(), id, user.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted place"})
}

// cleanupImage removes an already-uploaded image after the create failed
// further down. Fire and forget; it must never delay the error response.
func (pc *PlaceController) cleanupImage(ref string) {
	go func() {
		if err := pc.Media.Delete(context.Background(), ref); err != nil {
			log.Printf("could not remove uploaded image %s: %v", ref, err)
		}
	}()
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
