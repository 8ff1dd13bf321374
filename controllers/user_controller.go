package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/services"
	"github.com/moments-social/api-go/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// followInput carries the wire keys the frontend has always sent.
type followInput struct {
	FollowedID uint `json:"idUsuarioSeguido" binding:"required"`
	FollowerID uint `json:"idUsuarioSeguidor" binding:"required"`
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Users.GetUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find user for the provided id"})
		return
	}

	user, err := uc.Users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find user for the provided id"})
		return
	}

	followers, err := uc.Users.GetFollowers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": followers})
}

func (uc *UserController) GetFollows(c *gin.Context) {
	id, err := parseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "could not find user for the provided id"})
		return
	}

	follows, err := uc.Users.GetFollows(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": follows})
}

func (uc *UserController) Follow(c *gin.Context) {
	if user := utils.GetUser(c); user == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
		return
	}

	var input followInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	if err := uc.Users.Follow(c.Request.Context(), input.FollowedID, input.FollowerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "seguido"})
}

func (uc *UserController) Unfollow(c *gin.Context) {
	if user := utils.GetUser(c); user == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
		return
	}

	var input followInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	if err := uc.Users.Unfollow(c.Request.Context(), input.FollowedID, input.FollowerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "seguido"})
}
