package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/moments-social/api-go/models"
	"github.com/moments-social/api-go/repositories"
	"github.com/moments-social/api-go/storage"
	"github.com/moments-social/api-go/utils"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthController struct {
	Store     repositories.Store
	Media     storage.MediaStorage
	JWTSecret string
}

func NewAuthController(store repositories.Store, media storage.MediaStorage, jwtSecret string) *AuthController {
	return &AuthController{Store: store, Media: media, JWTSecret: jwtSecret}
}

type signupInput struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	ctx := c.Request.Context()

	_, err = ac.Store.Users().GetByEmail(ctx, input.Email)
	if err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "user exists already, please login instead"})
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "signing up failed, please try again later"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create user, please try again later"})
		return
	}

	imageRef, err := ac.Media.SaveImage(ctx, file)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Image:     imageRef,
		Followers: pq.Int64Array{},
		Follows:   pq.Int64Array{},
		Places:    pq.Int64Array{},
	}

	if err := ac.Store.Users().Create(ctx, &user); err != nil {
		ac.cleanupImage(imageRef)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "signing up failed, please try again later"})
		return
	}

	token, err := utils.GenerateToken(ac.JWTSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "signing up failed, please try again later"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"userId": user.ID,
		"email":  user.Email,
		"token":  token,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid inputs passed, please check your data"})
		return
	}

	user, err := ac.Store.Users().GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": "invalid credentials, could not log you in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "logging in failed, please try again later"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "invalid credentials, could not log you in"})
		return
	}

	token, err := utils.GenerateToken(ac.JWTSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "logging in failed, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": user.ID,
		"email":  user.Email,
		"token":  token,
	})
}

func (ac *AuthController) cleanupImage(ref string) {
	go func() {
		if err := ac.Media.Delete(context.Background(), ref); err != nil {
			log.Printf("could not remove uploaded image %s: %v", ref, err)
		}
	}()
}
