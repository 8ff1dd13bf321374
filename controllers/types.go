package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/httperror"
)

// respondError maps a typed domain error to its status; anything else is
// an unknown 500.
func respondError(c *gin.Context, err error) {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{"message": httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "an unknown error occurred"})
}
