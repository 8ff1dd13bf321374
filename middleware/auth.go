package middleware

import (
	"net/http"
	"strings"

	"github.com/moments-social/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer credential and attaches the
// authenticated user's claims to the request context. Any failure is a
// 403, matching the rest of the authentication surface.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
			c.Abort()
			return
		}

		userID, ok := claims["userId"].(float64)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "authentication failed"})
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		c.Set(string(utils.UserContextKey), &utils.UserClaims{
			UserID: uint(userID),
			Email:  email,
		})

		c.Next()
	}
}
