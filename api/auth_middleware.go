package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sportcenter/court-booking-backend/user"
)

type TokenVerifier interface {
	VerifyToken(token string) (user.AuthUser, error)
}

func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if len(authHeader) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}

		authUser, err := verifier.VerifyToken(token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", authUser)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser := c.MustGet("user").(user.AuthUser)

		if !authUser.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
