package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/models"
)

// GamerKey is the context key the authenticated Gamer is stored under.
const GamerKey = "gamer"

// Authenticate resolves the Authorization header to a Gamer and aborts
// with 401 when the token is missing or unknown. Both "Token <key>" and
// "Bearer <key>" prefixes are accepted.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
			return
		}

		key := header
		for _, prefix := range []string{"Token ", "Bearer "} {
			if strings.HasPrefix(header, prefix) {
				key = strings.TrimPrefix(header, prefix)
				break
			}
		}

		var token models.AuthToken
		if err := config.DB.Where("key = ?", key).First(&token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		var gamer models.Gamer
		if err := config.DB.Preload("User").Where("user_id = ?", token.UserID).First(&gamer).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(GamerKey, gamer)
		c.Next()
	}
}

// CurrentGamer returns the Gamer set by Authenticate.
func CurrentGamer(c *gin.Context) models.Gamer {
	return c.MustGet(GamerKey).(models.Gamer)
}
