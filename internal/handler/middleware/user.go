package middleware

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "user_id"
	maxUserIDLen = 64
)

// RequireUserID validates the :user path segment and stores it on the context.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("user"))
		if userID == "" || utf8.RuneCountInString(userID) > maxUserIDLen {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"message": "Invalid user id"},
			})
			c.Abort()
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// LimitBody caps the request body so oversized utterances fail at binding.
func LimitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
