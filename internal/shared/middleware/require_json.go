package middleware

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management/internal/shared/response"
)

// RequireJSON rejects POST/PUT/PATCH bodies that are not application/json with 415.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			response.UnsupportedMediaType(c)
			return
		}
		c.Next()
	}
}
