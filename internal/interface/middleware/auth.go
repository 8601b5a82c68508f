package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
	"github.com/oksasatya/devconnector-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth verifies the token carried in header (or an "Authorization: Bearer"
// fallback) and sets userID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(header))
		if token == "" {
			if h := c.GetHeader("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
				token = strings.TrimSpace(h[7:])
			}
		}
		uid, err := jwt.Verify(token)
		if err != nil {
			msg := entity.ErrInvalidToken.Msg
			if errors.Is(err, helpers.ErrMissingToken) {
				msg = entity.ErrMissingToken.Msg
			}
			response.AbortMessage(c, http.StatusUnauthorized, msg)
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
