package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// Guard bundles what modules need to protect routes.
type Guard struct {
	JWT    *helpers.JWTManager
	Header string
	Redis  redis.Cmdable
}

// Authed returns the token check followed by a per-user limiter.
func (g Guard) Authed(perMinute int) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.Auth(g.JWT, g.Header),
		middleware.RateLimit(g.Redis, perMinute, time.Minute, middleware.KeyByUserID(), nil),
	}
}

// PerIP limits anonymous endpoints by client address and route.
func (g Guard) PerIP(perMinute int) gin.HandlerFunc {
	return middleware.RateLimit(g.Redis, perMinute, time.Minute, middleware.KeyByIPAndPath(), nil)
}
