package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
)

// AuthModule serves registration and login.
// Public: POST /api/users, POST /api/auth
// Protected: GET /api/auth
type AuthModule struct {
	Handler *handlers.AuthHandler
	Guard   Guard
}

func NewAuthModule(h *handlers.AuthHandler, g Guard) *AuthModule {
	return &AuthModule{Handler: h, Guard: g}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Guard.PerIP(10), m.Handler.Register)
	rg.POST("/auth", m.Guard.PerIP(10), m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(m.Guard.Authed(120)...)
	{
		auth.GET("", m.Handler.Me)
	}
}
