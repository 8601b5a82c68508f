package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Guard   Guard
}

func NewProfileModule(h *handlers.ProfileHandler, g Guard) *ProfileModule {
	return &ProfileModule{Handler: h, Guard: g}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	// Public
	rg.GET("/profile", m.Handler.List)
	rg.GET("/profile/user/:user_id", m.Handler.GetByUser)
	rg.GET("/profile/search", m.Guard.PerIP(60), m.Handler.Search)
	rg.GET("/profile/github/:username", m.Guard.PerIP(30), m.Handler.GithubRepos)

	// Protected
	auth := rg.Group("/profile")
	auth.Use(m.Guard.Authed(120)...)
	{
		auth.GET("/me", m.Handler.Me)
		auth.POST("", m.Handler.Upsert)
		auth.DELETE("", m.Handler.Delete)
		auth.PUT("/experience", m.Handler.AddExperience)
		auth.DELETE("/experience/:exp_id", m.Handler.DeleteExperience)
		auth.PUT("/education", m.Handler.AddEducation)
		auth.DELETE("/education/:edu_id", m.Handler.DeleteEducation)
	}
}
