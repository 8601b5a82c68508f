package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
)

// PostModule serves posts, likes and comments. Every route requires a token.
type PostModule struct {
	Handler *handlers.PostHandler
	Guard   Guard
}

func NewPostModule(h *handlers.PostHandler, g Guard) *PostModule {
	return &PostModule{Handler: h, Guard: g}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(m.Guard.Authed(120)...)
	{
		posts.POST("", m.Handler.Create)
		posts.GET("", m.Handler.List)
		posts.GET("/:id", m.Handler.Get)
		posts.DELETE("/:id", m.Handler.Delete)
		posts.PUT("/like/:id", m.Handler.Like)
		posts.PUT("/unlike/:id", m.Handler.Unlike)
		posts.POST("/comment/:id", m.Handler.Comment)
		posts.DELETE("/comment/:id/:comment_id", m.Handler.DeleteComment)
	}
}
