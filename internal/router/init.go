package router

import (
	"github.com/oksasatya/devconnector-api/internal/container"
	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
	"github.com/oksasatya/devconnector-api/internal/router/modules"
)

// InitModules builds the handlers from the container and registers every
// feature module. Call it once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	authGuard := modules.Guard{JWT: c.JWT, Header: c.Config.AuthHeader, Redis: c.Redis}

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.Auth, c.Logger), authGuard))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(c.Profiles, c.Github, c.Logger), authGuard))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(c.Posts, c.Logger), authGuard))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
