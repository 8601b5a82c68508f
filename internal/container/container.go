// Package container builds the application's shared components once at startup
// and hands them to the router modules.
package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/config"
	"github.com/oksasatya/devconnector-api/internal/application"
	repo "github.com/oksasatya/devconnector-api/internal/domain/repository"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/github"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// Stores groups the repositories of one storage backend.
type Stores struct {
	Users    repo.UserRepository
	Profiles repo.ProfileRepository
	Posts    repo.PostRepository
}

// Options carries the optional collaborators. Leave a field nil to disable it;
// never assign a typed nil pointer.
type Options struct {
	Redis  redis.Cmdable
	Index  application.ProfileIndexer
	Mail   application.EmailPublisher
	Github application.RepoLister
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	JWT    *helpers.JWTManager
	Redis  redis.Cmdable

	Auth     *application.AuthService
	Profiles *application.ProfileService
	Posts    *application.PostService
	Github   *application.GithubService
}

func New(cfg *config.Config, logger *logrus.Logger, stores Stores, opts Options) *Container {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	jwt := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	repos := opts.Github
	if repos == nil {
		repos = github.NewClient(cfg.GitHubAPIURL, cfg.GitHubClientID, cfg.GitHubClientSecret)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		JWT:    jwt,
		Redis:  opts.Redis,

		Auth:     application.NewAuthService(stores.Users, jwt, opts.Mail, cfg.AppName, logger),
		Profiles: application.NewProfileService(stores.Profiles, stores.Users, opts.Index, logger),
		Posts:    application.NewPostService(stores.Posts, stores.Users, logger),
		Github:   application.NewGithubService(repos, opts.Redis, cfg.GitHubCacheTTL, logger),
	}
}
