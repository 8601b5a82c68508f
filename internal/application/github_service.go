package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/github"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// GithubService proxies repository listings, caching successful answers in Redis.
type GithubService struct {
	Client   RepoLister
	Redis    redis.Cmdable
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewGithubService(client RepoLister, rdb redis.Cmdable, ttl time.Duration, logger *logrus.Logger) *GithubService {
	return &GithubService{Client: client, Redis: rdb, CacheTTL: ttl, Logger: logger}
}

func githubCacheKey(username string) string {
	return "github:repos:" + strings.ToLower(username)
}

func (s *GithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, entity.ErrGithubNotFound
	}
	cacheable := s.Redis != nil && s.CacheTTL > 0
	key := githubCacheKey(username)

	if cacheable {
		var cached json.RawMessage
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached)
		if err != nil {
			helpers.LogWarn(s.Logger, "github cache read failed", err, logrus.Fields{"key": key})
		} else if ok {
			return cached, nil
		}
	}

	repos, err := s.Client.Repos(ctx, username)
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			return nil, entity.ErrGithubNotFound
		}
		return nil, fmt.Errorf("github repos: %w", err)
	}

	if cacheable {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, repos, s.CacheTTL); err != nil {
			helpers.LogWarn(s.Logger, "github cache write failed", err, logrus.Fields{"key": key})
		}
	}
	return repos, nil
}
