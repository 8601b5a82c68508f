package application

import (
	"context"
	"encoding/json"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

// ProfileIndexer mirrors profiles into a search backend.
type ProfileIndexer interface {
	Index(ctx context.Context, p *entity.Profile) error
	Remove(ctx context.Context, userID string) error
	Search(ctx context.Context, q string, size int) ([]*entity.Profile, error)
}

// EmailPublisher enqueues email jobs for the background worker.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// RepoLister fetches a GitHub user's repositories as a raw JSON array.
type RepoLister interface {
	Repos(ctx context.Context, username string) (json.RawMessage, error)
}
