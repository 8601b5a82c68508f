package repository

import (
	"context"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

// ProfileRepository persists whole profile documents keyed by their owner.
// Save inserts or replaces the profile owned by p.User.ID.
type ProfileRepository interface {
	Save(ctx context.Context, p *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
