package repository

import (
	"context"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

// PostRepository persists whole post documents. List returns newest first.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Delete(ctx context.Context, id string) error
}
