package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/domain/repository"
)

// PostRepository stores each post, likes and comments included, as one JSONB document.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO posts (id, user_id, doc, created_at)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.User, doc, p.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

// Update replaces the stored document; concurrent writers are last-write-wins.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	if !validID(p.ID) {
		return repository.ErrNotFound
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE posts SET doc = $1, updated_at = now() WHERE id = $2`, doc, p.ID)
	if err != nil {
		return err
	}
	return notFoundIfZero(tag)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM posts WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := &entity.Post{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Post{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		p := &entity.Post{}
		if err := json.Unmarshal(doc, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundIfZero(tag)
}

var _ repository.PostRepository = (*PostRepository)(nil)
