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

// ProfileRepository stores each profile as one JSONB document; user_id is
// lifted into its own unique column so there is at most one profile per user.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// upsertProfileSQL keeps the first row's id on conflict and writes it back
// into doc._id, so a racing first-time upsert cannot split the two.
const upsertProfileSQL = `
	INSERT INTO profiles (id, user_id, doc, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (user_id) DO UPDATE
	SET doc = jsonb_set(EXCLUDED.doc, '{_id}', to_jsonb(profiles.id::text)), updated_at = now()
	RETURNING id::text
`

// Save inserts or replaces the user's profile. p.ID is set to the stored id.
func (r *ProfileRepository) Save(ctx context.Context, p *entity.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	var id string
	if err := r.pool.QueryRow(ctx, upsertProfileSQL, p.ID, p.User.ID, doc, p.CreatedAt).Scan(&id); err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	if !validID(userID) {
		return nil, repository.ErrNotFound
	}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM profiles WHERE user_id = $1`, userID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := &entity.Profile{}
	if err := json.Unmarshal(doc, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Profile{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		p := &entity.Profile{}
		if err := json.Unmarshal(doc, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if !validID(userID) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	return notFoundIfZero(tag)
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
