package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/domain/repository"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	require.NoError(t, r.Create(ctx, &entity.User{ID: "1", Email: "a@b.test"}))
	err := r.Create(ctx, &entity.User{ID: "2", Email: "A@B.test"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	u, err := r.GetByEmail(ctx, "a@b.test")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	require.NoError(t, r.Delete(ctx, "1"))
	_, err = r.GetByID(ctx, "1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostRepository_UnsavedMutationIsInvisible(t *testing.T) {
	ctx := context.Background()
	r := NewPostRepository()
	require.NoError(t, r.Create(ctx, &entity.Post{ID: "p1", Likes: []entity.Like{}}))

	p, err := r.GetByID(ctx, "p1")
	require.NoError(t, err)
	p.Likes = append(p.Likes, entity.Like{User: "u"})

	again, err := r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, again.Likes)

	require.NoError(t, r.Update(ctx, p))
	again, err = r.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, again.Likes, 1)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewPostRepository()
	now := time.Now()
	require.NoError(t, r.Create(ctx, &entity.Post{ID: "old", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, r.Create(ctx, &entity.Post{ID: "new", CreatedAt: now}))

	posts, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].ID)

	assert.ErrorIs(t, r.Update(ctx, &entity.Post{ID: "missing"}), repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "missing"), repository.ErrNotFound)
}

func TestProfileRepository_SaveReplacesByOwner(t *testing.T) {
	ctx := context.Background()
	r := NewProfileRepository()
	owner := entity.UserRef{ID: "u1"}

	require.NoError(t, r.Save(ctx, &entity.Profile{ID: "p1", User: owner, Status: "first"}))
	require.NoError(t, r.Save(ctx, &entity.Profile{ID: "p1", User: owner, Status: "second"}))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "second", all[0].Status)

	require.NoError(t, r.DeleteByUserID(ctx, "u1"))
	_, err = r.GetByUserID(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
