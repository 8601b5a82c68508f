package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

func TestPostService_CreateCopiesAuthor(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "Jane", "jane@example.com")

	p, err := f.post.Create(context.Background(), uid, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, uid, p.User)
	assert.Equal(t, "Jane", p.Name)
	assert.Equal(t, "hello", p.Text)
	assert.NotNil(t, p.Likes)
	assert.NotNil(t, p.Comments)
}

func TestPostService_CreateUnknownAuthor(t *testing.T) {
	f := newFixture(t)
	_, err := f.post.Create(context.Background(), "ghost", "hi")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestPostService_ListNewestFirst(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "A", "a@example.com")
	ctx := context.Background()

	first, err := f.post.Create(ctx, uid, "first")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := f.post.Create(ctx, uid, "second")
	require.NoError(t, err)

	posts, err := f.post.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostService_LikeTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "A", "a@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, uid, "hi")
	require.NoError(t, err)

	likes, err := f.post.Like(ctx, uid, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Like{{User: uid}}, likes)

	_, err = f.post.Like(ctx, uid, p.ID)
	assert.ErrorIs(t, err, entity.ErrPostAlreadyLiked)

	stored, err := f.post.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Likes, 1)
}

func TestPostService_LikesAreNewestFirst(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "A", "a@example.com")
	b := f.register(t, "B", "b@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, a, "hi")
	require.NoError(t, err)

	_, err = f.post.Like(ctx, a, p.ID)
	require.NoError(t, err)
	likes, err := f.post.Like(ctx, b, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Like{{User: b}, {User: a}}, likes)
}

func TestPostService_UnlikeRoundTrip(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "A", "a@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, uid, "hi")
	require.NoError(t, err)

	_, err = f.post.Unlike(ctx, uid, p.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotLiked)

	_, err = f.post.Like(ctx, uid, p.ID)
	require.NoError(t, err)
	likes, err := f.post.Unlike(ctx, uid, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, likes)
	assert.Empty(t, likes)
}

func TestPostService_LikeMissingPost(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "A", "a@example.com")
	_, err := f.post.Like(context.Background(), uid, "nope")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestPostService_DeleteRequiresOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.register(t, "A", "a@example.com")
	other := f.register(t, "B", "b@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, owner, "hi")
	require.NoError(t, err)

	assert.ErrorIs(t, f.post.Delete(ctx, other, p.ID), entity.ErrPostDeleteForbidden)
	_, err = f.post.Get(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, f.post.Delete(ctx, owner, p.ID))
	_, err = f.post.Get(ctx, p.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	assert.ErrorIs(t, f.post.Delete(ctx, owner, p.ID), entity.ErrPostNotFound)
}

func TestPostService_CommentsNewestFirst(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "A", "a@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, uid, "hi")
	require.NoError(t, err)

	const n = 4
	var comments []entity.Comment
	for i := 0; i < n; i++ {
		comments, err = f.post.Comment(ctx, uid, p.ID, fmt.Sprintf("c%d", i))
		require.NoError(t, err)
	}
	require.Len(t, comments, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("c%d", n-1-i), comments[i].Text)
	}
}

func TestPostService_DeleteCommentByID(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "A", "a@example.com")
	b := f.register(t, "B", "b@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, a, "hi")
	require.NoError(t, err)

	// a writes two comments, b one; deleting a's older one must leave the newer.
	_, err = f.post.Comment(ctx, a, p.ID, "older")
	require.NoError(t, err)
	_, err = f.post.Comment(ctx, b, p.ID, "from b")
	require.NoError(t, err)
	comments, err := f.post.Comment(ctx, a, p.ID, "newer")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	older := comments[2]
	fromB := comments[1]

	_, err = f.post.DeleteComment(ctx, a, p.ID, fromB.ID)
	assert.ErrorIs(t, err, entity.ErrCommentDeleteForbidden)

	_, err = f.post.DeleteComment(ctx, a, p.ID, "missing")
	assert.ErrorIs(t, err, entity.ErrCommentNotFound)

	comments, err = f.post.DeleteComment(ctx, a, p.ID, older.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Text)
	assert.Equal(t, "from b", comments[1].Text)
}

func TestPostService_FailedMutationWritesNothing(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "A", "a@example.com")
	b := f.register(t, "B", "b@example.com")
	ctx := context.Background()
	p, err := f.post.Create(ctx, a, "hi")
	require.NoError(t, err)
	comments, err := f.post.Comment(ctx, a, p.ID, "mine")
	require.NoError(t, err)

	_, err = f.post.DeleteComment(ctx, b, p.ID, comments[0].ID)
	require.ErrorIs(t, err, entity.ErrCommentDeleteForbidden)

	stored, err := f.post.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 1)
}
