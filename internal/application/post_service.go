package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	repo "github.com/oksasatya/devconnector-api/internal/domain/repository"
)

type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create publishes a post authored by userID with the author's name and avatar copied in.
func (s *PostService) Create(ctx context.Context, userID, text string) (*entity.Post, error) {
	u, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{
		ID:        uuid.NewString(),
		User:      u.ID,
		Text:      strings.TrimSpace(text),
		Name:      u.Name,
		Avatar:    u.Avatar,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.load(ctx, id)
}

// Delete removes the post if actorID wrote it.
func (s *PostService) Delete(ctx context.Context, actorID, id string) error {
	p, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanModifyPost(p, actorID) {
		return entity.ErrPostDeleteForbidden
	}
	if err := s.Posts.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like adds actorID to the like set; a second like by the same user is a conflict.
func (s *PostService) Like(ctx context.Context, actorID, id string) ([]entity.Like, error) {
	p, err := s.mutate(ctx, id, func(p *entity.Post) error {
		if entity.Find(p.Likes, entity.LikedBy(actorID)) != nil {
			return entity.ErrPostAlreadyLiked
		}
		p.Likes = entity.Prepend(p.Likes, entity.Like{User: actorID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity.Clone(p.Likes), nil
}

// Unlike removes actorID's like; it fails if the user has not liked the post.
func (s *PostService) Unlike(ctx context.Context, actorID, id string) ([]entity.Like, error) {
	p, err := s.mutate(ctx, id, func(p *entity.Post) error {
		likes, ok := entity.RemoveFirst(p.Likes, entity.LikedBy(actorID))
		if !ok {
			return entity.ErrPostNotLiked
		}
		p.Likes = likes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity.Clone(p.Likes), nil
}

// Comment prepends a comment by actorID and returns the comment list.
func (s *PostService) Comment(ctx context.Context, actorID, id, text string) ([]entity.Comment, error) {
	u, err := s.author(ctx, actorID)
	if err != nil {
		return nil, err
	}
	p, err := s.mutate(ctx, id, func(p *entity.Post) error {
		p.Comments = entity.Prepend(p.Comments, entity.Comment{
			ID:        uuid.NewString(),
			User:      u.ID,
			Text:      strings.TrimSpace(text),
			Name:      u.Name,
			Avatar:    u.Avatar,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity.Clone(p.Comments), nil
}

// DeleteComment removes commentID if actorID wrote it. The comment is removed
// by its own id, never by matching the author.
func (s *PostService) DeleteComment(ctx context.Context, actorID, id, commentID string) ([]entity.Comment, error) {
	p, err := s.mutate(ctx, id, func(p *entity.Post) error {
		c := entity.Find(p.Comments, entity.CommentWithID(commentID))
		if c == nil {
			return entity.ErrCommentNotFound
		}
		if !entity.CanModifyComment(c, actorID) {
			return entity.ErrCommentDeleteForbidden
		}
		p.Comments, _ = entity.RemoveFirst(p.Comments, entity.CommentWithID(commentID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity.Clone(p.Comments), nil
}

// mutate loads the post, applies fn and persists the whole document.
// Nothing is written when fn fails.
func (s *PostService) mutate(ctx context.Context, id string, fn func(*entity.Post) error) (*entity.Post, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

func (s *PostService) load(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *PostService) author(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
