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
	"github.com/oksasatya/devconnector-api/pkg/helpers"
	"github.com/oksasatya/devconnector-api/pkg/mailer"
)

type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Mail    EmailPublisher
	AppName string
	Logger  *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, mail EmailPublisher, appName string, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Mail: mail, AppName: appName, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user, queues a welcome email and returns a signed token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, *entity.User, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", nil, entity.ErrUserExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", nil, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		Avatar:    helpers.GravatarURL(email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return "", nil, entity.ErrUserExists
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	if s.Mail != nil {
		if err := s.Mail.PublishJSON(ctx, mailer.WelcomeJob(s.AppName, u.Email, u.Name)); err != nil {
			helpers.LogWarn(s.Logger, "enqueue welcome email failed", err, logrus.Fields{"user_id": u.ID})
		}
	}

	token, err := s.issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Login checks email and password and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", entity.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user by email: %w", err)
	}
	if !helpers.CheckPassword(u.Password, password) {
		return "", entity.ErrInvalidCredentials
	}
	return s.issue(u.ID)
}

// CurrentUser loads the authenticated user; the password hash is never serialised.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *AuthService) issue(userID string) (string, error) {
	token, _, err := s.JWT.Generate(userID)
	if err != nil {
		helpers.LogError(s.Logger, "generate token failed", err, logrus.Fields{"user_id": userID})
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
