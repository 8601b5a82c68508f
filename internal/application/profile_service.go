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
)

type ProfileService struct {
	Profiles repo.ProfileRepository
	Users    repo.UserRepository
	Index    ProfileIndexer
	Logger   *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, index ProfileIndexer, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Users: users, Index: index, Logger: logger}
}

// ProfileInput carries the fields of an upsert. Nil or empty values leave the
// stored field untouched.
type ProfileInput struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         *string // comma separated

	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ParseSkills splits a comma separated list into trimmed, non-empty tokens.
func ParseSkills(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Me returns the caller's profile.
func (s *ProfileService) Me(ctx context.Context, userID string) (*entity.Profile, error) {
	return s.load(ctx, userID)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	return s.load(ctx, userID)
}

func (s *ProfileService) List(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := s.Profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or applies in as a partial update of it.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		u, uerr := s.Users.GetByID(ctx, userID)
		if uerr != nil {
			if errors.Is(uerr, repo.ErrNotFound) {
				return nil, entity.ErrUserNotFound
			}
			return nil, fmt.Errorf("get user: %w", uerr)
		}
		p = &entity.Profile{
			ID:         uuid.NewString(),
			User:       u.Ref(),
			Skills:     []string{},
			Experience: []entity.Experience{},
			Education:  []entity.Education{},
			CreatedAt:  time.Now().UTC(),
		}
	case err != nil:
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !entity.CanModifyProfile(p, userID) {
		return nil, entity.ErrNotAuthorized
	}

	applyProfileInput(p, in)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func applyProfileInput(p *entity.Profile, in ProfileInput) {
	set(&p.Company, in.Company)
	set(&p.Website, in.Website)
	set(&p.Location, in.Location)
	set(&p.Bio, in.Bio)
	set(&p.GithubUsername, in.GithubUsername)
	if in.Status != nil && *in.Status != "" {
		p.Status = *in.Status
	}
	if in.Skills != nil && *in.Skills != "" {
		p.Skills = ParseSkills(*in.Skills)
	}
	set(&p.Social.Youtube, in.Youtube)
	set(&p.Social.Twitter, in.Twitter)
	set(&p.Social.Facebook, in.Facebook)
	set(&p.Social.Linkedin, in.Linkedin)
	set(&p.Social.Instagram, in.Instagram)
}

func set(dst **string, v *string) {
	if v == nil || *v == "" {
		return
	}
	val := *v
	*dst = &val
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Delete removes the caller's profile and then the user. The two writes are
// independent; a missing profile does not stop the user removal.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if err := s.Profiles.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("delete profile: %w", err)
	}
	if s.Index != nil {
		if err := s.Index.Remove(ctx, userID); err != nil {
			helpers.LogWarn(s.Logger, "remove profile from index failed", err, logrus.Fields{"user_id": userID})
		}
	}
	if err := s.Users.Delete(ctx, userID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// AddExperience prepends an experience entry and returns the whole profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*entity.Profile, error) {
	return s.mutate(ctx, userID, func(p *entity.Profile) error {
		p.Experience = entity.Prepend(p.Experience, entity.Experience{
			ID:          uuid.NewString(),
			Title:       in.Title,
			Company:     in.Company,
			Location:    optional(in.Location),
			From:        in.From,
			To:          in.To,
			Current:     in.Current,
			Description: optional(in.Description),
		})
		return nil
	})
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID string) (*entity.Profile, error) {
	return s.mutate(ctx, userID, func(p *entity.Profile) error {
		exp, ok := entity.RemoveFirst(p.Experience, entity.ExperienceWithID(expID))
		if !ok {
			return entity.ErrExperienceNotFound
		}
		p.Experience = exp
		return nil
	})
}

// AddEducation prepends an education entry and returns the whole profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*entity.Profile, error) {
	return s.mutate(ctx, userID, func(p *entity.Profile) error {
		p.Education = entity.Prepend(p.Education, entity.Education{
			ID:           uuid.NewString(),
			School:       in.School,
			Degree:       in.Degree,
			FieldOfStudy: in.FieldOfStudy,
			From:         in.From,
			To:           in.To,
			Current:      in.Current,
			Description:  optional(in.Description),
		})
		return nil
	})
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID string) (*entity.Profile, error) {
	return s.mutate(ctx, userID, func(p *entity.Profile) error {
		edu, ok := entity.RemoveFirst(p.Education, entity.EducationWithID(eduID))
		if !ok {
			return entity.ErrEducationNotFound
		}
		p.Education = edu
		return nil
	})
}

// Search looks profiles up in the search index; without one it finds nothing.
func (s *ProfileService) Search(ctx context.Context, q string, size int) ([]*entity.Profile, error) {
	q = strings.TrimSpace(q)
	if s.Index == nil || q == "" {
		return []*entity.Profile{}, nil
	}
	out, err := s.Index.Search(ctx, q, size)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}
	return out, nil
}

func (s *ProfileService) mutate(ctx context.Context, userID string, fn func(*entity.Profile) error) (*entity.Profile, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !entity.CanModifyProfile(p, userID) {
		return nil, entity.ErrNotAuthorized
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) load(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, entity.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *ProfileService) save(ctx context.Context, p *entity.Profile) error {
	if err := s.Profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if s.Index != nil {
		if err := s.Index.Index(ctx, p); err != nil {
			helpers.LogWarn(s.Logger, "index profile failed", err, logrus.Fields{"user_id": p.User.ID})
		}
	}
	return nil
}
