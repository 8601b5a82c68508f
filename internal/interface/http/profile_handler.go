package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/response"
	"github.com/oksasatya/devconnector-api/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Github *application.GithubService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, gh *application.GithubService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Github: gh, Logger: logger}
}

type profileRequest struct {
	Status         string  `json:"status" binding:"required,notblank"`
	Skills         string  `json:"skills" binding:"required,notblank"`
	Company        *string `json:"company"`
	Website        *string `json:"website" binding:"omitempty,url"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (r profileRequest) input() application.ProfileInput {
	return application.ProfileInput{
		Status:         &r.Status,
		Skills:         &r.Skills,
		Company:        r.Company,
		Website:        r.Website,
		Location:       r.Location,
		Bio:            r.Bio,
		GithubUsername: r.GithubUsername,
		Youtube:        r.Youtube,
		Twitter:        r.Twitter,
		Facebook:       r.Facebook,
		Linkedin:       r.Linkedin,
		Instagram:      r.Instagram,
	}
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Company     string `json:"company" binding:"required,notblank"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,date"`
	To          string `json:"to" binding:"omitempty,date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required,notblank"`
	Degree       string `json:"degree" binding:"required,notblank"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required,notblank"`
	From         string `json:"from" binding:"required,date"`
	To           string `json:"to" binding:"omitempty,date"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// dates parses the validated from/to pair; to is dropped for a current entry.
func dates(from, to string, current bool) (time.Time, *time.Time) {
	f, _ := validation.ParseDate(from)
	if to == "" || current {
		return f, nil
	}
	t, err := validation.ParseDate(to)
	if err != nil {
		return f, nil
	}
	return f, &t
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.Svc.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// Upsert handles POST /api/profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profileRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.Upsert(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profiles)
}

// GetByUser handles GET /api/profile/user/:user_id.
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	p, err := h.Svc.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// Delete handles DELETE /api/profile.
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if !bind(c, &req) {
		return
	}
	from, to := dates(req.From, req.To, req.Current)
	p, err := h.Svc.AddExperience(c.Request.Context(), middleware.UserID(c), application.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id.
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	p, err := h.Svc.DeleteExperience(c.Request.Context(), middleware.UserID(c), c.Param("exp_id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if !bind(c, &req) {
		return
	}
	from, to := dates(req.From, req.To, req.Current)
	p, err := h.Svc.AddEducation(c.Request.Context(), middleware.UserID(c), application.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	p, err := h.Svc.DeleteEducation(c.Request.Context(), middleware.UserID(c), c.Param("edu_id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// GithubRepos handles GET /api/profile/github/:username.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Github.Repos(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", repos)
}

// Search handles GET /api/profile/search?q=&size=.
func (h *ProfileHandler) Search(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 || size > 50 {
		size = 10
	}
	profiles, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profiles)
}
