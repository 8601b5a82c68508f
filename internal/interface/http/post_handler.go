package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type textRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req textRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.Text)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Post removed")
}

func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.Svc.Like(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, likes)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	likes, err := h.Svc.Unlike(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, likes)
}

func (h *PostHandler) Comment(c *gin.Context) {
	var req textRequest
	if !bind(c, &req) {
		return
	}
	comments, err := h.Svc.Comment(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, comments)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	comments, err := h.Svc.DeleteComment(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, comments)
}
