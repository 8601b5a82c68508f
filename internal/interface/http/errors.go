package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
	"github.com/oksasatya/devconnector-api/pkg/response"
	"github.com/oksasatya/devconnector-api/pkg/validation"
)

// statusFor maps a domain error kind to its HTTP status.
func statusFor(k entity.Kind) int {
	switch k {
	case entity.KindAuth, entity.KindForbidden:
		return http.StatusUnauthorized
	case entity.KindNotFound, entity.KindUpstream:
		return http.StatusNotFound
	case entity.KindValidation, entity.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err in the API envelope. Unknown errors are logged with the
// request id and answered with the opaque 500 body.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var de *entity.Error
	if errors.As(err, &de) {
		status := statusFor(de.Kind)
		switch {
		case de.Kind == entity.KindValidation:
			response.Errors(c, response.FieldError{Msg: de.Msg})
		case status == http.StatusInternalServerError:
			serverError(c, logger, err)
		default:
			response.Message(c, status, de.Msg)
		}
		return
	}
	serverError(c, logger, err)
}

func serverError(c *gin.Context, logger *logrus.Logger, err error) {
	helpers.LogError(logger, "request failed", err, logrus.Fields{
		"request_id": c.GetString(middleware.CtxRequestIDKey),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	})
	response.ServerError(c)
}

// bind decodes the JSON body into req and writes the 400 errors envelope on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Errors(c, validation.ToErrors(err)...)
		return false
	}
	return true
}
