// Package response writes the API's wire envelope: resources are returned bare,
// domain failures as {"msg": ...}, validation failures as {"errors": [...]} and
// unexpected failures as a plain-text 500.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ServerErrorBody = "Server Error"

// FieldError is one entry of a validation failure.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

type MessageBody struct {
	Msg string `json:"msg"`
}

type ErrorsBody struct {
	Errors []FieldError `json:"errors"`
}

// JSON writes data as the response body without any wrapper.
func JSON[T any](c *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// Message writes {"msg": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Msg: msg})
}

// AbortMessage writes {"msg": msg} and stops the handler chain.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, MessageBody{Msg: msg})
}

// Errors writes a 400 {"errors": [...]}.
func Errors(c *gin.Context, errs ...FieldError) {
	if errs == nil {
		errs = []FieldError{}
	}
	c.JSON(http.StatusBadRequest, ErrorsBody{Errors: errs})
}

// ServerError writes the opaque 500 body; details stay in the server log.
func ServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, ServerErrorBody)
}
