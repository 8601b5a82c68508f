package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/devconnector-api/pkg/response"
)

// DateLayouts are the accepted spellings of a calendar date in request bodies.
var DateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags and the "date" and "notblank" tags.
// It panics if a tag cannot be registered.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := Register(v); err != nil {
			panic(err)
		}
	})
}

// Register installs the API's tag name func, aliases and custom tags on v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=6")
	if err := v.RegisterValidation("date", validDate); err != nil {
		return fmt.Errorf("validation: register date: %w", err)
	}
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return fmt.Errorf("validation: register notblank: %w", err)
	}
	return nil
}

func validDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := ParseDate(s)
	return err == nil
}

// notBlank rejects strings made only of whitespace.
func notBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ParseDate parses s with the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range DateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ToErrors converts binding/validation errors into the API's {"errors": [...]} entries.
func ToErrors(err error) []response.FieldError {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, io.EOF) {
		return []response.FieldError{{Msg: "Invalid JSON payload", Location: "body"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.FieldError{
				Msg:      fieldLabel(fe.Field()) + " " + formatFieldError(fe),
				Param:    fe.Field(),
				Location: "body",
			})
		}
		return out
	}

	return []response.FieldError{{Msg: "Invalid payload", Location: "body"}}
}

// fieldLabel turns a json name like "fieldofstudy" into "Fieldofstudy".
func fieldLabel(name string) string {
	if name == "" {
		return "Field"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "date":
		return "must be a valid date (YYYY-MM-DD)"
	case "pwd":
		return "must be 6 or more characters"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		if param != "" {
			return fmt.Sprintf("failed '%s' validation with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
