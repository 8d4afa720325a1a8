// Package validation holds the request rules shared by gin binding and the
// service layer, and translates validator failures into field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	setupOnce sync.Once
	setupErr  error
)

// ValidUsername reports whether s is 3-30 letters, digits or underscores.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// RegisterRules installs the custom tags on v and makes field errors report
// json names.
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return ValidUsername(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("visibility", func(fl validator.FieldLevel) bool {
		return models.Visibility(fl.Field().String()).Valid()
	})
}

// Setup registers the rules on gin's binding engine. Only the first call
// does any work.
func Setup() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		setupErr = RegisterRules(v)
	})
	return setupErr
}

// GetValidator returns the shared validator. It reads the same "binding" tags
// gin does.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		if err := RegisterRules(validate); err != nil {
			panic(err)
		}
	})
	return validate
}

// Struct validates s and returns a Validation *apperr.Error listing every
// failed field, or nil.
func Struct(s any) error {
	if err := GetValidator().Struct(s); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate converts a validator or binding error into a Validation error.
// Anything else (malformed JSON, wrong types) becomes a single body error.
func Translate(err error) *apperr.Error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperr.Validation("Invalid request body", apperr.FieldError{Field: "body", Message: err.Error()})
	}
	fields := make([]apperr.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperr.Validation("Validation failed", fields...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "username":
		return "must be 3-30 letters, digits or underscores"
	case "visibility":
		return "must be one of public, friends, private"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	}
	return "is invalid"
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
