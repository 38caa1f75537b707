// Package validator wires go-playground/validator into gin binding and turns
// binding failures into client messages.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/healthone/clinic-api/pkg/errors"
)

const (
	MsgRequiredFields = "Please provide all required fields"
	MsgInvalidEmail   = "Invalid email format"
	MsgInvalidBody    = "Invalid request body"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {}, "AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

// Register adds the custom tags and json field naming to v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register hhmm validator: %w", err)
	}

	if err := v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := bloodTypes[s]
		return ok
	}); err != nil {
		return fmt.Errorf("failed to register bloodtype validator: %w", err)
	}
	return nil
}

// RegisterGin registers on the validator gin uses for ShouldBind.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return Register(v)
}

// BindingError maps an error from ShouldBindJSON to a validation error.
func BindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(fieldMessage(verrs), err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(fmt.Sprintf("Invalid value for %s", typeErr.Field), err)
	}

	if errors.Is(err, io.EOF) {
		return apperrors.Validation(MsgRequiredFields, err)
	}
	return apperrors.Validation(MsgInvalidBody, err)
}

// fieldMessage reports the first failure; missing fields share one message.
func fieldMessage(verrs validator.ValidationErrors) string {
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return MsgRequiredFields
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "email":
		return MsgInvalidEmail
	case "min":
		if fe.Field() == "password" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Field() == "password" {
			return fmt.Sprintf("Password must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), orZero(fe.Param(), fe.Tag()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "hhmm":
		return fmt.Sprintf("%s must be in HH:MM format", fe.Field())
	case "bloodtype":
		return "Invalid blood type"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func orZero(param, tag string) string {
	if tag == "gte" {
		return "or equal to " + param
	}
	return param
}
