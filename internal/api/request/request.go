// Package request decodes and validates HTTP input before it reaches a
// service. Every failure is a *fiber.Error with status 400, so the API error
// handler renders it as BAD_REQUEST.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// ParseBody decodes the JSON body into out and validates it.
func ParseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON in request body")
	}
	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return decodeError(err)
	}
	if err := validate.Struct(out); err != nil {
		return validationError("Validation failed", err)
	}
	return nil
}

// ParseParams binds route parameters into out and validates them.
func ParseParams(c *fiber.Ctx, out any) error {
	if err := c.ParamsParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid parameters: "+err.Error())
	}
	if err := validate.Struct(out); err != nil {
		return validationError("Invalid parameters", err)
	}
	return nil
}

// Invalid reports a request-level rule that struct tags cannot express.
func Invalid(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+message)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Invalid(fmt.Sprintf("%s must be %s", typeErr.Field, describeKind(typeErr.Type)))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON in request body")
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64, reflect.Struct:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.Kind().String()
	}
}

func validationError(prefix string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fiber.NewError(fiber.StatusBadRequest, prefix+": "+err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return fiber.NewError(fiber.StatusBadRequest, prefix+": "+strings.Join(messages, ", "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return fe.Field() + " cannot be empty"
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
