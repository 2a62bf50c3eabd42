package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report json field names rather than Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// ValidationError sends a 400 response for validation errors. Each failing
// field is also reported under "fields", keyed by its JSON path.
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		message, fields := buildValidationMessage(validationErrs)
		logger.Info(ctx, "validation failed: "+message)
		respondWithFields(c, http.StatusBadRequest, CodeInvalidInput, message, fields)
		return
	}

	// JSON syntax or type mismatch
	logger.Info(ctx, "request binding failed: "+err.Error())
	respond(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request format. Please check your JSON syntax.")
}

// fieldPath drops the request struct name: "Req.steps[0].kind" -> "steps[0].kind".
func fieldPath(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fieldErr.Field()
}

// buildValidationMessage creates a user-friendly message from validation errors
func buildValidationMessage(validationErrs validator.ValidationErrors) (string, map[string]string) {
	if len(validationErrs) == 0 {
		return "Invalid request", nil
	}

	fields := make(map[string]string, len(validationErrs))
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		path := fieldPath(fieldErr)
		msg := getValidationMessage(path, fieldErr)
		fields[path] = msg
		messages = append(messages, msg)
	}

	if len(messages) == 1 {
		return messages[0], fields
	}
	return "Validation failed: " + strings.Join(messages, "; "), fields
}

// unit names what min/max count for the field's kind.
func unit(kind reflect.Kind) string {
	switch kind {
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	case reflect.String:
		return " characters"
	default:
		return ""
	}
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(field string, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, fieldErr.Param(), unit(fieldErr.Kind()))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, fieldErr.Param(), unit(fieldErr.Kind()))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}
