package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"frota-backend/pkg/apperrors"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		response.Error = err.Error()
	}
	c.JSON(statusCode, response)
}

// HandleError maps the service error taxonomy to HTTP statuses. Anything
// outside the taxonomy is a server error and its detail stays out of the
// response body.
func HandleError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case apperrors.IsConflict(err):
		ErrorResponse(c, http.StatusConflict, err.Error(), nil)
	case apperrors.IsForbidden(err):
		ErrorResponse(c, http.StatusForbidden, err.Error(), nil)
	case apperrors.IsUnauthorized(err):
		ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// ValidationErrorResponse surfaces field-level validation failures so forms
// can display them per field.
func ValidationErrorResponse(c *gin.Context, err error) {
	var messages []string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			messages = append(messages, validationErrorMessage(fieldError))
		}
	} else {
		messages = append(messages, err.Error())
	}

	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "Validation failed",
		Error:   messages,
	})
}

func validationErrorMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid UUID"
	case "min":
		return field + " must be at least " + fieldError.Param()
	case "max":
		return field + " must be at most " + fieldError.Param()
	case "len":
		return field + " must be exactly " + fieldError.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + fieldError.Param()
	case "gte":
		return field + " must be greater than or equal to " + fieldError.Param()
	default:
		return field + " is invalid"
	}
}
