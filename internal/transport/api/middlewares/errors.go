package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusPaymentRequired:
		return "insufficient funds"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "too many requests"
	default:
		return "internal server error"
	}
}

// ErrorResponse тело ответа с ошибкой. Fields заполняется только для ошибок валидации запроса.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Errors отдает первую ошибку запроса в JSON. Текст приватных ошибок клиенту не показывается.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		firstErr := c.Errors[0]
		status := c.Writer.Status()
		response := ErrorResponse{Error: statusErrorText(status)}

		switch {
		case firstErr.IsType(gin.ErrorTypePublic):
			response.Error = firstErr.Error()
		case firstErr.IsType(gin.ErrorTypeBind):
			response.Fields = bindFields(firstErr.Err)
		}

		c.AbortWithStatusJSON(status, response)
	}
}

// bindFields поле -> нарушенное правило валидации.
func bindFields(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}
	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return fields
}
