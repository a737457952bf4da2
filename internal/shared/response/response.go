package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"book-management/internal/shared/apperror"
	"book-management/internal/shared/i18n"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// ErrorCodeKey holds the public error code of the response in the gin context.
const ErrorCodeKey = "error_code"

// ErrorResponse renders an error envelope for code with its localized message.
func ErrorResponse(c *gin.Context, statusCode int, code string, details []FieldError) {
	c.Set(ErrorCodeKey, code)
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: i18n.Message(c, code),
			Details: details,
		},
	})
}

// Error maps err onto the envelope. Application errors keep their code, anything else
// becomes INTERNAL_ERROR. The diagnostic text is logged and never sent to the client.
func Error(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	logFailure(c, status, err)
	ErrorResponse(c, status, apperror.PublicCode(err), nil)
}

// BindError renders a failure from ShouldBindJSON or a request's Validate method.
func BindError(c *gin.Context, err error) {
	logFailure(c, http.StatusBadRequest, err)

	details, ok := fieldErrors(c, err)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, apperror.CodeRequestMalformed, nil)
		return
	}
	ErrorResponse(c, http.StatusBadRequest, apperror.CodeValidationFailed, details)
}

// Common error responses
func NotFound(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, apperror.CodeRouteNotFound, nil)
}

func MethodNotAllowed(c *gin.Context) {
	ErrorResponse(c, http.StatusMethodNotAllowed, apperror.CodeMethodNotAllowed, nil)
}

func UnsupportedMediaType(c *gin.Context) {
	ErrorResponse(c, http.StatusUnsupportedMediaType, apperror.CodeUnsupportedMediaType, nil)
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, apperror.CodeInternal, nil)
}

func logFailure(c *gin.Context, status int, err error) {
	var event *zerolog.Event
	if status >= http.StatusInternalServerError {
		event = log.Error()
	} else {
		event = log.Warn()
	}

	event = event.
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err)

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		event = event.Str("code", appErr.Code).Str("kind", appErr.Kind.String())
	}
	event.Msg("Request failed")
}
