package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kosmi-edu/kosmi/internal/auth"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/lessongen"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/speech"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// Error codes.
const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeRateLimited  = "rate_limited"
	CodeUpstream     = "upstream_error"
	CodeInternal     = "internal"
)

// genericMessage is shown for failures whose details stay in the logs.
const genericMessage = "Er ging iets mis"

// APIError is the body of an error response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps APIError.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// Error is an error with a fixed HTTP status.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func badRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: msg}
}

// classify maps an error to a status, code and client-visible message.
func classify(err error) (int, string, string) {
	var apiErr *Error
	var rateLimit *llm.ErrRateLimit
	var unavailable *llm.ErrProviderUnavailable
	var vendor *speech.VendorError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status, apiErr.Code, apiErr.Message
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, CodeUnauthorized, "Niet ingelogd"
	case errors.Is(err, content.ErrNotFound), errors.Is(err, content.ErrNoVariants), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, "Niet gevonden"
	case errors.Is(err, chat.ErrMissingFields),
		errors.Is(err, speech.ErrEmptyInput),
		errors.Is(err, speech.ErrTextTooLong),
		errors.Is(err, points.ErrInvalidEvent),
		errors.Is(err, points.ErrAmountMismatch),
		errors.Is(err, progress.ErrLessonRequired),
		errors.Is(err, progress.ErrReflectionTooLong),
		errors.Is(err, lessongen.ErrInvalidInput):
		return http.StatusBadRequest, CodeBadRequest, err.Error()
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests, CodeRateLimited, "Even geduld, probeer het zo nog eens"
	case errors.As(err, &unavailable), errors.As(err, &vendor):
		return http.StatusBadGateway, CodeUpstream, genericMessage
	default:
		return http.StatusInternalServerError, CodeInternal, genericMessage
	}
}

// respondError writes the error envelope. Server-side failures are logged.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status, code, msg := classify(err)
	if status >= 500 {
		log.Error("request failed", "path", c.FullPath(), "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}
