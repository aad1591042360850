// Package apierror provides the closed error taxonomy used by services and the
// JSON envelope used for every 4xx/5xx response.
// Services return *Error values; handlers translate them to HTTP statuses so no
// driver detail (SQL text, stack traces) reaches the client unless attached as Detail.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind is the closed set of error categories a service may report.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindConflict:
		return "Conflict"
	case KindUnauthorized:
		return "Unauthorized"
	default:
		return "Bad Request"
	}
}

// Status maps a Kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// Error is a typed service error carrying a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// From returns err as an *Error. Anything that is not already typed becomes a
// BadRequest with the original message kept as Detail.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindBadRequest, Message: "Error al procesar la solicitud", Detail: err.Error()}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// New builds an envelope for an ad-hoc message (middleware, binding failures).
func New(status int, msg string) *APIError {
	return &APIError{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    msg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Envelope converts a typed error to its JSON body.
func (e *Error) Envelope() *APIError {
	body := New(e.Kind.Status(), e.Message)
	body.Error = e.Kind.String()
	body.Detail = e.Detail
	return body
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	*APIError
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{APIError: New(http.StatusBadRequest, "Error de validacion"), Fields: fields}
}
