// Package apperr defines the error taxonomy shared by the services. Handlers
// classify errors with errors.As and map each type to one HTTP outcome.
package apperr

import (
	"fmt"
	"unicode/utf8"
)

// MaxBodyExcerpt bounds the upstream response text carried by an error.
const MaxBodyExcerpt = 1000

// Category strings are part of the public error body and must stay stable.
const (
	CategoryValidation  = "Bad Request"
	CategoryNotFound    = "Not Found"
	CategoryConflict    = "Conflict"
	CategoryUnavailable = "Service Unavailable"
	CategoryBadGateway  = "Bad Gateway"
	CategoryInternal    = "Internal Server Error"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// UpstreamUnavailableError means the call to a dependency never completed:
// connection refused, DNS failure, timeout.
type UpstreamUnavailableError struct {
	Service string
	Details string
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s is unavailable: %s", e.Service, e.Details)
}

// UpstreamBadResponseError means the dependency answered, but not in a way
// the caller understands.
type UpstreamBadResponseError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamBadResponseError) Error() string {
	return fmt.Sprintf("%s returned unexpected status %d", e.Service, e.StatusCode)
}

func Validation(msg string) error { return &ValidationError{Message: msg} }

func NotFound(msg string) error { return &NotFoundError{Message: msg} }

func Conflict(msg string) error { return &ConflictError{Message: msg} }

func Unavailable(service string, cause error) error {
	return &UpstreamUnavailableError{Service: service, Details: cause.Error()}
}

func BadResponse(service string, status int, body string) error {
	return &UpstreamBadResponseError{Service: service, StatusCode: status, Body: Excerpt(body, MaxBodyExcerpt)}
}

// Excerpt cuts s to at most n characters without splitting a rune.
func Excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
