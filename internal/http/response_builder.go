// Package http exposes the calendar service as a small JSON API.
//
// This file implements the Builder Pattern for constructing JSON responses.
// It keeps status codes, headers and error bodies consistent across handlers.

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bikram/internal/bs"
	"bikram/internal/core"
)

// JSONResponseBuilder provides a fluent API for building JSON responses.
type JSONResponseBuilder struct {
	statusCode int
	body       any
	headers    map[string]string
}

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

// Header adds a custom header to the response.
func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Cacheable marks the response as safe to cache for maxAge seconds.
// Calendar answers never change for a given input.
func (b *JSONResponseBuilder) Cacheable(maxAge int) *JSONResponseBuilder {
	return b.Header("Cache-Control", "public, max-age="+itoa(maxAge))
}

// Body sets the value to encode as the response body.
func (b *JSONResponseBuilder) Body(v any) *JSONResponseBuilder {
	b.body = v
	return b
}

// Write sends the built response to the http.ResponseWriter.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	if b.body != nil {
		_ = json.NewEncoder(w).Encode(b.body)
	}
}

// ErrorResponse creates a standard JSON error response.
func ErrorResponse(statusCode int, message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(statusCode).
		Body(ErrorBody{Error: message})
}

// BadRequestError creates a 400 Bad Request error response.
func BadRequestError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, message)
}

// UnprocessableEntityError creates a 422 Unprocessable Entity error response.
func UnprocessableEntityError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusUnprocessableEntity, message)
}

// InternalServerError creates a 500 Internal Server Error response.
func InternalServerError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusInternalServerError, message)
}

// ServiceUnavailableError creates a 503 Service Unavailable error response.
func ServiceUnavailableError(message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusServiceUnavailable, message)
}

// StatusForError maps engine errors onto HTTP status codes: unparseable
// input is the client's fault (400), well-formed input the calendar cannot
// answer is 422, anything else is ours (500).
func StatusForError(err error) int {
	switch {
	case errors.Is(err, bs.ErrMalformedDate), errors.Is(err, core.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, bs.ErrUnsupportedYear),
		errors.Is(err, bs.ErrInvalidMonth),
		errors.Is(err, bs.ErrInvalidDay):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ErrorFor builds the response for err. Internal failures do not leak
// their message.
func ErrorFor(err error) *JSONResponseBuilder {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return InternalServerError("internal error")
	}
	return ErrorResponse(status, err.Error())
}
