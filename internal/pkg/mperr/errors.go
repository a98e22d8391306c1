package mperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeDateOutOfRange = "DATE_OUT_OF_RANGE"
	CodeUnauthorized   = "UNAUTHORIZED"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrDateOutOfRange is returned when the perpetual calendar cannot answer
	// for the requested date. Never silently defaulted: a wrong chart that
	// looks valid is worse than an error.
	ErrDateOutOfRange = New(fiber.StatusBadRequest, CodeDateOutOfRange, "birth date is outside the supported almanac range")

	// ErrUnauthorized is returned when the admin key is missing or wrong.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "unauthorized")
)

type Extras map[string]any

type MingpanError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *MingpanError {
	return &MingpanError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with a formatted message; the receiver is
// left untouched so the package-level sentinels stay immutable.
func (e MingpanError) Msg(format string, parts ...any) *MingpanError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e MingpanError) WithExtras(extras Extras) *MingpanError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *MingpanError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *MingpanError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
