package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Error is the single error shape that crosses the service boundary.
// The central fiber error handler maps it to {success:false, message}.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

// Auth covers bad credentials; the message must stay identical for
// "no such email" and "wrong password".
func Auth(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func InvalidToken(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Email(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}

func Upload(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}

func Internal(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}

// Unauthenticated is returned by the session gate for every failure mode
// (missing, expired or tampered cookie) with one uniform message.
func Unauthenticated() *Error {
	return New(fiber.StatusUnauthorized, "You are not logged in / Unauthenticated")
}

// ErrorHandler is the single funnel every handler error flows through; it
// maps the error taxonomy to status codes and the {success:false, message}
// body. Wired as the fiber app's ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return respond(ctx, appErr.Status, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return respond(ctx, fiberErr.Code, fiberErr.Message)
	}

	log.Error().Err(err).Str("path", ctx.Path()).Msg("unhandled error")
	return respond(ctx, fiber.StatusInternalServerError, "Internal server error")
}

func respond(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
