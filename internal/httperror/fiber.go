package httperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler is the fiber error handler for the service. httperror.Error
// values control the status code and external message; anything else is a
// 500 with a generic message. The underlying error is logged, not returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var httpErr Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code != 0 {
			code = httpErr.Code
		}
		if httpErr.ExternalMsg != "" {
			message = httpErr.ExternalMsg
		}
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logger := zerolog.Ctx(c.UserContext())
	event := logger.Error()
	if code < fiber.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Err(err).Int("status", code).Str("path", c.Path()).Msg("Request failed")

	return c.Status(code).JSON(fiber.Map{"error": message})
}
