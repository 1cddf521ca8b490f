package app

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/lifeline-restoration/call-intake-api/internal/clients/sheets"
	"github.com/lifeline-restoration/call-intake-api/internal/clients/sms"
	"github.com/lifeline-restoration/call-intake-api/internal/config"
	"github.com/lifeline-restoration/call-intake-api/internal/controllers/intake"
	"github.com/lifeline-restoration/call-intake-api/internal/httperror"
	"github.com/lifeline-restoration/call-intake-api/internal/services/dispatch"
)

// CreateServer wires the downstream clients, the dispatcher, and the fiber
// app from settings.
func CreateServer(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	sheetsClient, err := sheets.New(ctx, []byte(settings.GoogleCredentialsJSON), settings.SpreadsheetID, settings.SheetRange)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	smsClient := sms.New(settings.TwilioAccountSID, settings.TwilioAuthToken,
		settings.TwilioFromNumber, settings.TwilioNotifyNumber)

	dispatcher := dispatch.New(sheetsClient, smsClient, settings.DedupeTTL, settings.DispatchTimeout, logger)

	controller := intake.NewController(dispatcher, settings.ServiceName,
		settings.SpreadsheetID != "", settings.TwilioAccountSID != "")

	return CreateFiberApp(logger, controller), nil
}

// CreateFiberApp sets up middleware and routes.
func CreateFiberApp(logger zerolog.Logger, controller *intake.Controller) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          httperror.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(contextLoggerMiddleware(logger))

	app.Get("/", controller.HealthCheck)
	app.Get("/health", controller.HealthCheck)
	app.Post("/webhook", controller.HandleWebhook)
	app.Post("/test", controller.HandleTestLead)

	return app
}

// contextLoggerMiddleware stores a request-scoped logger in the user
// context so handlers and the error handler can pick it up with
// zerolog.Ctx.
func contextLoggerMiddleware(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		requestLogger := logger.With().
			Str("requestId", rid).
			Logger()
		c.SetUserContext(requestLogger.WithContext(c.UserContext()))
		return c.Next()
	}
}
