// Package intake exposes the webhook endpoints that receive end-of-call
// reports from the voice-assistant platform.
package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lifeline-restoration/call-intake-api/internal/httperror"
	"github.com/lifeline-restoration/call-intake-api/internal/services/dispatch"
	"github.com/lifeline-restoration/call-intake-api/internal/services/leadextract"
)

// Dispatcher delivers a lead to the downstream sinks.
type Dispatcher interface {
	Deliver(ctx context.Context, lead leadextract.Lead) dispatch.Result
	AlreadyDelivered(callID string) bool
}

// Controller handles webhook intake, manual test leads, and health checks.
type Controller struct {
	dispatcher       Dispatcher
	serviceName      string
	sheetsConfigured bool
	smsConfigured    bool
	now              func() time.Time
}

// NewController creates a Controller. The configured flags are reported by
// the health endpoint.
func NewController(dispatcher Dispatcher, serviceName string, sheetsConfigured, smsConfigured bool) *Controller {
	return &Controller{
		dispatcher:       dispatcher,
		serviceName:      serviceName,
		sheetsConfigured: sheetsConfigured,
		smsConfigured:    smsConfigured,
		now:              time.Now,
	}
}

// HandleWebhook processes one webhook delivery from the platform.
// Unparsable bodies get a 400; everything after a successful parse is
// acknowledged with a 200 regardless of downstream outcomes.
func (ic *Controller) HandleWebhook(c *fiber.Ctx) error {
	var payload leadextract.Payload
	if err := c.BodyParser(&payload); err != nil {
		return httperror.Error{
			Code:        fiber.StatusBadRequest,
			ExternalMsg: "Invalid webhook payload",
			Err:         err,
		}
	}

	logger := zerolog.Ctx(c.UserContext())
	logger.Info().Str("eventType", payload.Type).Str("callId", payload.Call.ID).Msg("Received webhook event")

	if !leadextract.IsEndOfCall(payload.Type) {
		return c.JSON(WebhookResponse{
			Status:  "received",
			Message: fmt.Sprintf("Event type %q acknowledged", payload.Type),
		})
	}

	if ic.dispatcher.AlreadyDelivered(payload.Call.ID) {
		logger.Info().Str("callId", payload.Call.ID).Msg("Duplicate delivery suppressed")
		return c.JSON(WebhookResponse{
			Status:  "received",
			Message: "Duplicate delivery acknowledged",
		})
	}

	lead := leadextract.FromPayload(payload)
	lead.ID = uuid.NewString()
	lead.ReceivedAt = ic.now().UTC()

	result := ic.dispatcher.Deliver(c.UserContext(), lead)
	return c.JSON(WebhookResponse{
		Status:   "success",
		LeadID:   lead.ID,
		Recorded: result.Recorded,
		Notified: result.Notified,
	})
}

// HandleTestLead appends a manually supplied lead, falling back to a fixed
// sample when the body is empty. Useful for verifying sink wiring.
func (ic *Controller) HandleTestLead(c *fiber.Ctx) error {
	req := TestLeadRequest{
		FirstName:      "Test",
		LastName:       "User",
		PhoneNumber:    "555-0000",
		Address:        "123 Test St",
		ReferralSource: "Manual Test",
		IssueSummary:   "Testing webhook integration",
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return httperror.Error{
				Code:        fiber.StatusBadRequest,
				ExternalMsg: "Invalid test lead payload",
				Err:         err,
			}
		}
	}

	lead := leadextract.Lead{
		ID:             uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		ReferralSource: req.ReferralSource,
		IssueSummary:   req.IssueSummary,
		ReceivedAt:     ic.now().UTC(),
	}

	result := ic.dispatcher.Deliver(c.UserContext(), lead)
	return c.JSON(WebhookResponse{
		Status:   "success",
		Message:  "Test lead delivered",
		LeadID:   lead.ID,
		Recorded: result.Recorded,
		Notified: result.Notified,
	})
}

// HealthCheck reports service status and which sinks are configured.
func (ic *Controller) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:           "healthy",
		Service:          ic.serviceName,
		SheetsConfigured: ic.sheetsConfigured,
		SMSConfigured:    ic.smsConfigured,
		Timestamp:        ic.now().UTC().Format(time.RFC3339),
	})
}
