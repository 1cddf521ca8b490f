// Package sms sends lead notifications as text messages through Twilio.
package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/lifeline-restoration/call-intake-api/internal/services/leadextract"
)

// maxIssueLength caps the issue text inside the notification so the message
// stays within a couple of SMS segments.
const maxIssueLength = 200

// MessageCreator is the slice of the Twilio REST API we use.
type MessageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// Client sends notifications from a fixed sender to a fixed recipient.
type Client struct {
	api  MessageCreator
	from string
	to   string
}

// New creates a Client using Twilio account SID and auth token credentials.
func New(accountSID, authToken, from, to string) *Client {
	restClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{
		api:  restClient.Api,
		from: from,
		to:   to,
	}
}

// NewWithAPI creates a Client with a caller-supplied API, for tests.
func NewWithAPI(api MessageCreator, from, to string) *Client {
	return &Client{api: api, from: from, to: to}
}

// NotifyLead sends one SMS describing the lead to the configured recipient.
// The Twilio REST client does not take a context; the dispatch timeout still
// bounds the overall request through the HTTP client defaults.
func (c *Client) NotifyLead(_ context.Context, lead leadextract.Lead) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(c.to)
	params.SetFrom(c.from)
	params.SetBody(FormatLeadMessage(lead))

	if _, err := c.api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS notification: %w", err)
	}
	return nil
}

// FormatLeadMessage builds the notification text for a lead.
func FormatLeadMessage(lead leadextract.Lead) string {
	name := lead.FullName()
	if name == "" {
		name = "Unknown caller"
	}

	var b strings.Builder
	b.WriteString("New lead: ")
	b.WriteString(name)
	if lead.PhoneNumber != "" {
		fmt.Fprintf(&b, " (%s)", lead.PhoneNumber)
	}
	if issue := strings.TrimSpace(lead.IssueSummary); issue != "" {
		if runes := []rune(issue); len(runes) > maxIssueLength {
			issue = string(runes[:maxIssueLength]) + "..."
		}
		b.WriteString(". Issue: ")
		b.WriteString(issue)
	}
	return b.String()
}
