// Package leadextract turns voice-platform webhook payloads into leads.
// Extraction is pure: no clock, no network, no logging.
package leadextract

import (
	"strings"
	"time"
)

// maxTranscriptSummary caps how much raw transcript is carried into the
// issue summary when the platform produced no structured summary.
const maxTranscriptSummary = 500

// Payload is the subset of the platform's end-of-call webhook event that we
// read. The upstream schema is versioned by the platform and can change
// without notice; unknown fields are ignored.
type Payload struct {
	Type       string   `json:"type"`
	Call       Call     `json:"call"`
	Analysis   Analysis `json:"analysis"`
	Transcript string   `json:"transcript"`
}

// Call describes the phone call the event belongs to.
type Call struct {
	ID              string   `json:"id"`
	Customer        Customer `json:"customer"`
	PhoneNumber     string   `json:"phoneNumber"`
	PhoneNumberE164 string   `json:"phoneNumberE164"`
}

// Customer is the caller as the platform identified them.
type Customer struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// Analysis holds the platform's post-call analysis.
type Analysis struct {
	Summary        string         `json:"summary"`
	StructuredData StructuredData `json:"structuredData"`
}

// StructuredData is the assistant's structured extraction of caller details.
type StructuredData struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	ReferralSource string `json:"referralSource"`
	IssueSummary   string `json:"issueSummary"`
}

// Lead is one inbound customer contact. All fields except ID and ReceivedAt
// are optional; absent payload values stay empty.
type Lead struct {
	ID             string
	FirstName      string
	LastName       string
	PhoneNumber    string
	Address        string
	ReferralSource string
	IssueSummary   string
	ReceivedAt     time.Time
}

// FullName joins the name parts, or returns "" when both are empty.
func (l Lead) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(l.FirstName) + " " + strings.TrimSpace(l.LastName))
}

// endOfCallTypes are the event types that carry a completed conversation.
// The platform has renamed this event across schema versions.
var endOfCallTypes = map[string]bool{
	"end-of-call-report": true,
	"call-ended":         true,
	"call.ended":         true,
}

// IsEndOfCall reports whether eventType marks a completed call.
func IsEndOfCall(eventType string) bool {
	return endOfCallTypes[eventType]
}

// FromPayload extracts a Lead from an end-of-call payload. Missing fields
// never abort extraction; every fallback below mirrors what the platform is
// known to populate across schema versions.
func FromPayload(p Payload) Lead {
	lead := Lead{
		PhoneNumber:    firstNonEmpty(p.Call.Customer.Number, p.Call.PhoneNumber, p.Call.PhoneNumberE164),
		FirstName:      p.Analysis.StructuredData.FirstName,
		LastName:       p.Analysis.StructuredData.LastName,
		Address:        p.Analysis.StructuredData.Address,
		ReferralSource: p.Analysis.StructuredData.ReferralSource,
		IssueSummary:   firstNonEmpty(p.Analysis.StructuredData.IssueSummary, p.Analysis.Summary),
	}

	if lead.IssueSummary == "" && p.Transcript != "" {
		lead.IssueSummary = truncate(p.Transcript, maxTranscriptSummary)
	}

	// The assistant does not always fill structuredData; fall back to the
	// caller name the telephony side captured.
	if lead.FirstName == "" && p.Call.Customer.Name != "" {
		parts := strings.Fields(p.Call.Customer.Name)
		if len(parts) > 0 {
			lead.FirstName = parts[0]
		}
		if len(parts) > 1 {
			lead.LastName = strings.Join(parts[1:], " ")
		}
	}

	return lead
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
