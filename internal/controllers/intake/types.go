package intake

// WebhookResponse acknowledges a processed end-of-call event.
type WebhookResponse struct {
	// Status is "success" for processed events, "received" for
	// acknowledged-but-ignored events and duplicate deliveries.
	Status string `json:"status"`
	// Message provides a brief status message for the operation.
	Message string `json:"message,omitempty"`
	// LeadID is the identifier written to the spreadsheet row.
	LeadID string `json:"leadId,omitempty"`
	// Recorded reports whether the spreadsheet append succeeded.
	Recorded bool `json:"recorded"`
	// Notified reports whether the SMS notification succeeded.
	Notified bool `json:"notified"`
}

// TestLeadRequest is the payload for the manual /test endpoint. All fields
// are optional; an empty body falls back to a fixed sample lead.
type TestLeadRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	Address        string `json:"address"`
	ReferralSource string `json:"referralSource"`
	IssueSummary   string `json:"issueSummary"`
}

// HealthResponse reports service status and sink configuration.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	SheetsConfigured bool   `json:"sheetsConfigured"`
	SMSConfigured    bool   `json:"smsConfigured"`
	Timestamp        string `json:"timestamp"`
}
