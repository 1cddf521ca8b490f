// Package sheets appends leads as rows to a Google Sheets worksheet.
package sheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/lifeline-restoration/call-intake-api/internal/services/leadextract"
)

// Client for the Google Sheets append API.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetRange    string
}

// New creates a Client authenticated with a service-account JSON credential.
// Extra options are appended after the credential so tests can point the
// client at a local server.
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetRange string, opts ...option.ClientOption) (*Client, error) {
	clientOpts := []option.ClientOption{
		option.WithScopes(gsheets.SpreadsheetsScope),
	}
	if len(credentialsJSON) > 0 {
		clientOpts = append(clientOpts, option.WithCredentialsJSON(credentialsJSON))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := gsheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}, nil
}

// AppendLead appends one row for the lead at the end of the configured range.
func (c *Client) AppendLead(ctx context.Context, lead leadextract.Lead) error {
	values := &gsheets.ValueRange{
		Values: [][]any{LeadRow(lead)},
	}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to spreadsheet: %w", err)
	}
	return nil
}

// LeadRow builds the spreadsheet row for a lead. Column order matches the
// header row of the target worksheet.
func LeadRow(lead leadextract.Lead) []any {
	return []any{
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.PhoneNumber,
		lead.Address,
		lead.ReferralSource,
		lead.IssueSummary,
		lead.ReceivedAt.UTC().Format(time.RFC3339),
	}
}
