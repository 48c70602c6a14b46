// Package sheets is the spreadsheet-row-fetch transport: it reads the
// recruitment form responses as raw string rows for the importer.
package sheets

import (
	"context"
	"fmt"
	"os"

	// Load env
	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// readRange covers the nine form columns, timestamp through linkedin link.
const readRange = "A:I"

// Client reads candidate rows from the configured spreadsheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// Configured reports whether both the API key and the spreadsheet id are set.
func Configured() bool {
	return os.Getenv("GOOGLE_API_KEY") != "" && os.Getenv("GOOGLE_SPREADSHEET_ID") != ""
}

// SpreadsheetID returns the configured sheet id, empty when unset.
func SpreadsheetID() string {
	return os.Getenv("GOOGLE_SPREADSHEET_ID")
}

// NewClient builds a Sheets client from GOOGLE_API_KEY and
// GOOGLE_SPREADSHEET_ID. A missing setting is a hard error so a sync run
// fails before touching any candidate row.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not configured")
	}

	spreadsheetID := SpreadsheetID()
	if spreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SPREADSHEET_ID is not configured")
	}

	svc, err := gsheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// FetchRows returns every data row of the sheet (header excluded) as string
// cells. Cell values that are not strings are stringified.
func (c *Client) FetchRows(ctx context.Context) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) <= 1 {
		return nil, nil
	}

	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			if s, ok := cell.(string); ok {
				row = append(row, s)
			} else {
				row = append(row, fmt.Sprint(cell))
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
