package gworkspace

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputOption lets Sheets parse dates and numbers the way a person
// typing into the sheet would.
const valueInputOption = "USER_ENTERED"

type SheetsClient struct {
	svc *sheets.Service
}

func NewSheetsClient(ctx context.Context, opts ...option.ClientOption) (*SheetsClient, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsClient{svc: svc}, nil
}

func (c *SheetsClient) AppendRow(
	ctx context.Context,
	spreadsheetID string,
	rng string,
	row []any,
) error {

	_, err := c.svc.Spreadsheets.Values.
		Append(spreadsheetID, rng, &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %s (%s): %w", spreadsheetID, rng, err)
	}
	return nil
}
