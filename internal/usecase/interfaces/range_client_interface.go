package interfaces

import "context"

// SheetInfo describes one sheet (tab) of the configured spreadsheet.
type SheetInfo struct {
	ID    int64
	Title string
	Index int64
}

// ValueData is one range write inside a batch update.
type ValueData struct {
	Range  string
	Values [][]string
}

// IRangeClient abstracts the remote spreadsheet at range level so the
// gateway can be exercised against a fake instead of the live Sheets API.
//
// All ranges use A1 notation, sheet-qualified where needed
// (e.g. "'Cliente: Ana'!A4:E4").
type IRangeClient interface {
	ReadRange(ctx context.Context, rng string) ([][]string, error)
	UpdateRange(ctx context.Context, rng string, values [][]string) error
	BatchUpdateValues(ctx context.Context, data []ValueData) error
	ClearRange(ctx context.Context, rng string) error
	AddSheet(ctx context.Context, title string, rows, cols int64) (SheetInfo, error)
	ListSheets(ctx context.Context) ([]SheetInfo, error)
	CreateSpreadsheet(ctx context.Context, title string) (string, error)

	// Reconfigure repoints the client at another spreadsheet.
	Reconfigure(spreadsheetID string)
	SpreadsheetID() string
}
