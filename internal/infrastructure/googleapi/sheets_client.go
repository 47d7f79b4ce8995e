package googleapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"oficina_facil/internal/usecase/interfaces"
)

var ErrNoSpreadsheetConfigured = errors.New("no spreadsheet configured")

// RangeClient talks to the Google Sheets API at range granularity. It holds
// the current spreadsheet id; Reconfigure swaps it without rebuilding the
// underlying service.
type RangeClient struct {
	svc *sheets.Service

	mu            sync.RWMutex
	spreadsheetID string
}

var _ interfaces.IRangeClient = (*RangeClient)(nil)

// NewRangeClient builds a Sheets client from an authenticated HTTP client
// (see AuthService.Client) and an optional initial spreadsheet id.
func NewRangeClient(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*RangeClient, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		log.Printf("[sheets][client] failed creating sheets service err=%v", err)
		return nil, err
	}
	log.Printf("[sheets][client] sheets service initialized spreadsheet_id=%q", spreadsheetID)
	return &RangeClient{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *RangeClient) SpreadsheetID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.spreadsheetID
}

func (c *RangeClient) Reconfigure(spreadsheetID string) {
	c.mu.Lock()
	c.spreadsheetID = spreadsheetID
	c.mu.Unlock()
	log.Printf("[sheets][client] repointed spreadsheet_id=%q", spreadsheetID)
}

func (c *RangeClient) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	id, err := c.currentID()
	if err != nil {
		return nil, err
	}
	resp, err := c.svc.Spreadsheets.Values.Get(id, rng).Context(ctx).Do()
	if err != nil {
		return nil, c.wrap("read", rng, err)
	}
	return toStringRows(resp.Values), nil
}

func (c *RangeClient) UpdateRange(ctx context.Context, rng string, values [][]string) error {
	id, err := c.currentID()
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: toAnyRows(values)}
	_, err = c.svc.Spreadsheets.Values.Update(id, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return c.wrap("update", rng, err)
	}
	return nil
}

func (c *RangeClient) BatchUpdateValues(ctx context.Context, data []interfaces.ValueData) error {
	id, err := c.currentID()
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateValuesRequest{ValueInputOption: "USER_ENTERED"}
	for _, d := range data {
		req.Data = append(req.Data, &sheets.ValueRange{Range: d.Range, Values: toAnyRows(d.Values)})
	}
	_, err = c.svc.Spreadsheets.Values.BatchUpdate(id, req).Context(ctx).Do()
	if err != nil {
		return c.wrap("batch-update", fmt.Sprintf("%d ranges", len(data)), err)
	}
	return nil
}

func (c *RangeClient) ClearRange(ctx context.Context, rng string) error {
	id, err := c.currentID()
	if err != nil {
		return err
	}
	_, err = c.svc.Spreadsheets.Values.Clear(id, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return c.wrap("clear", rng, err)
	}
	return nil
}

func (c *RangeClient) AddSheet(ctx context.Context, title string, rows, cols int64) (interfaces.SheetInfo, error) {
	id, err := c.currentID()
	if err != nil {
		return interfaces.SheetInfo{}, err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    rows,
						ColumnCount: cols,
					},
				},
			},
		}},
	}
	resp, err := c.svc.Spreadsheets.BatchUpdate(id, req).Context(ctx).Do()
	if err != nil {
		return interfaces.SheetInfo{}, c.wrap("add-sheet", title, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return interfaces.SheetInfo{}, fmt.Errorf("add-sheet %q: empty reply", title)
	}
	p := resp.Replies[0].AddSheet.Properties
	return interfaces.SheetInfo{ID: p.SheetId, Title: p.Title, Index: p.Index}, nil
}

func (c *RangeClient) ListSheets(ctx context.Context) ([]interfaces.SheetInfo, error) {
	id, err := c.currentID()
	if err != nil {
		return nil, err
	}
	ss, err := c.svc.Spreadsheets.Get(id).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, c.wrap("list-sheets", id, err)
	}
	out := make([]interfaces.SheetInfo, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties == nil {
			continue
		}
		out = append(out, interfaces.SheetInfo{ID: s.Properties.SheetId, Title: s.Properties.Title, Index: s.Properties.Index})
	}
	return out, nil
}

func (c *RangeClient) CreateSpreadsheet(ctx context.Context, title string) (string, error) {
	ss, err := c.svc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", c.wrap("create-spreadsheet", title, err)
	}
	log.Printf("[sheets][client] spreadsheet created id=%s title=%q", ss.SpreadsheetId, title)
	return ss.SpreadsheetId, nil
}

func (c *RangeClient) currentID() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.spreadsheetID == "" {
		return "", ErrNoSpreadsheetConfigured
	}
	return c.spreadsheetID, nil
}

// wrap maps API faults onto the gateway contract errors so the layers above
// never inspect googleapi types.
func (c *RangeClient) wrap(op, target string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			log.Printf("[sheets][client] %s %q unauthorized code=%d", op, target, apiErr.Code)
			return interfaces.ErrNaoAutenticado
		}
		return fmt.Errorf("%s %q: %w", op, target, err)
	}
	if isNetworkError(err) {
		log.Printf("[sheets][client] %s %q network fault err=%v", op, target, err)
		return interfaces.ErrSemConexao
	}
	return fmt.Errorf("%s %q: %w", op, target, err)
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "timeout") ||
		errors.Is(err, context.DeadlineExceeded)
}

func toStringRows(in [][]any) [][]string {
	out := make([][]string, 0, len(in))
	for _, row := range in {
		r := make([]string, 0, len(row))
		for _, v := range row {
			r = append(r, fmt.Sprintf("%v", v))
		}
		out = append(out, r)
	}
	return out
}

func toAnyRows(in [][]string) [][]any {
	out := make([][]any, 0, len(in))
	for _, row := range in {
		r := make([]any, 0, len(row))
		for _, v := range row {
			r = append(r, v)
		}
		out = append(out, r)
	}
	return out
}
