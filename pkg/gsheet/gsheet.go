// Package gsheet mirrors the destination table into a Google Sheet for
// end-user consumption. The mirror is overwrite-only: data rows below the
// header are cleared and rewritten from the table on every run, and absent
// values are written as explicit empty strings so columns keep their
// positions.
package gsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/tidegrid/surfcast/pkg/data"
)

// dataRange covers every data row below the header. The table has 25
// columns, within A..Y.
const dataRange = "A2:Z"

// Mirror writes to one sheet of one spreadsheet.
type Mirror struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// New builds a Mirror authenticated by a service account credentials file.
func New(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Mirror, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("building sheets client: %w", err)
	}
	return &Mirror{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Clear deletes every data row, preserving the header.
func (m *Mirror) Clear() error {
	rng := fmt.Sprintf("%s!%s", m.sheetName, dataRange)
	_, err := m.svc.Spreadsheets.Values.Clear(m.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("clearing %s: %w", rng, err)
	}
	return nil
}

// Write puts the table rows into the sheet starting immediately below the
// header.
func (m *Mirror) Write(rows []data.Row) error {
	if len(rows) == 0 {
		return nil
	}
	rng := fmt.Sprintf("%s!A2", m.sheetName)
	vr := &sheets.ValueRange{Values: Values(rows)}
	_, err := m.svc.Spreadsheets.Values.Update(m.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("writing %d rows to %s: %w", len(rows), rng, err)
	}
	return nil
}

// Values converts table rows to sheet cells in the table's column order.
// Nullable columns become "" when absent rather than being omitted.
func Values(rows []data.Row) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.TideLocalTime,
			r.TideHeight,
			r.TideType,
			r.SpotID,
			r.SpotName,
			strCell(r.SpotTimezone),
			strCell(r.SpotLocalTime),
			numCell(r.WaveMaxHeight),
			numCell(r.WaveMinHeight),
			strCell(r.HumanRelation),
			numCell(r.SwellHeight1),
			numCell(r.SwellHeight2),
			numCell(r.SwellHeight3),
			numCell(r.SwellHeight4),
			numCell(r.SwellHeight5),
			numCell(r.SwellHeight6),
			numCell(r.Temperature),
			strCell(r.FirstLight),
			strCell(r.Sunrise),
			strCell(r.Sunset),
			strCell(r.LastLight),
			numCell(r.WindSpeed),
			strCell(r.WindDirectionType),
			r.Subregion,
			r.Region,
		})
	}
	return out
}

// Header is the sheet's header row, matching data.Columns.
func Header() []interface{} {
	cols := data.Columns()
	out := make([]interface{}, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}

func strCell(v *string) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func numCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
