package output

import (
	"fmt"
	"strconv"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/labels"
)

// defaultHeaders are the renderer defaults per column kind, used when
// the table model carries no caller override.
var defaultHeaders = map[coefficients.ColumnKind]string{
	coefficients.ColumnEstimate:    "Estimate",
	coefficients.ColumnCI:          "CI",
	coefficients.ColumnStdError:    "Std. Error",
	coefficients.ColumnStdEstimate: "Std. Beta",
	coefficients.ColumnStdStdError: "Std. Beta SE",
	coefficients.ColumnStatistic:   "Statistic",
	coefficients.ColumnDF:          "df",
	coefficients.ColumnPValue:      "p",
}

// TableToData flattens a unified table model into rows and headers
// for the text, markdown and structured formatters. Absent grid
// entries become empty cells, never zeros.
func TableToData(t *coefficients.UnifiedTableModel) Data {
	headers := []string{"Predictors"}
	for _, col := range t.Columns {
		for _, kind := range col.Kinds {
			h := kindHeader(t, kind)
			if len(t.Columns) > 1 {
				h = fmt.Sprintf("%s: %s", col.Header, h)
			}
			headers = append(headers, h)
		}
	}

	var rows [][]string
	for _, row := range t.CountRows() {
		rows = append(rows, dataRow(t, row))
	}

	if zero := t.ZeroRows(); len(zero) > 0 {
		rows = append(rows, sectionRow("Zero-Inflated Model", len(headers)))
		for _, row := range zero {
			rows = append(rows, dataRow(t, row))
		}
	}

	rows = append(rows, summaryRows(t, len(headers))...)

	return Data{Headers: headers, Rows: rows}
}

// kindHeader resolves the header string for a column kind.
func kindHeader(t *coefficients.UnifiedTableModel, kind coefficients.ColumnKind) string {
	if h, ok := t.Headers[kind]; ok {
		return h
	}
	if h, ok := defaultHeaders[kind]; ok {
		return h
	}
	return labels.Humanize(kind.String())
}

// dataRow renders one coefficient row across all model columns.
func dataRow(t *coefficients.UnifiedTableModel, row coefficients.RowSpec) []string {
	cells := []string{row.Label}
	for _, col := range t.Columns {
		for _, kind := range col.Kinds {
			key := coefficients.CellKey{Term: row.Term, Model: col.Index, Kind: kind, Zero: row.Zero}
			cell, ok := t.Cell(key)
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, formatCell(kind, cell))
		}
	}
	return cells
}

// sectionRow renders a block separator spanning the label column.
func sectionRow(title string, width int) []string {
	row := make([]string, width)
	row[0] = title
	return row
}

// summaryRows renders the trailing per-model summary statistics.
func summaryRows(t *coefficients.UnifiedTableModel, width int) [][]string {
	obs := make([]string, 0, width)
	obs = append(obs, "Observations")
	fit := make([]string, 0, width)
	fit = append(fit, "R² / Pseudo-R²")

	hasFit := false
	for _, col := range t.Columns {
		// The summary value sits under the model's first statistic
		// column; the rest stay blank.
		for i := range col.Kinds {
			if i == 0 {
				obs = append(obs, strconv.Itoa(col.Summary.Observations))
				s := fitSummary(col.Summary)
				if s != "" {
					hasFit = true
				}
				fit = append(fit, s)
			} else {
				obs = append(obs, "")
				fit = append(fit, "")
			}
		}
	}

	rows := [][]string{obs}
	if hasFit {
		rows = append(rows, fit)
	}
	return rows
}

// fitSummary renders one model's goodness-of-fit value.
func fitSummary(s coefficients.FitSummary) string {
	switch {
	case s.RSquared != nil && s.AdjRSquared != nil:
		return fmt.Sprintf("%.3f / %.3f", *s.RSquared, *s.AdjRSquared)
	case s.RSquared != nil:
		return fmt.Sprintf("%.3f", *s.RSquared)
	case s.PseudoR2 != nil:
		return fmt.Sprintf("%.3f", *s.PseudoR2)
	}
	return ""
}

// formatCell renders one grid cell. Collapsed cells carry their own
// display string; everything else formats by kind.
func formatCell(kind coefficients.ColumnKind, cell coefficients.Cell) string {
	if cell.Display != "" {
		return cell.Display
	}
	switch kind {
	case coefficients.ColumnPValue:
		return formatP(cell.Value)
	case coefficients.ColumnDF:
		return strconv.FormatFloat(cell.Value, 'f', 1, 64)
	default:
		return strconv.FormatFloat(cell.Value, 'f', 2, 64)
	}
}

// formatP renders a p-value, flooring tiny values the way regression
// tables conventionally do.
func formatP(p float64) string {
	if p < 0.001 {
		return "<0.001"
	}
	return strconv.FormatFloat(p, 'f', 3, 64)
}
