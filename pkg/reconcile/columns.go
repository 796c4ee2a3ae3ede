package reconcile

import (
	"fmt"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
)

// Columns holds the statistic-column visibility flags, applied
// uniformly across all models in one table. Collapse flags fold the
// CI or SE textual representation into the estimate cell instead of
// emitting a separate column.
type Columns struct {
	Estimate     bool
	CI           bool
	StdError     bool
	Standardized bool
	Statistic    bool
	PValue       bool
	DF           bool

	CollapseCI bool
	CollapseSE bool
}

// DefaultColumns shows estimate, confidence interval and p-value.
func DefaultColumns() Columns {
	return Columns{
		Estimate: true,
		CI:       true,
		PValue:   true,
	}
}

// kindOrder is the display order of statistic columns.
var kindOrder = []coefficients.ColumnKind{
	coefficients.ColumnEstimate,
	coefficients.ColumnCI,
	coefficients.ColumnStdError,
	coefficients.ColumnStdEstimate,
	coefficients.ColumnStdStdError,
	coefficients.ColumnStatistic,
	coefficients.ColumnDF,
	coefficients.ColumnPValue,
}

// kinds resolves the visibility flags against one model family. A
// flag produces its column only when the family supports the
// statistic; collapsed kinds never appear as separate columns.
func (c Columns) kinds(family coefficients.Family) []coefficients.ColumnKind {
	active := map[coefficients.ColumnKind]bool{
		coefficients.ColumnEstimate:    c.Estimate,
		coefficients.ColumnCI:          c.CI && !c.CollapseCI,
		coefficients.ColumnStdError:    c.StdError && !c.CollapseSE,
		coefficients.ColumnStdEstimate: c.Standardized,
		coefficients.ColumnStdStdError: c.Standardized,
		coefficients.ColumnStatistic:   c.Statistic,
		coefficients.ColumnDF:          c.DF && family.SupportsDF(),
		coefficients.ColumnPValue:      c.PValue,
	}

	kinds := make([]coefficients.ColumnKind, 0, len(kindOrder))
	for _, k := range kindOrder {
		if active[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// composeColumns builds the per-model column specs: resolved header,
// family-aware active kinds, and summary statistics.
func (r *reconciler) composeColumns(extracts []*coefficients.ModelExtract) ([]coefficients.ModelColumnSpec, error) {
	if r.headerLabels.IsPositional() && r.headerLabels.Len() != len(extracts) {
		return nil, errors.NewConfigError("model headers",
			fmt.Sprintf("positional header list has %d entries but the table has %d models",
				r.headerLabels.Len(), len(extracts)),
			errors.ErrInvalidConfig)
	}

	columns := make([]coefficients.ModelColumnSpec, 0, len(extracts))
	for i, e := range extracts {
		columns = append(columns, coefficients.ModelColumnSpec{
			Index:   i,
			Header:  r.resolveHeader(i, e),
			Family:  e.Family,
			Kinds:   r.columns.kinds(e.Family),
			Summary: r.summaryFn(e),
		})
	}
	return columns, nil
}

// fillGrid populates the sparse value grid. A cell exists only when
// the model reports the coefficient and the statistic; everything
// else stays absent and renders blank.
func (r *reconciler) fillGrid(rows []coefficients.RowSpec, extracts []*coefficients.ModelExtract) map[coefficients.CellKey]coefficients.Cell {
	grid := make(map[coefficients.CellKey]coefficients.Cell)

	for mi, e := range extracts {
		for _, row := range rows {
			var rec coefficients.Record
			var ok bool
			if row.Zero {
				rec, ok = e.ZeroRecord(row.Term)
			} else {
				rec, ok = e.Record(row.Term)
			}
			if !ok {
				continue
			}
			r.fillCells(grid, row, mi, rec)
		}
	}
	return grid
}

// fillCells writes one record's cells into the grid.
func (r *reconciler) fillCells(grid map[coefficients.CellKey]coefficients.Cell, row coefficients.RowSpec, model int, rec coefficients.Record) {
	key := func(kind coefficients.ColumnKind) coefficients.CellKey {
		return coefficients.CellKey{Term: row.Term, Model: model, Kind: kind, Zero: row.Zero}
	}

	if r.columns.Estimate {
		grid[key(coefficients.ColumnEstimate)] = r.estimateCell(rec)
	}
	if r.columns.CI && !r.columns.CollapseCI && rec.CI != nil {
		grid[key(coefficients.ColumnCI)] = coefficients.Cell{
			Value:   rec.CI.Low,
			High:    coefficients.Float(rec.CI.High),
			Display: formatInterval(*rec.CI),
		}
	}
	if r.columns.StdError && !r.columns.CollapseSE && rec.StdError != nil {
		grid[key(coefficients.ColumnStdError)] = coefficients.Cell{Value: *rec.StdError}
	}
	if r.columns.Standardized {
		if rec.StdEstimate != nil {
			grid[key(coefficients.ColumnStdEstimate)] = coefficients.Cell{Value: *rec.StdEstimate}
		}
		if rec.StdStdError != nil {
			grid[key(coefficients.ColumnStdStdError)] = coefficients.Cell{Value: *rec.StdStdError}
		}
	}
	if r.columns.Statistic && rec.Statistic != nil {
		grid[key(coefficients.ColumnStatistic)] = coefficients.Cell{Value: *rec.Statistic}
	}
	if r.columns.DF && rec.DF != nil {
		grid[key(coefficients.ColumnDF)] = coefficients.Cell{Value: *rec.DF}
	}
	if r.columns.PValue && rec.PValue != nil {
		grid[key(coefficients.ColumnPValue)] = coefficients.Cell{Value: *rec.PValue}
	}
}

// estimateCell builds the estimate cell, folding in the CI or SE
// display when collapse is configured. Collapsing changes only the
// display string; Value always carries the numeric estimate.
func (r *reconciler) estimateCell(rec coefficients.Record) coefficients.Cell {
	cell := coefficients.Cell{Value: rec.Estimate}

	switch {
	case r.columns.CollapseCI && rec.CI != nil:
		cell.Display = fmt.Sprintf("%s (%s)", formatValue(rec.Estimate), formatInterval(*rec.CI))
	case r.columns.CollapseSE && rec.StdError != nil:
		cell.Display = fmt.Sprintf("%s (%s)", formatValue(rec.Estimate), formatValue(*rec.StdError))
	}
	return cell
}

// formatValue renders a numeric cell value for collapsed display.
func formatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatInterval renders a confidence interval for display.
func formatInterval(ci coefficients.Interval) string {
	return fmt.Sprintf("%s – %s", formatValue(ci.Low), formatValue(ci.High))
}
