package reconcile

import (
	"fmt"
	"time"

	"github.com/regtab/regtab/pkg/coefficients"
)

// Result represents the outcome of a table-construction run.
type Result struct {
	// Success indicates if construction completed successfully
	Success bool

	// Table is the unified table model (if successful)
	Table *coefficients.UnifiedTableModel

	// Errors contains fatal errors that occurred
	Errors []error

	// Warnings contains per-model problems that did not abort the
	// table, such as models omitted for missing coefficient tables
	Warnings []string

	// Metadata about the run
	Metadata Metadata
}

// Metadata contains metadata about the table-construction run.
type Metadata struct {
	// StartTime when construction started
	StartTime time.Time

	// EndTime when construction completed
	EndTime time.Time

	// Duration of the run
	Duration time.Duration

	// Models that contributed to the table, in input order
	Models []string

	// Omitted lists models dropped for extraction failures
	Omitted []string

	// Stats about the run
	Stats Statistics
}

// Statistics contains statistics about the table-construction run.
type Statistics struct {
	// ModelsProcessed is the number of models in the table
	ModelsProcessed int

	// RowsProduced is the number of unified rows after filtering
	RowsProduced int

	// CellsFilled is the number of grid cells carrying values
	CellsFilled int
}

// IsSuccess returns true if the run was successful.
func (r *Result) IsSuccess() bool {
	return r.Success && len(r.Errors) == 0
}

// HasErrors returns true if there were fatal errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there were warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	if !r.IsSuccess() {
		return fmt.Sprintf("Table construction failed with %d errors", len(r.Errors))
	}
	if r.HasWarnings() {
		return fmt.Sprintf("Table built from %d models (%d rows, %d warnings)",
			r.Metadata.Stats.ModelsProcessed, r.Metadata.Stats.RowsProduced, len(r.Warnings))
	}
	return fmt.Sprintf("Table built from %d models (%d rows)",
		r.Metadata.Stats.ModelsProcessed, r.Metadata.Stats.RowsProduced)
}

// ResultBuilder helps construct Result objects.
type ResultBuilder struct {
	result *Result
}

// NewResultBuilder creates a new ResultBuilder.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		result: &Result{
			Success:  true,
			Errors:   []error{},
			Warnings: []string{},
			Metadata: Metadata{
				StartTime: time.Now(),
			},
		},
	}
}

// WithTable sets the unified table model.
func (b *ResultBuilder) WithTable(table *coefficients.UnifiedTableModel) *ResultBuilder {
	b.result.Table = table
	return b
}

// WithError adds a fatal error.
func (b *ResultBuilder) WithError(err error) *ResultBuilder {
	if err != nil {
		b.result.Success = false
		b.result.Errors = append(b.result.Errors, err)
	}
	return b
}

// WithWarning adds a warning.
func (b *ResultBuilder) WithWarning(warning string) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, warning)
	return b
}

// WithModels sets the models that contributed to the table.
func (b *ResultBuilder) WithModels(models ...string) *ResultBuilder {
	b.result.Metadata.Models = models
	return b
}

// WithOmitted records a model dropped for an extraction failure.
func (b *ResultBuilder) WithOmitted(model string) *ResultBuilder {
	b.result.Metadata.Omitted = append(b.result.Metadata.Omitted, model)
	return b
}

// WithStatistics sets the run statistics.
func (b *ResultBuilder) WithStatistics(stats Statistics) *ResultBuilder {
	b.result.Metadata.Stats = stats
	return b
}

// Build finalizes and returns the Result.
func (b *ResultBuilder) Build() *Result {
	b.result.Metadata.EndTime = time.Now()
	b.result.Metadata.Duration = b.result.Metadata.EndTime.Sub(b.result.Metadata.StartTime)
	return b.result
}
