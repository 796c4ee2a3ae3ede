// Package reconcile builds the unified coefficient table from one or
// more model extracts: it aligns coefficient identities across models
// into a stable row order, applies term filters and label overrides,
// composes the statistic columns each model family supports, and
// fills the sparse value grid handed to external renderers.
package reconcile

import (
	"context"
	"time"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
	"github.com/regtab/regtab/pkg/labels"
	"github.com/regtab/regtab/pkg/logging"
)

// SummaryFn computes the per-model summary statistics attached to the
// table. The default reads the values the modeling library reported;
// callers with their own pseudo-R² conventions plug in here.
type SummaryFn func(extract *coefficients.ModelExtract) coefficients.FitSummary

// Reconciler builds unified table models from model extracts.
type Reconciler interface {
	// Reconcile aligns the given extracts into a unified table.
	// Fatal configuration errors abort with no table; per-model
	// problems surface as warnings on the result.
	Reconcile(ctx context.Context, extracts []*coefficients.ModelExtract) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	predictorLabels *coefficients.LabelOverride
	headerLabels    *coefficients.LabelOverride
	filter          *coefficients.TermFilter
	columns         Columns
	provider        labels.Provider
	autoLabels      bool
	headers         map[coefficients.ColumnKind]string
	summaryFn       SummaryFn
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		columns:   DefaultColumns(),
		summaryFn: reportedSummary,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// reportedSummary is the default SummaryFn.
func reportedSummary(extract *coefficients.ModelExtract) coefficients.FitSummary {
	return extract.Fit
}

// Reconcile aligns the given extracts into a unified table.
func (r *reconciler) Reconcile(ctx context.Context, extracts []*coefficients.ModelExtract) (*Result, error) {
	start := time.Now()
	log := logging.FromContext(ctx)

	if err := r.validateFilter(); err != nil {
		return nil, err
	}

	builder := NewResultBuilder().WithModels(modelNames(extracts)...)

	// Row union in first-seen order, then term filtering. Filtering
	// precedes label resolution so positional lists size against the
	// filtered set.
	rows := unionRows(extracts)
	rows = filterRows(rows, r.filter)

	rows, err := r.resolveLabels(rows)
	if err != nil {
		return nil, err
	}

	columns, err := r.composeColumns(extracts)
	if err != nil {
		return nil, err
	}

	table := &coefficients.UnifiedTableModel{
		Rows:    rows,
		Columns: columns,
		Grid:    r.fillGrid(rows, extracts),
		Headers: r.headers,
	}

	log.Debug().
		Int("rows", len(rows)).
		Int("models", len(extracts)).
		Dur("elapsed", time.Since(start)).
		Msg("reconciled table")

	return builder.
		WithTable(table).
		WithStatistics(Statistics{
			ModelsProcessed: len(extracts),
			RowsProduced:    len(rows),
			CellsFilled:     len(table.Grid),
		}).
		Build(), nil
}

// validateFilter rejects a filter carrying both a keep-set and a
// remove-set. This is always a configuration error, never a silent
// choice of one.
func (r *reconciler) validateFilter() error {
	if r.filter != nil && r.filter.HasKeep() && r.filter.HasRemove() {
		return errors.NewConfigError("terms",
			"keep-set and remove-set are mutually exclusive", errors.ErrInvalidConfig)
	}
	return nil
}

func modelNames(extracts []*coefficients.ModelExtract) []string {
	names := make([]string, 0, len(extracts))
	for _, e := range extracts {
		names = append(names, e.Name)
	}
	return names
}

// Option Functions
// ================

// WithPredictorLabels sets the label override for coefficient rows.
func WithPredictorLabels(override *coefficients.LabelOverride) Option {
	return func(r *reconciler) error {
		r.predictorLabels = override
		return nil
	}
}

// WithModelHeaders sets the label override for model column headers.
// Positional overrides assign by model index; keyed overrides match
// by model name.
func WithModelHeaders(override *coefficients.LabelOverride) Option {
	return func(r *reconciler) error {
		r.headerLabels = override
		return nil
	}
}

// WithTermFilter sets the keep-set or remove-set restricting rows.
func WithTermFilter(filter *coefficients.TermFilter) Option {
	return func(r *reconciler) error {
		r.filter = filter
		return nil
	}
}

// WithColumns sets the statistic-column visibility flags.
func WithColumns(columns Columns) Option {
	return func(r *reconciler) error {
		r.columns = columns
		return nil
	}
}

// WithLabelProvider enables automatic labelling from variable and
// factor-level metadata.
func WithLabelProvider(provider labels.Provider) Option {
	return func(r *reconciler) error {
		r.provider = provider
		r.autoLabels = provider != nil
		return nil
	}
}

// WithColumnHeaders sets custom header strings per column kind.
func WithColumnHeaders(headers map[coefficients.ColumnKind]string) Option {
	return func(r *reconciler) error {
		r.headers = headers
		return nil
	}
}

// WithSummaryFn replaces the per-model summary computation.
func WithSummaryFn(fn SummaryFn) Option {
	return func(r *reconciler) error {
		if fn == nil {
			return errors.NewConfigError("summary", "summary function cannot be nil", errors.ErrInvalidConfig)
		}
		r.summaryFn = fn
		return nil
	}
}
