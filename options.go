package regtab

import (
	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/extract"
	"github.com/regtab/regtab/pkg/labels"
	"github.com/regtab/regtab/pkg/reconcile"
)

// config holds the builder configuration assembled from options.
type config struct {
	transform        extract.Transform
	columns          reconcile.Columns
	columnsSet       bool
	reconcileOptions []reconcile.Option
}

// defaultConfig returns the default builder configuration.
func defaultConfig() *config {
	return &config{
		transform: extract.TransformAuto,
		columns:   reconcile.DefaultColumns(),
	}
}

// finishColumns appends the column configuration once all collapse
// and visibility options have been applied.
func (c *config) finishColumns() {
	if c.columnsSet {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithColumns(c.columns))
		c.columnsSet = false
	}
}

// Option is a function that configures a Builder instance.
type Option func(*config) error

// WithTransform chooses exponentiated vs. linear-scale estimates.
// The default follows each model's family.
func WithTransform(t extract.Transform) Option {
	return func(c *config) error {
		c.transform = t
		return nil
	}
}

// WithPredictorLabels sets the label override for coefficient rows.
func WithPredictorLabels(override *coefficients.LabelOverride) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithPredictorLabels(override))
		return nil
	}
}

// WithModelHeaders sets the label override for model column headers.
func WithModelHeaders(override *coefficients.LabelOverride) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithModelHeaders(override))
		return nil
	}
}

// WithTermFilter restricts the unified row set with a keep-set or
// remove-set.
func WithTermFilter(filter *coefficients.TermFilter) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithTermFilter(filter))
		return nil
	}
}

// WithColumns sets the statistic-column visibility flags.
func WithColumns(columns reconcile.Columns) Option {
	return func(c *config) error {
		c.columns = columns
		c.columnsSet = true
		return nil
	}
}

// WithCollapseCI folds the confidence interval into the estimate
// cell's display string instead of a separate column.
func WithCollapseCI(collapse bool) Option {
	return func(c *config) error {
		c.columns.CollapseCI = collapse
		c.columnsSet = true
		return nil
	}
}

// WithCollapseSE folds the standard error into the estimate cell's
// display string instead of a separate column.
func WithCollapseSE(collapse bool) Option {
	return func(c *config) error {
		c.columns.CollapseSE = collapse
		c.columnsSet = true
		return nil
	}
}

// WithLabelProvider enables automatic labelling from variable and
// factor-level metadata.
func WithLabelProvider(provider labels.Provider) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithLabelProvider(provider))
		return nil
	}
}

// WithColumnHeaders sets custom header strings per column kind.
func WithColumnHeaders(headers map[coefficients.ColumnKind]string) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithColumnHeaders(headers))
		return nil
	}
}

// WithSummaryFn replaces the per-model summary computation.
func WithSummaryFn(fn reconcile.SummaryFn) Option {
	return func(c *config) error {
		c.reconcileOptions = append(c.reconcileOptions, reconcile.WithSummaryFn(fn))
		return nil
	}
}
