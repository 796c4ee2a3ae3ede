// Package regtab turns fitted regression models into unified summary
// tables. One or more fitted-model results go in; an ordered,
// cross-model-aligned table model with resolved labels and composed
// statistic columns comes out, ready for an external renderer.
package regtab

import (
	"context"
	"fmt"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
	"github.com/regtab/regtab/pkg/extract"
	"github.com/regtab/regtab/pkg/logging"
	"github.com/regtab/regtab/pkg/reconcile"
)

// Builder assembles unified coefficient tables from fitted models.
type Builder interface {
	// Build extracts every model and reconciles the extracts into a
	// unified table. Models without a recognizable coefficient table
	// are omitted with a warning; the remaining models still produce
	// a table. Fatal configuration errors abort with no table.
	Build(ctx context.Context, models ...extract.FittedModel) (*reconcile.Result, error)

	// BuildFiles is Build for serialized model summaries on disk.
	BuildFiles(ctx context.Context, paths ...string) (*reconcile.Result, error)
}

// builder is the internal implementation of the Builder interface.
type builder struct {
	config     *config
	reconciler reconcile.Reconciler
}

// New creates a new Builder with the given options.
func New(opts ...Option) (Builder, error) {
	b := &builder{
		config: defaultConfig(),
	}

	if err := b.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	b.config.finishColumns()

	r, err := reconcile.New(b.config.reconcileOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating reconciler: %w", err)
	}
	b.reconciler = r

	return b, nil
}

// options applies the given options to the builder config.
func (b *builder) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(b.config); err != nil {
			return err
		}
	}
	return nil
}

// omission records a model dropped during extraction.
type omission struct {
	name string
	err  error
}

// Build extracts every model and reconciles the extracts into a
// unified table.
func (b *builder) Build(ctx context.Context, models ...extract.FittedModel) (*reconcile.Result, error) {
	if len(models) == 0 {
		return nil, errors.NewValidationError("models", nil, "at least one fitted model is required")
	}

	log := logging.FromContext(ctx)

	// Each model extracts independently; a failed extraction omits
	// that model and the remaining models still render.
	var extracts []*coefficients.ModelExtract
	var omitted []omission
	for _, m := range models {
		e, err := extract.Model(ctx, m, extract.WithTransform(b.config.transform))
		if err != nil {
			if errors.IsExtractionError(err) {
				log.Warn().Err(err).Str("model", m.Name()).Msg("omitting model from table")
				omitted = append(omitted, omission{name: m.Name(), err: err})
				continue
			}
			return nil, err
		}
		extracts = append(extracts, e)
	}

	result, err := b.reconciler.Reconcile(ctx, extracts)
	if err != nil {
		return nil, err
	}

	for _, o := range omitted {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("model %s omitted: %v", o.name, o.err))
		result.Metadata.Omitted = append(result.Metadata.Omitted, o.name)
	}

	return result, nil
}

// BuildFiles is Build for serialized model summaries on disk.
func (b *builder) BuildFiles(ctx context.Context, paths ...string) (*reconcile.Result, error) {
	summaries, err := extract.LoadFiles(paths...)
	if err != nil {
		return nil, err
	}

	models := make([]extract.FittedModel, 0, len(summaries))
	for _, s := range summaries {
		models = append(models, s)
	}
	return b.Build(ctx, models...)
}
