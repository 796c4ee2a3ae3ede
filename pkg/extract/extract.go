// Package extract pulls ordered coefficient sets out of fitted-model
// result objects. The statistical fitting itself happens in an
// external modeling library; this package consumes its results
// through the FittedModel interface and normalizes them into
// coefficients.ModelExtract values for the reconciler.
package extract

import (
	"context"
	"math"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
	"github.com/regtab/regtab/pkg/logging"
)

// Descriptor identifies the response family and link of a fitted
// model, as reported by the modeling library.
type Descriptor struct {
	// Distribution is the response distribution ("gaussian",
	// "binomial", "poisson", "negative-binomial", ...).
	Distribution string `json:"distribution" yaml:"distribution"`

	// Link is the link function ("identity", "log", "logit", ...).
	Link string `json:"link" yaml:"link"`

	// Mixed marks mixed-effects models, which report approximated
	// degrees-of-freedom-based p-values.
	Mixed bool `json:"mixed,omitempty" yaml:"mixed,omitempty"`

	// ZeroInflated marks two-part count models carrying a separate
	// zero-inflation coefficient block.
	ZeroInflated bool `json:"zero_inflated,omitempty" yaml:"zero_inflated,omitempty"`
}

// FittedModel is the read-only view of an external fitted-model
// result object. Coefficient estimates and CI bounds are expected on
// the linear (link) scale; scale transforms happen here.
type FittedModel interface {
	// Name identifies the model in logs and warnings.
	Name() string

	// Descriptor returns the response family/link descriptor.
	Descriptor() Descriptor

	// Response returns the dependent-variable label.
	Response() string

	// Coefficients returns the coefficient table in summary order.
	// An empty table means the object carries no recognizable
	// coefficients and extraction fails for this model.
	Coefficients() []coefficients.Record

	// ZeroInflation returns the zero-inflation coefficient block, or
	// nil when the model has none.
	ZeroInflation() []coefficients.Record

	// Fit returns the model's reported summary statistics.
	Fit() coefficients.FitSummary
}

// Transform selects the presentation scale for estimates.
type Transform string

// Recognized transforms.
const (
	// TransformAuto follows the model family: multiplicative families
	// are exponentiated, the rest stay on the linear scale.
	TransformAuto Transform = "auto"

	// TransformExponentiate forces the exponentiated scale.
	TransformExponentiate Transform = "exp"

	// TransformLinear forces the linear scale.
	TransformLinear Transform = "linear"
)

// Option configures an extraction.
type Option func(*config)

type config struct {
	transform Transform
}

// WithTransform sets the scale transform selection.
func WithTransform(t Transform) Option {
	return func(c *config) {
		c.transform = t
	}
}

// Model extracts the coefficient set and metadata from one fitted
// model. A model without a recognizable coefficient table yields an
// ExtractionError; the caller collects it and continues with the
// remaining models.
func Model(ctx context.Context, m FittedModel, opts ...Option) (*coefficients.ModelExtract, error) {
	cfg := &config{transform: TransformAuto}
	for _, opt := range opts {
		opt(cfg)
	}

	log := logging.FromContext(ctx)

	records := m.Coefficients()
	if len(records) == 0 {
		return nil, errors.NewExtractionError(m.Name(), "model object has no recognizable coefficient table", errors.ErrNoCoefficients)
	}

	family := DetectFamily(m.Descriptor())
	exponentiate := shouldExponentiate(family, cfg.transform)

	extract := &coefficients.ModelExtract{
		Name:          m.Name(),
		Family:        family,
		Link:          m.Descriptor().Link,
		Response:      m.Response(),
		Exponentiated: exponentiate,
		Records:       transformRecords(records, exponentiate),
		Fit:           m.Fit(),
	}

	if family.HasZeroInflationBlock() {
		extract.ZeroInflated = transformRecords(m.ZeroInflation(), exponentiate)
	}

	log.Debug().
		Str("model", extract.Name).
		Str("family", family.String()).
		Bool("exponentiated", exponentiate).
		Int("coefficients", len(extract.Records)).
		Int("zero_inflated", len(extract.ZeroInflated)).
		Msg("extracted model")

	return extract, nil
}

// DetectFamily maps a response descriptor onto the family taxonomy.
func DetectFamily(d Descriptor) coefficients.Family {
	switch {
	case d.ZeroInflated:
		return coefficients.FamilyZeroInflated
	case d.Mixed:
		return coefficients.FamilyMixed
	}

	switch d.Link {
	case "", "identity":
		return coefficients.FamilyLinear
	case "log", "logit":
		return coefficients.FamilyExponentiated
	}
	return coefficients.FamilyGeneralizedLinear
}

// shouldExponentiate resolves the transform selection against the
// family default.
func shouldExponentiate(family coefficients.Family, t Transform) bool {
	switch t {
	case TransformExponentiate:
		return true
	case TransformLinear:
		return false
	}
	return family.RequiresExponentiation()
}

// transformRecords applies the exponential transform to estimates and
// CI bounds. Standard errors are propagated with the delta-method
// approximation (multiplied by the exponentiated estimate), never
// exponentiated directly. Test statistics, p-values and degrees of
// freedom stay on the original scale.
func transformRecords(records []coefficients.Record, exponentiate bool) []coefficients.Record {
	out := make([]coefficients.Record, len(records))
	copy(out, records)
	if !exponentiate {
		return out
	}

	for i := range out {
		expEst := math.Exp(out[i].Estimate)
		if out[i].StdError != nil {
			out[i].StdError = coefficients.Float(*out[i].StdError * expEst)
		}
		if out[i].CI != nil {
			out[i].CI = &coefficients.Interval{
				Low:  math.Exp(out[i].CI.Low),
				High: math.Exp(out[i].CI.High),
			}
		}
		out[i].Estimate = expEst
	}
	return out
}
