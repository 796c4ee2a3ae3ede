package coefficients

// Interval represents a confidence interval for a point estimate.
type Interval struct {
	Low  float64 `json:"low" yaml:"low"`   // Lower bound
	High float64 `json:"high" yaml:"high"` // Upper bound
}

// Record is a single coefficient row extracted from a fitted model.
// Optional statistics are pointers; nil means the source model did not
// report the value. Records are immutable once extracted.
type Record struct {
	// Term is the coefficient identity, e.g. "(Intercept)" or "c172code3".
	Term string `json:"term" yaml:"term"`

	// Estimate is the point estimate, on whatever scale the extract
	// was produced (linear or exponentiated).
	Estimate float64 `json:"estimate" yaml:"estimate"`

	// StdError is the standard error, if reported.
	StdError *float64 `json:"std_error,omitempty" yaml:"std_error,omitempty"`

	// CI is the confidence interval, if reported.
	CI *Interval `json:"ci,omitempty" yaml:"ci,omitempty"`

	// Statistic is the test statistic, if reported.
	Statistic *float64 `json:"statistic,omitempty" yaml:"statistic,omitempty"`

	// PValue is the p-value, if reported.
	PValue *float64 `json:"p_value,omitempty" yaml:"p_value,omitempty"`

	// DF is the degrees of freedom, if the model family reports them.
	DF *float64 `json:"df,omitempty" yaml:"df,omitempty"`

	// StdEstimate and StdStdError are the standardized estimate and
	// its standard error, if reported.
	StdEstimate *float64 `json:"std_estimate,omitempty" yaml:"std_estimate,omitempty"`
	StdStdError *float64 `json:"std_std_error,omitempty" yaml:"std_std_error,omitempty"`
}

// Float returns a pointer to v. Convenience for building records with
// optional statistics.
func Float(v float64) *float64 {
	return &v
}
