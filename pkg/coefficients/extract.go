package coefficients

// FitSummary carries per-model goodness-of-fit values reported by the
// modeling library. R-squared values are not recomputed here; the
// pseudo-R-squared formula is family-specific and owned by the
// library that fitted the model.
type FitSummary struct {
	// Observations is the number of observations used in the fit.
	Observations int `json:"observations" yaml:"observations"`

	// RSquared and AdjRSquared are reported for linear models.
	RSquared    *float64 `json:"r_squared,omitempty" yaml:"r_squared,omitempty"`
	AdjRSquared *float64 `json:"adj_r_squared,omitempty" yaml:"adj_r_squared,omitempty"`

	// PseudoR2 is the family-specific pseudo-R² for non-linear families.
	PseudoR2 *float64 `json:"pseudo_r2,omitempty" yaml:"pseudo_r2,omitempty"`
}

// ModelExtract is the ordered coefficient set pulled from one fitted
// model, plus the metadata the reconciler needs. Created once per
// input model; read-only afterward.
type ModelExtract struct {
	// Name identifies the source model in logs and warnings.
	Name string `json:"name" yaml:"name"`

	// Family is the detected model family.
	Family Family `json:"family" yaml:"family"`

	// Link is the response link descriptor ("identity", "log", "logit", ...).
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Response is the dependent-variable label.
	Response string `json:"response" yaml:"response"`

	// Exponentiated records whether estimates and CI bounds in
	// Records (and ZeroInflated) are on the multiplicative scale.
	Exponentiated bool `json:"exponentiated" yaml:"exponentiated"`

	// Records is the coefficient table in the order the source
	// model's summary returned it.
	Records []Record `json:"records" yaml:"records"`

	// ZeroInflated is the zero-inflation coefficient block, present
	// only for the zero-inflated family.
	ZeroInflated []Record `json:"zero_inflated,omitempty" yaml:"zero_inflated,omitempty"`

	// Fit carries the model's reported summary statistics.
	Fit FitSummary `json:"fit" yaml:"fit"`
}

// Terms returns the coefficient identities of the count block in order.
func (m *ModelExtract) Terms() []string {
	terms := make([]string, 0, len(m.Records))
	for _, r := range m.Records {
		terms = append(terms, r.Term)
	}
	return terms
}

// Record returns the count-block record for the given term.
func (m *ModelExtract) Record(term string) (Record, bool) {
	for _, r := range m.Records {
		if r.Term == term {
			return r, true
		}
	}
	return Record{}, false
}

// ZeroRecord returns the zero-inflation record for the given term.
func (m *ModelExtract) ZeroRecord(term string) (Record, bool) {
	for _, r := range m.ZeroInflated {
		if r.Term == term {
			return r, true
		}
	}
	return Record{}, false
}
