package coefficients

// Family identifies the statistical family of a fitted model. The
// family decides which statistic columns are meaningful and whether
// estimates are presented on the multiplicative scale.
type Family string

// Recognized model families.
const (
	// FamilyLinear is an ordinary linear model; estimates stay on the
	// linear scale and p-values are Wald-based.
	FamilyLinear Family = "linear"

	// FamilyExponentiated is a generalized model with a log or logit
	// link whose coefficients are presented as multiplicative effects
	// (odds ratios, incidence rate ratios).
	FamilyExponentiated Family = "exponentiated"

	// FamilyGeneralizedLinear is a generalized model kept on the
	// linear (link) scale.
	FamilyGeneralizedLinear Family = "generalized-linear"

	// FamilyZeroInflated is a two-part count model carrying a separate
	// zero-inflation coefficient block.
	FamilyZeroInflated Family = "zero-inflated"

	// FamilyMixed is a mixed-effects model with approximated
	// degrees-of-freedom-based p-values.
	FamilyMixed Family = "mixed"
)

// String returns the string representation of a family.
func (f Family) String() string {
	return string(f)
}

// Valid reports whether f is a recognized family.
func (f Family) Valid() bool {
	switch f {
	case FamilyLinear, FamilyExponentiated, FamilyGeneralizedLinear,
		FamilyZeroInflated, FamilyMixed:
		return true
	}
	return false
}

// RequiresExponentiation reports whether estimates and CI bounds are
// presented on the exponentiated (multiplicative) scale by default.
func (f Family) RequiresExponentiation() bool {
	switch f {
	case FamilyExponentiated, FamilyZeroInflated:
		return true
	}
	return false
}

// SupportsDF reports whether the family carries meaningful
// degrees-of-freedom columns.
func (f Family) SupportsDF() bool {
	return f == FamilyMixed
}

// HasZeroInflationBlock reports whether the family carries a second
// zero-inflation coefficient block.
func (f Family) HasZeroInflationBlock() bool {
	return f == FamilyZeroInflated
}
