package reconcile

import (
	"github.com/regtab/regtab/pkg/coefficients"
)

// unionRows builds the unified row set: the union of coefficient
// identities across the extract sequence in first-seen order (model
// 1's coefficients first, then any new identities introduced only by
// later models). Zero-inflation rows form a second block after all
// count rows, unioned the same way.
func unionRows(extracts []*coefficients.ModelExtract) []coefficients.RowSpec {
	var rows []coefficients.RowSpec

	seen := make(map[string]bool)
	for _, e := range extracts {
		for _, rec := range e.Records {
			if seen[rec.Term] {
				continue
			}
			seen[rec.Term] = true
			rows = append(rows, coefficients.RowSpec{Term: rec.Term})
		}
	}

	seenZero := make(map[string]bool)
	for _, e := range extracts {
		for _, rec := range e.ZeroInflated {
			if seenZero[rec.Term] {
				continue
			}
			seenZero[rec.Term] = true
			rows = append(rows, coefficients.RowSpec{Term: rec.Term, Zero: true})
		}
	}

	return rows
}

// filterRows applies the term filter, preserving the original
// relative order of surviving rows. The filter matches coefficient
// identity, so it applies to count and zero-inflation rows alike.
func filterRows(rows []coefficients.RowSpec, filter *coefficients.TermFilter) []coefficients.RowSpec {
	if filter == nil {
		return rows
	}
	out := make([]coefficients.RowSpec, 0, len(rows))
	for _, row := range rows {
		if filter.Keeps(row.Term) {
			out = append(out, row)
		}
	}
	return out
}
