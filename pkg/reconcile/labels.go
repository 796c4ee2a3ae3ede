package reconcile

import (
	"fmt"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
	"github.com/regtab/regtab/pkg/labels"
)

// resolveLabels fills in the display label of every row. Positional
// overrides must match the post-filter row count exactly; a mismatch
// is fatal and produces no partial table. Keyed overrides match by
// identity, unmatched keys are ignored silently, and unmatched rows
// fall through to the default chain: auto-derived metadata label when
// automatic labelling is enabled, otherwise the raw identity.
func (r *reconciler) resolveLabels(rows []coefficients.RowSpec) ([]coefficients.RowSpec, error) {
	override := r.predictorLabels

	if override.IsPositional() {
		if override.Len() != len(rows) {
			return nil, errors.NewConfigError("predictor labels",
				fmt.Sprintf("positional label list has %d entries but the table has %d rows after term filtering",
					override.Len(), len(rows)),
				errors.ErrInvalidConfig)
		}
		out := make([]coefficients.RowSpec, len(rows))
		for i, row := range rows {
			row.Label = override.At(i)
			out[i] = row
		}
		return out, nil
	}

	out := make([]coefficients.RowSpec, len(rows))
	for i, row := range rows {
		if label, ok := override.Lookup(row.Term); ok {
			row.Label = label
		} else {
			row.Label = r.defaultLabel(row.Term)
		}
		out[i] = row
	}
	return out, nil
}

// defaultLabel is the fallback chain for a row without an explicit
// override.
func (r *reconciler) defaultLabel(term string) string {
	if r.autoLabels {
		return labels.Derive(r.provider, term)
	}
	return term
}

// resolveHeader picks the column-group header for one model: caller
// override first (positional by model index, keyed by model name),
// then the dependent-variable label, then "Model N". Positional
// length is validated up front by composeColumns.
func (r *reconciler) resolveHeader(index int, extract *coefficients.ModelExtract) string {
	override := r.headerLabels

	if override.IsPositional() {
		return override.At(index)
	}
	if label, ok := override.Lookup(extract.Name); ok {
		return label
	}
	if extract.Response != "" {
		return extract.Response
	}
	return fmt.Sprintf("Model %d", index+1)
}
