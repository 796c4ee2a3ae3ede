package reconcile_test

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/reconcile"
)

// genTerms generates a non-empty slice of distinct coefficient names.
func genTerms() gopter.Gen {
	return gen.SliceOfN(6, gen.Identifier()).Map(func(names []string) []string {
		seen := make(map[string]bool)
		out := make([]string, 0, len(names))
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
		return out
	}).SuchThat(func(names []string) bool { return len(names) > 0 })
}

func buildTable(t *testing.T, model *coefficients.ModelExtract, opts ...reconcile.Option) *coefficients.UnifiedTableModel {
	t.Helper()
	r, err := reconcile.New(opts...)
	if err != nil {
		t.Fatalf("new reconciler: %v", err)
	}
	result, err := r.Reconcile(context.Background(), []*coefficients.ModelExtract{model})
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	return result.Table
}

func sameRows(a, b []coefficients.RowSpec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestKeyedOverrideProperties checks the keyed-override laws: adding
// keys that match no row never changes the output, and lookup order
// never matters.
func TestKeyedOverrideProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("unmatched keys are inert", prop.ForAll(
		func(names []string, extra string) bool {
			model := linearExtract("m", names...)

			overrides := map[string]string{names[0]: "Labelled"}
			base := buildTable(t, model,
				reconcile.WithPredictorLabels(coefficients.Keyed(overrides)))

			withExtra := map[string]string{names[0]: "Labelled"}
			key := "zz_" + extra // never collides with gen.Identifier terms already used
			withExtra[key] = "Never shown"
			superset := buildTable(t, model,
				reconcile.WithPredictorLabels(coefficients.Keyed(withExtra)))

			return sameRows(base.Rows, superset.Rows)
		},
		genTerms(),
		gen.Identifier(),
	))

	properties.Property("row order is independent of override coverage", prop.ForAll(
		func(names []string) bool {
			model := linearExtract("m", names...)

			all := make(map[string]string, len(names))
			for _, n := range names {
				all[n] = "L:" + n
			}
			full := buildTable(t, model,
				reconcile.WithPredictorLabels(coefficients.Keyed(all)))
			none := buildTable(t, model)

			for i := range names {
				if full.Rows[i].Term != none.Rows[i].Term {
					return false
				}
			}
			return true
		},
		genTerms(),
	))

	properties.TestingRun(t)
}

// TestFilterProperties checks the filter laws: removing a set is the
// same as keeping its complement, and filtering preserves relative
// order.
func TestFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("remove equals keep of the complement", prop.ForAll(
		func(names []string, mask []bool) bool {
			model := linearExtract("m", names...)

			var removeSet, keepSet []string
			for i, n := range names {
				if i < len(mask) && mask[i] {
					removeSet = append(removeSet, n)
				} else {
					keepSet = append(keepSet, n)
				}
			}
			if len(keepSet) == 0 {
				return true // empty tables compare trivially
			}

			removed := buildTable(t, model,
				reconcile.WithTermFilter(coefficients.Remove(removeSet...)))
			kept := buildTable(t, model,
				reconcile.WithTermFilter(coefficients.Keep(keepSet...)))

			return sameRows(removed.Rows, kept.Rows)
		},
		genTerms(),
		gen.SliceOfN(6, gen.Bool()),
	))

	properties.Property("filtering preserves relative order", prop.ForAll(
		func(names []string, mask []bool) bool {
			model := linearExtract("m", names...)

			var keepSet []string
			for i, n := range names {
				if i < len(mask) && mask[i] {
					keepSet = append(keepSet, n)
				}
			}
			if len(keepSet) == 0 {
				return true
			}

			table := buildTable(t, model,
				reconcile.WithTermFilter(coefficients.Keep(keepSet...)))

			pos := make(map[string]int, len(names))
			for i, n := range names {
				pos[n] = i
			}
			last := -1
			for _, row := range table.Rows {
				if pos[row.Term] < last {
					return false
				}
				last = pos[row.Term]
			}
			return true
		},
		genTerms(),
		gen.SliceOfN(6, gen.Bool()),
	))

	properties.TestingRun(t)
}

// TestUnionProperties checks the row-union laws across two models.
func TestUnionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("first model's coefficients lead the union", prop.ForAll(
		func(first, second []string) bool {
			a := linearExtract("a", first...)
			b := linearExtract("b", second...)

			r, err := reconcile.New()
			if err != nil {
				return false
			}
			result, err := r.Reconcile(context.Background(), []*coefficients.ModelExtract{a, b})
			if err != nil {
				return false
			}

			rows := result.Table.Rows
			if len(rows) < len(first) {
				return false
			}
			for i, term := range first {
				if rows[i].Term != term {
					return false
				}
			}
			// Every coefficient of the second model appears somewhere.
			present := make(map[string]bool, len(rows))
			for _, row := range rows {
				present[row.Term] = true
			}
			for _, term := range second {
				if !present[term] {
					return false
				}
			}
			return true
		},
		genTerms(),
		genTerms(),
	))

	properties.TestingRun(t)
}
