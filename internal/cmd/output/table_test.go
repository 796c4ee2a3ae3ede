package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regtab/regtab/pkg/coefficients"
)

func sampleTable() *coefficients.UnifiedTableModel {
	return &coefficients.UnifiedTableModel{
		Rows: []coefficients.RowSpec{
			{Term: "(Intercept)", Label: "Intercept"},
			{Term: "age", Label: "Age in Years"},
		},
		Columns: []coefficients.ModelColumnSpec{
			{
				Index:  0,
				Header: "Barthel Index",
				Family: coefficients.FamilyLinear,
				Kinds: []coefficients.ColumnKind{
					coefficients.ColumnEstimate,
					coefficients.ColumnPValue,
				},
				Summary: coefficients.FitSummary{
					Observations: 891,
					RSquared:     coefficients.Float(0.244),
					AdjRSquared:  coefficients.Float(0.237),
				},
			},
		},
		Grid: map[coefficients.CellKey]coefficients.Cell{
			{Term: "(Intercept)", Model: 0, Kind: coefficients.ColumnEstimate}: {Value: 87.43},
			{Term: "(Intercept)", Model: 0, Kind: coefficients.ColumnPValue}:   {Value: 0.0001},
			{Term: "age", Model: 0, Kind: coefficients.ColumnEstimate}:         {Value: -0.22},
			{Term: "age", Model: 0, Kind: coefficients.ColumnPValue}:           {Value: 0.042},
		},
	}
}

func TestTableToData(t *testing.T) {
	data := TableToData(sampleTable())

	assert.Equal(t, []string{"Predictors", "Estimate", "p"}, data.Headers)
	require.Len(t, data.Rows, 4)
	assert.Equal(t, []string{"Intercept", "87.43", "<0.001"}, data.Rows[0])
	assert.Equal(t, []string{"Age in Years", "-0.22", "0.042"}, data.Rows[1])
	assert.Equal(t, []string{"Observations", "891", ""}, data.Rows[2])
	assert.Equal(t, []string{"R² / Pseudo-R²", "0.244 / 0.237", ""}, data.Rows[3])
}

func TestTableToDataMultiModel(t *testing.T) {
	table := sampleTable()
	table.Columns = append(table.Columns, coefficients.ModelColumnSpec{
		Index:   1,
		Header:  "Service Usage",
		Family:  coefficients.FamilyExponentiated,
		Kinds:   []coefficients.ColumnKind{coefficients.ColumnEstimate},
		Summary: coefficients.FitSummary{Observations: 456},
	})
	table.Grid[coefficients.CellKey{Term: "age", Model: 1, Kind: coefficients.ColumnEstimate}] = coefficients.Cell{Value: 1.01}

	data := TableToData(table)

	// Headers carry the model header prefix once more than one model
	// shares the table.
	assert.Equal(t, []string{
		"Predictors",
		"Barthel Index: Estimate",
		"Barthel Index: p",
		"Service Usage: Estimate",
	}, data.Headers)

	// The first model has no second-model cells and vice versa; absent
	// cells render blank.
	assert.Equal(t, []string{"Intercept", "87.43", "<0.001", ""}, data.Rows[0])
	assert.Equal(t, []string{"Age in Years", "-0.22", "0.042", "1.01"}, data.Rows[1])
	assert.Equal(t, []string{"Observations", "891", "", "456"}, data.Rows[2])
	assert.Equal(t, []string{"R² / Pseudo-R²", "0.244 / 0.237", "", ""}, data.Rows[3])
}

func TestTableToDataZeroInflation(t *testing.T) {
	table := &coefficients.UnifiedTableModel{
		Rows: []coefficients.RowSpec{
			{Term: "camping", Label: "Camping"},
			{Term: "(Intercept)", Label: "Intercept", Zero: true},
		},
		Columns: []coefficients.ModelColumnSpec{
			{
				Index:   0,
				Header:  "Fish Caught",
				Family:  coefficients.FamilyZeroInflated,
				Kinds:   []coefficients.ColumnKind{coefficients.ColumnEstimate},
				Summary: coefficients.FitSummary{Observations: 250},
			},
		},
		Grid: map[coefficients.CellKey]coefficients.Cell{
			{Term: "camping", Model: 0, Kind: coefficients.ColumnEstimate}:                 {Value: 2.01},
			{Term: "(Intercept)", Model: 0, Kind: coefficients.ColumnEstimate, Zero: true}: {Value: 0.38},
		},
	}

	data := TableToData(table)

	require.Len(t, data.Rows, 4)
	assert.Equal(t, []string{"Camping", "2.01"}, data.Rows[0])
	// A section separator introduces the zero-inflation block.
	assert.Equal(t, []string{"Zero-Inflated Model", ""}, data.Rows[1])
	assert.Equal(t, []string{"Intercept", "0.38"}, data.Rows[2])
	assert.Equal(t, []string{"Observations", "250"}, data.Rows[3])
}

func TestKindHeaderOverride(t *testing.T) {
	table := sampleTable()
	table.Headers = map[coefficients.ColumnKind]string{
		coefficients.ColumnEstimate: "Odds Ratios",
	}

	data := TableToData(table)
	assert.Equal(t, []string{"Predictors", "Odds Ratios", "p"}, data.Headers)
}

func TestFormatCell(t *testing.T) {
	t.Run("display string wins", func(t *testing.T) {
		cell := coefficients.Cell{Value: 0.3, Display: "0.30 (0.10 – 0.50)"}
		assert.Equal(t, "0.30 (0.10 – 0.50)", formatCell(coefficients.ColumnEstimate, cell))
	})

	t.Run("p-value formatting", func(t *testing.T) {
		assert.Equal(t, "<0.001", formatCell(coefficients.ColumnPValue, coefficients.Cell{Value: 0.0004}))
		assert.Equal(t, "0.050", formatCell(coefficients.ColumnPValue, coefficients.Cell{Value: 0.05}))
	})

	t.Run("degrees of freedom", func(t *testing.T) {
		assert.Equal(t, "97.2", formatCell(coefficients.ColumnDF, coefficients.Cell{Value: 97.21}))
	})

	t.Run("default numeric", func(t *testing.T) {
		assert.Equal(t, "-0.22", formatCell(coefficients.ColumnEstimate, coefficients.Cell{Value: -0.224}))
	})
}

func TestFitSummary(t *testing.T) {
	assert.Equal(t, "0.244 / 0.237", fitSummary(coefficients.FitSummary{
		RSquared:    coefficients.Float(0.244),
		AdjRSquared: coefficients.Float(0.237),
	}))
	assert.Equal(t, "0.190", fitSummary(coefficients.FitSummary{
		PseudoR2: coefficients.Float(0.19),
	}))
	assert.Equal(t, "", fitSummary(coefficients.FitSummary{}))
}
