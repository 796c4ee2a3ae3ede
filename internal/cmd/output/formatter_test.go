package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		Headers: []string{"Predictors", "Estimate", "p"},
		Rows: [][]string{
			{"Intercept", "87.43", "<0.001"},
			{"Age in Years", "-0.22", "0.042"},
		},
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{Indent: "  "}).Format(&buf, testData()))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "87.43", decoded[0]["Estimate"])
	assert.Equal(t, "Age in Years", decoded[1]["Predictors"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLFormatter{}).Format(&buf, testData()))

	out := buf.String()
	assert.Contains(t, out, "Predictors: Intercept")
	assert.Contains(t, out, "Age in Years")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, testData()))

	out := buf.String()
	assert.Contains(t, out, "PREDICTORS")
	assert.Contains(t, out, "87.43")
	assert.Contains(t, out, "Age in Years")
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(&buf, testData()))

	out := buf.String()
	assert.Contains(t, out, "| Predictors |")
	assert.Contains(t, out, "| Intercept")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"markdown", FormatMarkdown, false},
		{"", Format(""), false},
		{"csv", Format(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatTable, DetectFormat("table"))
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &MarkdownFormatter{}, NewFormatter(FormatMarkdown))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter(Format("unknown")))
}

func TestRowsToMaps(t *testing.T) {
	data := Data{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1"}},
	}
	maps := rowsToMaps(data)
	require.Len(t, maps, 1)
	// Short rows omit the trailing columns rather than padding them.
	assert.Equal(t, "1", maps[0]["a"])
	_, ok := maps[0]["b"]
	assert.False(t, ok)
}
