package labels_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regtab/regtab/pkg/labels"
)

func TestDerive(t *testing.T) {
	p := labels.NewStatic().
		SetVariable("age", "Age in Years").
		SetVariable("c172code", "Education").
		SetVariable("c172code_extra", "Extended Education").
		SetLevel("c172code", "3", "high level of education")

	tests := []struct {
		name string
		term string
		want string
	}{
		{"exact variable match", "age", "Age in Years"},
		{"level with description", "c172code3", "Education: high level of education"},
		{"level without description", "c172code2", "Education: 2"},
		{"longest prefix wins", "c172code_extra2", "Extended Education: 2"},
		{"unknown term falls back verbatim", "neg_c_7", "neg_c_7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels.Derive(p, tt.term))
		})
	}

	t.Run("nil provider", func(t *testing.T) {
		assert.Equal(t, "age", labels.Derive(nil, "age"))
	})
}

func TestStatic(t *testing.T) {
	p := labels.NewStatic().
		SetVariable("b", "Second").
		SetVariable("a", "First")

	// Registration order is preserved, not sorted.
	assert.Equal(t, []string{"b", "a"}, p.Variables())

	desc, ok := p.Variable("a")
	assert.True(t, ok)
	assert.Equal(t, "First", desc)

	_, ok = p.Level("a", "1")
	assert.False(t, ok)

	// Registering a level for an unseen variable makes the variable
	// known under its own name.
	p.SetLevel("sex", "2", "female")
	desc, ok = p.Variable("sex")
	assert.True(t, ok)
	assert.Equal(t, "sex", desc)

	level, ok := p.Level("sex", "2")
	assert.True(t, ok)
	assert.Equal(t, "female", level)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Std Error", labels.Humanize("std_error"))
	assert.Equal(t, "P Value", labels.Humanize("p.value"))
	assert.Equal(t, "", labels.Humanize(""))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.yaml")
	content := `variables:
  age:
    label: Age in Years
  c172code:
    label: Education
    levels:
      "2": intermediate
      "3": high
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := labels.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Age in Years", labels.Derive(p, "age"))
	assert.Equal(t, "Education: high", labels.Derive(p, "c172code3"))
	assert.Equal(t, "Education: intermediate", labels.Derive(p, "c172code2"))

	t.Run("missing file", func(t *testing.T) {
		_, err := labels.LoadFile(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
	})
}
