package coefficients

// ColumnKind identifies one statistic column in the unified table.
type ColumnKind string

// Recognized column kinds.
const (
	ColumnEstimate    ColumnKind = "estimate"
	ColumnCI          ColumnKind = "ci"
	ColumnStdError    ColumnKind = "std_error"
	ColumnStdEstimate ColumnKind = "std_estimate"
	ColumnStdStdError ColumnKind = "std_std_error"
	ColumnStatistic   ColumnKind = "statistic"
	ColumnPValue      ColumnKind = "p_value"
	ColumnDF          ColumnKind = "df"
)

// String returns the string representation of a column kind.
func (k ColumnKind) String() string {
	return string(k)
}

// RowSpec is one row of the unified table: a coefficient identity and
// its resolved display label. Zero marks rows belonging to the
// zero-inflation block.
type RowSpec struct {
	Term  string `json:"term" yaml:"term"`
	Label string `json:"label" yaml:"label"`
	Zero  bool   `json:"zero,omitempty" yaml:"zero,omitempty"`
}

// ModelColumnSpec describes one model's column group: its header, the
// statistic columns active for it, and its summary statistics.
type ModelColumnSpec struct {
	// Index is the model's position in the input sequence.
	Index int `json:"index" yaml:"index"`

	// Header is the resolved column-group header (dependent-variable
	// label, a caller override, or "Model N").
	Header string `json:"header" yaml:"header"`

	// Family is the model's family, carried for renderers that style
	// exponentiated estimates differently.
	Family Family `json:"family" yaml:"family"`

	// Kinds are the active statistic columns, in display order.
	Kinds []ColumnKind `json:"kinds" yaml:"kinds"`

	// Summary carries the model's trailing summary row values.
	Summary FitSummary `json:"summary" yaml:"summary"`
}

// HasKind reports whether the column group includes the given kind.
func (s *ModelColumnSpec) HasKind(kind ColumnKind) bool {
	for _, k := range s.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// CellKey addresses one cell of the sparse value grid.
type CellKey struct {
	Term  string     // Coefficient identity
	Model int        // Model index
	Kind  ColumnKind // Statistic column
	Zero  bool       // Zero-inflation block
}

// Cell is one grid value. Display carries the formatted string when
// presentation is resolved at construction (collapsed CI/SE); Value
// carries the underlying numerics.
type Cell struct {
	Value   float64  `json:"value" yaml:"value"`
	High    *float64 `json:"high,omitempty" yaml:"high,omitempty"` // CI upper bound for ColumnCI cells
	Display string   `json:"display,omitempty" yaml:"display,omitempty"`
}

// UnifiedTableModel is the finished table handed to an external
// renderer: ordered rows, per-model column specs, and a sparse value
// grid. An absent grid entry renders blank, never zero.
type UnifiedTableModel struct {
	Rows    []RowSpec         `json:"rows" yaml:"rows"`
	Columns []ModelColumnSpec `json:"columns" yaml:"columns"`
	Grid    map[CellKey]Cell  `json:"-" yaml:"-"`

	// Headers maps column kinds to custom header strings supplied by
	// the caller. Missing kinds use renderer defaults.
	Headers map[ColumnKind]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Cell returns the grid cell for the given key.
func (t *UnifiedTableModel) Cell(key CellKey) (Cell, bool) {
	c, ok := t.Grid[key]
	return c, ok
}

// CountRows returns the rows of the count block.
func (t *UnifiedTableModel) CountRows() []RowSpec {
	rows := make([]RowSpec, 0, len(t.Rows))
	for _, r := range t.Rows {
		if !r.Zero {
			rows = append(rows, r)
		}
	}
	return rows
}

// ZeroRows returns the rows of the zero-inflation block.
func (t *UnifiedTableModel) ZeroRows() []RowSpec {
	rows := make([]RowSpec, 0)
	for _, r := range t.Rows {
		if r.Zero {
			rows = append(rows, r)
		}
	}
	return rows
}
