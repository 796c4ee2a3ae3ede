// Package labels resolves human-readable display labels for
// coefficient terms from variable and factor-level metadata attached
// to the source data.
package labels

// Provider supplies variable and factor-level descriptions keyed by
// variable identity. Implementations are read-only collaborators; the
// modeling side owns the metadata.
type Provider interface {
	// Variable returns the description for a variable identity.
	Variable(name string) (string, bool)

	// Level returns the description for one level of a factor
	// variable.
	Level(name, level string) (string, bool)

	// Variables returns all known variable identities.
	Variables() []string
}

// Static is a map-backed Provider, useful for tests and for metadata
// loaded from configuration files.
type Static struct {
	vars   map[string]string
	levels map[string]map[string]string
	order  []string
}

// NewStatic creates an empty Static provider.
func NewStatic() *Static {
	return &Static{
		vars:   make(map[string]string),
		levels: make(map[string]map[string]string),
	}
}

// SetVariable registers a variable description.
func (s *Static) SetVariable(name, description string) *Static {
	if _, exists := s.vars[name]; !exists {
		s.order = append(s.order, name)
	}
	s.vars[name] = description
	return s
}

// SetLevel registers a factor-level description.
func (s *Static) SetLevel(name, level, description string) *Static {
	if _, exists := s.vars[name]; !exists {
		s.vars[name] = name
		s.order = append(s.order, name)
	}
	if s.levels[name] == nil {
		s.levels[name] = make(map[string]string)
	}
	s.levels[name][level] = description
	return s
}

// Variable implements Provider.
func (s *Static) Variable(name string) (string, bool) {
	desc, ok := s.vars[name]
	return desc, ok
}

// Level implements Provider.
func (s *Static) Level(name, level string) (string, bool) {
	if s.levels[name] == nil {
		return "", false
	}
	desc, ok := s.levels[name][level]
	return desc, ok
}

// Variables implements Provider.
func (s *Static) Variables() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
