package labels

import (
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/regtab/regtab/pkg/errors"
)

// fileSchema is the on-disk form of variable/level metadata.
type fileSchema struct {
	Variables map[string]struct {
		Label  string            `yaml:"label"`
		Levels map[string]string `yaml:"levels,omitempty"`
	} `yaml:"variables"`
}

// LoadFile reads variable and factor-level metadata from a YAML file
// into a Static provider. Variables register in sorted order so
// prefix matching stays deterministic.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	names := make([]string, 0, len(schema.Variables))
	for name := range schema.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	s := NewStatic()
	for _, name := range names {
		v := schema.Variables[name]
		label := v.Label
		if label == "" {
			label = name
		}
		s.SetVariable(name, label)
		for level, desc := range v.Levels {
			s.SetLevel(name, level, desc)
		}
	}
	return s, nil
}
