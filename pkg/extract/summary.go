package extract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/regtab/regtab/pkg/coefficients"
	"github.com/regtab/regtab/pkg/errors"
)

// Summary is a serialized fitted-model summary: the YAML/JSON form of
// a modeling library's result object. It implements FittedModel, so
// models exported by the modeling side can feed the extractor without
// the library being linked in.
type Summary struct {
	ModelName    string                  `json:"name" yaml:"name"`
	Family       Descriptor              `json:"family" yaml:"family"`
	Dependent    string                  `json:"response" yaml:"response"`
	Coefs        []coefficients.Record   `json:"coefficients" yaml:"coefficients"`
	ZeroInflCoef []coefficients.Record   `json:"zero_inflation,omitempty" yaml:"zero_inflation,omitempty"`
	FitStats     coefficients.FitSummary `json:"fit" yaml:"fit"`
}

// Name implements FittedModel.
func (s *Summary) Name() string {
	return s.ModelName
}

// Descriptor implements FittedModel.
func (s *Summary) Descriptor() Descriptor {
	return s.Family
}

// Response implements FittedModel.
func (s *Summary) Response() string {
	return s.Dependent
}

// Coefficients implements FittedModel.
func (s *Summary) Coefficients() []coefficients.Record {
	return s.Coefs
}

// ZeroInflation implements FittedModel.
func (s *Summary) ZeroInflation() []coefficients.Record {
	return s.ZeroInflCoef
}

// Fit implements FittedModel.
func (s *Summary) Fit() coefficients.FitSummary {
	return s.FitStats
}

// LoadFile reads a model summary from a YAML or JSON file. The format
// is chosen by extension; anything that is not .json parses as YAML.
func LoadFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var s Summary
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	}

	if s.ModelName == "" {
		s.ModelName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &s, nil
}

// LoadFiles reads a sequence of model summaries, preserving input
// order. The first unreadable file aborts the load; per-model
// extraction problems are handled later by the reconciler.
func LoadFiles(paths ...string) ([]*Summary, error) {
	summaries := make([]*Summary, 0, len(paths))
	for _, path := range paths {
		s, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
