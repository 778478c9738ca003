package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/booltable/internal/sat"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Repeat < 0 || s.MaxInputs < 0 {
		return nil, fmt.Errorf("repeat and max_inputs must not be negative")
	}
	if s.Repeat == 0 {
		s.Repeat = 1
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Equation == "" {
			return nil, fmt.Errorf("case %q has no equation", c.ID)
		}
		if c.Error && (c.Outputs != "" || c.Classification != "") {
			return nil, fmt.Errorf("case %q expects an error and cannot declare outputs or classification", c.ID)
		}
		for j, r := range c.Outputs {
			if r != '0' && r != '1' {
				return nil, fmt.Errorf("case %q: invalid output bit %q at %d", c.ID, r, j)
			}
		}
		switch c.Classification {
		case "", sat.Tautology, sat.Contradiction, sat.Contingent:
		default:
			return nil, fmt.Errorf("case %q: unknown classification %q", c.ID, c.Classification)
		}
	}

	return &s, nil
}
