package suite

import (
	"time"

	"github.com/DjordjeVuckovic/booltable/internal/sat"
)

// Suite is a YAML file of equations with their expected truth tables.
type Suite struct {
	Name        string `yaml:"name" schema:"required,minLength=1"`
	Description string `yaml:"description"`
	// MaxInputs is passed to the pipeline; zero means no extra limit.
	MaxInputs int `yaml:"max_inputs,omitempty" schema:"minimum=0"`
	// Repeat evaluates every case this many times to sample latency.
	Repeat int    `yaml:"repeat,omitempty" schema:"minimum=0,default=1"`
	Cases  []Case `yaml:"cases" schema:"required,minItems=1"`
}

type Case struct {
	ID       string `yaml:"id" schema:"required,minLength=1"`
	Equation string `yaml:"equation" schema:"required"`
	// Outputs is the expected output column, top row first, as 0s and 1s.
	Outputs        string             `yaml:"outputs,omitempty" schema:"pattern=^[01]+$"`
	Classification sat.Classification `yaml:"classification,omitempty" schema:"enum=tautology|contradiction|contingent"`
	// Error marks equations that must be rejected.
	Error bool `yaml:"error,omitempty"`
}

type CaseResult struct {
	ID             string             `json:"id"`
	Equation       string             `json:"equation"`
	Passed         bool               `json:"passed"`
	Failures       []string           `json:"failures,omitempty"`
	Outputs        string             `json:"outputs,omitempty"`
	Classification sat.Classification `json:"classification,omitempty"`
	Error          string             `json:"error,omitempty"`
	Latency        Latency            `json:"latency"`
}

type Summary struct {
	Name     string        `json:"name"`
	Results  []CaseResult  `json:"results"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Latency  Latency       `json:"latency"`
	Duration time.Duration `json:"duration"`
}

// OK reports whether every case passed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}
