package suite

import (
	"bytes"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/booltable/internal/sat"
	"github.com/DjordjeVuckovic/booltable/pkg/schema"
)

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile("testdata/basics.yaml")
	require.NoError(t, err)
	assert.Equal(t, "basics", s.Name)
	assert.Equal(t, 2, s.Repeat)
	require.Len(t, s.Cases, 7)
	assert.Equal(t, sat.Contingent, s.Cases[0].Classification)
	assert.True(t, s.Cases[6].Error)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "invalid yaml", yaml: "cases: [\n"},
		{name: "no cases", yaml: "name: empty\n"},
		{name: "missing id", yaml: "cases:\n  - equation: A = A\n"},
		{name: "duplicate id", yaml: "cases:\n  - id: a\n    equation: A = A\n  - id: a\n    equation: B = B\n"},
		{name: "missing equation", yaml: "cases:\n  - id: a\n"},
		{name: "bad output bit", yaml: "cases:\n  - id: a\n    equation: A = A\n    outputs: \"0x\"\n"},
		{name: "unknown classification", yaml: "cases:\n  - id: a\n    equation: A = A\n    classification: maybe\n"},
		{name: "error with outputs", yaml: "cases:\n  - id: a\n    equation: A =\n    error: true\n    outputs: \"01\"\n"},
		{name: "negative repeat", yaml: "repeat: -1\ncases:\n  - id: a\n    equation: A = A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_DefaultRepeat(t *testing.T) {
	s, err := Parse([]byte("cases:\n  - id: a\n    equation: A = A\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Repeat)
}

func TestRun_AllPass(t *testing.T) {
	s, err := LoadFromFile("testdata/basics.yaml")
	require.NoError(t, err)

	summary := Run(s)
	for _, r := range summary.Results {
		assert.True(t, r.Passed, "%s: %v", r.ID, r.Failures)
		assert.Equal(t, 2, r.Latency.Samples)
	}
	assert.True(t, summary.OK())
	assert.Equal(t, 7, summary.Passed)
	assert.Equal(t, 14, summary.Latency.Samples)
	assert.NotEmpty(t, summary.Results[6].Error)
}

func TestRun_ReportsMismatches(t *testing.T) {
	s := &Suite{
		Name:      "broken",
		Repeat:    1,
		MaxInputs: 2,
		Cases: []Case{
			{ID: "wrong-outputs", Equation: "A OR B = Z", Outputs: "0001"},
			{ID: "wrong-class", Equation: "A OR NOT A = Z", Classification: sat.Contingent},
			{ID: "should-fail", Equation: "A = A", Error: true},
			{ID: "unexpected-error", Equation: "A OR = Z"},
			{ID: "too-large", Equation: "a AND b AND c = z"},
		},
	}

	summary := Run(s)
	assert.False(t, summary.OK())
	assert.Equal(t, 0, summary.Passed)
	assert.Equal(t, 5, summary.Failed)

	assert.Contains(t, summary.Results[0].Failures[0], "expected 0001, got 0111")
	assert.Contains(t, summary.Results[1].Failures[0], "expected contingent, got tautology")
	assert.Contains(t, summary.Results[2].Failures[0], "expected an error")
	assert.Contains(t, summary.Results[3].Failures[0], "unexpected error")
	assert.Contains(t, summary.Results[4].Error, "limit is 2")
}

func TestWriteSummary(t *testing.T) {
	s, err := Parse([]byte("name: tiny\ncases:\n  - id: id\n    equation: A = A\n    outputs: \"01\"\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(Run(s), &buf))

	out := buf.String()
	assert.Contains(t, out, "=== Suite: tiny ===")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, Latency{}, measure(nil))

	tests := []struct {
		name      string
		durations []time.Duration
		mean      time.Duration
		p50       time.Duration
		p90       time.Duration
		p99       time.Duration
	}{
		{
			name:      "single sample",
			durations: []time.Duration{7 * time.Millisecond},
			mean:      7 * time.Millisecond,
			p50:       7 * time.Millisecond,
			p90:       7 * time.Millisecond,
			p99:       7 * time.Millisecond,
		},
		{
			name: "unsorted samples",
			durations: []time.Duration{
				50 * time.Millisecond,
				10 * time.Millisecond,
				30 * time.Millisecond,
				20 * time.Millisecond,
				40 * time.Millisecond,
			},
			mean: 30 * time.Millisecond,
			p50:  30 * time.Millisecond,
			p90:  50 * time.Millisecond,
			p99:  50 * time.Millisecond,
		},
		{
			name:      "ten samples",
			durations: []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			mean:      5,
			p50:       5,
			p90:       9,
			p99:       10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := measure(tt.durations)
			assert.Equal(t, len(tt.durations), l.Samples)
			assert.Equal(t, tt.mean, l.Mean)
			assert.Equal(t, tt.p50, l.P50)
			assert.Equal(t, tt.p90, l.P90)
			assert.Equal(t, tt.p99, l.P99)
			assert.Equal(t, slices.Max(tt.durations), l.Max)
		})
	}
}

func TestMerge(t *testing.T) {
	a := measure([]time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
	b := measure([]time.Duration{time.Millisecond})

	merged := merge([]Latency{a, b})
	assert.Equal(t, 3, merged.Samples)
	assert.Equal(t, 20*time.Millisecond, merged.Max)
	assert.Equal(t, 10*time.Millisecond, merged.P50)
	assert.Equal(t, Latency{}, merge(nil))
}

func TestSuiteSchema(t *testing.T) {
	s, err := schema.NewGenerator(schema.WithTagKey("yaml")).GenerateSchema(reflect.TypeFor[Suite]())
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "cases"}, s.Required)
	cases := s.Properties["cases"]
	require.NotNil(t, cases.Items)
	assert.Equal(t, []string{"id", "equation"}, cases.Items.Required)
	assert.Equal(t, "^[01]+$", cases.Items.Properties["outputs"].Pattern)
	assert.Len(t, cases.Items.Properties["classification"].Enum, 3)
	assert.Equal(t, "boolean", cases.Items.Properties["error"].Type)
}
