package suite

import (
	"math"
	"slices"
	"time"
)

// Latency summarizes how long pipeline runs took. Quantiles use the nearest-rank method.
type Latency struct {
	Samples int           `json:"samples"`
	Mean    time.Duration `json:"mean"`
	P50     time.Duration `json:"p50"`
	P90     time.Duration `json:"p90"`
	P99     time.Duration `json:"p99"`
	Max     time.Duration `json:"max"`

	durations []time.Duration
}

func measure(durations []time.Duration) Latency {
	if len(durations) == 0 {
		return Latency{}
	}

	sorted := slices.Sorted(slices.Values(durations))

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return Latency{
		Samples:   len(sorted),
		Mean:      total / time.Duration(len(sorted)),
		P50:       nearestRank(sorted, 0.50),
		P90:       nearestRank(sorted, 0.90),
		P99:       nearestRank(sorted, 0.99),
		Max:       sorted[len(sorted)-1],
		durations: sorted,
	}
}

// nearestRank returns the smallest sample with at least q of all samples at or below it.
func nearestRank(sorted []time.Duration, q float64) time.Duration {
	rank := int(math.Ceil(q * float64(len(sorted))))
	return sorted[max(rank, 1)-1]
}

// merge pools the samples of several measurements.
func merge(parts []Latency) Latency {
	var all []time.Duration
	for _, p := range parts {
		all = append(all, p.durations...)
	}
	return measure(all)
}
