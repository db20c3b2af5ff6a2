package confidence

import (
	"math"
	"sort"

	"revolucare-service/internal/app/models"
)

// Signal is one raw confidence input in the 0..1 range with a label used for
// the factors list.
type Signal struct {
	Name   string
	Value  float64
	Weight float64
}

// Score normalizes heterogeneous raw signals into one 0-100 score. The
// aggregate is the weighted mean of the signals, capped at the weakest signal
// plus a 20-point allowance so one bad input always drags the result down.
// The same aggregation is used by the analysis orchestrator and the option
// generator. Deterministic for identical input.
func Score(signals []Signal) models.ConfidenceScore {
	if len(signals) == 0 {
		return models.ConfidenceScore{
			Score:   0,
			Level:   models.ConfidenceLevelLow,
			Factors: []string{"no confidence signals reported"},
		}
	}

	var weightedSum, weightTotal float64
	minValue := math.Inf(1)
	for _, signal := range signals {
		weight := signal.Weight
		if weight <= 0 {
			weight = 1
		}
		value := clamp01(signal.Value)
		weightedSum += value * weight
		weightTotal += weight
		if value < minValue {
			minValue = value
		}
	}

	aggregate := weightedSum / weightTotal
	ceiling := minValue + 0.20
	if aggregate > ceiling {
		aggregate = ceiling
	}

	score := int(math.Round(clamp01(aggregate) * 100))
	return models.ConfidenceScore{
		Score:   score,
		Level:   models.ConfidenceLevelForScore(score),
		Factors: topFactors(signals),
	}
}

// FromValues scores unlabeled, equally weighted raw signals.
func FromValues(values []float64) models.ConfidenceScore {
	signals := make([]Signal, 0, len(values))
	for _, value := range values {
		signals = append(signals, Signal{Name: "extraction signal", Value: value})
	}
	return Score(signals)
}

// topFactors returns up to three signal names ordered by how much each one
// pulls the score down, weakest first. Equal values keep input order.
func topFactors(signals []Signal) []string {
	ordered := make([]Signal, len(signals))
	copy(ordered, signals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Value < ordered[j].Value
	})

	limit := 3
	if len(ordered) < limit {
		limit = len(ordered)
	}
	factors := make([]string, 0, limit)
	seen := make(map[string]bool, limit)
	for _, signal := range ordered {
		if len(factors) == limit {
			break
		}
		if seen[signal.Name] {
			continue
		}
		seen[signal.Name] = true
		factors = append(factors, signal.Name)
	}
	return factors
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
