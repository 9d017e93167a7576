package triage

import (
	"math"
	"sort"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

const (
	maxLikelihood       = 95
	likelihoodThreshold = 30
)

// Diagnose scores every catalog condition against the symptom set and
// returns candidates with likelihood >= 30, sorted by likelihood
// descending. Ties keep catalog order. The formula rewards breadth of
// match and amplifies on severity: matchCount / listed symptoms * 100,
// then x1.2 when any symptom is severe, x1.0 when any is moderate,
// x0.8 otherwise, capped at 95.
func Diagnose(cat *catalog.Catalog, symptoms []Symptom) []ScoredCondition {
	names := make(map[string]bool, len(symptoms))
	var anySevere, anyModerate bool
	for _, s := range symptoms {
		names[s.Name] = true
		switch s.Severity {
		case SeveritySevere:
			anySevere = true
		case SeverityModerate:
			anyModerate = true
		}
	}

	multiplier := 0.8
	if anySevere {
		multiplier = 1.2
	} else if anyModerate {
		multiplier = 1.0
	}

	var out []ScoredCondition
	for _, cond := range cat.Conditions {
		matchCount := 0
		for _, name := range cond.Symptoms {
			if names[name] {
				matchCount++
			}
		}
		if matchCount == 0 {
			continue
		}

		base := float64(matchCount) / float64(len(cond.Symptoms)) * 100
		adjusted := math.Min(maxLikelihood, base*multiplier)
		likelihood := int(math.Round(adjusted))
		if likelihood < likelihoodThreshold {
			continue
		}
		out = append(out, ScoredCondition{Condition: cond, Likelihood: likelihood})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likelihood > out[j].Likelihood
	})
	return out
}
