package triage

import (
	"strings"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

// AssessUrgency classifies one conversation turn. Rules apply in a
// fixed order and the first hit wins: emergency phrases in the raw
// utterance, high phrases, symptom-name co-occurrence pairs, any severe
// symptom, four or more distinct symptoms, otherwise low.
func AssessUrgency(cat *catalog.Catalog, symptoms []Symptom, utterance string) UrgencyLevel {
	lower := strings.ToLower(utterance)

	for _, phrase := range cat.EmergencyPhrases {
		if strings.Contains(lower, phrase) {
			return UrgencyEmergency
		}
	}

	for _, phrase := range cat.HighPhrases {
		if strings.Contains(lower, phrase) {
			return UrgencyHigh
		}
	}

	names := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		names[s.Name] = true
	}
	// Pair members match extracted canonical names literally, so a pair
	// naming a token outside the lexicon never fires.
	for _, p := range cat.UrgencyPairs {
		if names[p.First] && names[p.Second] {
			return UrgencyLevel(p.Level)
		}
	}

	for _, s := range symptoms {
		if s.Severity == SeveritySevere {
			return UrgencyHigh
		}
	}

	if len(symptoms) >= 4 {
		return UrgencyMedium
	}

	return UrgencyLow
}
