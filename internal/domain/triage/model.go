package triage

import (
	"github.com/google/uuid"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

// Severity of one symptom mention.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Rank orders severities mild < moderate < severe. Unknown values rank
// below mild.
func (s Severity) Rank() int {
	switch s {
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	}
	return 0
}

// UrgencyLevel is the triage classification for a conversation.
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyLow:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyHigh:
		return 3
	case UrgencyEmergency:
		return 4
	}
	return 0
}

// Symptom is one extracted symptom record. Name is the canonical key
// into the catalog lexicon; records are never mutated in place, later
// mentions produce new records.
type Symptom struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Severity           Severity  `json:"severity"`
	Duration           string    `json:"duration,omitempty"`
	BodyPart           string    `json:"body_part,omitempty"`
	Onset              string    `json:"onset,omitempty"`
	Frequency          string    `json:"frequency,omitempty"`
	Triggers           []string  `json:"triggers,omitempty"`
	AlleviatingFactors []string  `json:"alleviating_factors,omitempty"`
}

// ScoredCondition is a transient copy of a catalog condition annotated
// with the likelihood computed for one query.
type ScoredCondition struct {
	catalog.Condition
	Likelihood int `json:"likelihood"`
}

// ClarifyingQuestion is a knowledge-base follow-up. Topic identifies
// the question so it is asked at most once per conversation.
type ClarifyingQuestion struct {
	Topic string `json:"topic"`
	Text  string `json:"text"`
}
