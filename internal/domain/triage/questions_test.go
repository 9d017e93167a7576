package triage

import (
	"strings"
	"testing"
)

func TestClarifyingQuestions_LimitTwo(t *testing.T) {
	symptoms := []Symptom{
		{Name: "headache", Severity: SeverityModerate},
		{Name: "chest pain", Severity: SeverityModerate},
		{Name: "fever", Severity: SeverityModerate},
	}
	out := ClarifyingQuestions(symptoms, nil)
	if len(out) > 2 {
		t.Fatalf("expected at most 2 questions, got %d", len(out))
	}
}

func TestClarifyingQuestions_SkipsAskedTopics(t *testing.T) {
	symptoms := []Symptom{{Name: "headache", Severity: SeverityMild, Duration: "2 days"}}
	asked := map[string]bool{"headache-location": true}
	out := ClarifyingQuestions(symptoms, asked)
	for _, q := range out {
		if q.Topic == "headache-location" {
			t.Fatal("already-asked topic must not repeat")
		}
	}
}

func TestClarifyingQuestions_NauseaWithoutVomiting(t *testing.T) {
	symptoms := []Symptom{{Name: "nausea", Severity: SeverityMild, Duration: "1 day"}}
	out := ClarifyingQuestions(symptoms, nil)
	found := false
	for _, q := range out {
		if q.Topic == "vomiting-check" {
			found = true
		}
	}
	if !found {
		t.Error("expected the vomiting clarification for nausea alone")
	}

	symptoms = append(symptoms, Symptom{Name: "vomiting", Severity: SeverityMild, Duration: "1 day"})
	for _, q := range ClarifyingQuestions(symptoms, nil) {
		if q.Topic == "vomiting-check" {
			t.Error("vomiting clarification should be suppressed when vomiting is present")
		}
	}
}

func TestPersonalizedAdvice_ChronicDuration(t *testing.T) {
	symptoms := []Symptom{{Name: "cough", Severity: SeverityMild, Duration: "3 weeks"}}
	advice := PersonalizedAdvice(symptoms)
	if len(advice) == 0 {
		t.Fatal("expected chronic-duration advice")
	}
	if !strings.Contains(advice[0], "3 weeks") {
		t.Errorf("advice should mention the duration, got %q", advice[0])
	}
}

func TestPersonalizedAdvice_Combinations(t *testing.T) {
	symptoms := []Symptom{
		{Name: "headache", Severity: SeverityMild},
		{Name: "dizziness", Severity: SeverityMild},
		{Name: "fatigue", Severity: SeverityMild},
	}
	advice := PersonalizedAdvice(symptoms)
	if len(advice) != 2 {
		t.Fatalf("expected blood-pressure and fatigue advice, got %d lines", len(advice))
	}
}

func TestSeverityRank(t *testing.T) {
	if !(SeverityMild.Rank() < SeverityModerate.Rank() && SeverityModerate.Rank() < SeveritySevere.Rank()) {
		t.Error("severity ranks must order mild < moderate < severe")
	}
	if Severity("unknown").Rank() != 0 {
		t.Error("unknown severity must rank below mild")
	}
}
