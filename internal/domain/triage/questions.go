package triage

import (
	"fmt"
	"strings"
)

// ClarifyingQuestions builds knowledge-base follow-ups for the current
// symptom set: duration and severity clarification, symptom-specific
// probes, and an associated-symptom check. Questions whose topic
// appears in asked are skipped; at most two are returned, in fixed
// priority order.
func ClarifyingQuestions(symptoms []Symptom, asked map[string]bool) []ClarifyingQuestion {
	names := make(map[string]bool, len(symptoms))
	var missingDuration, anyModerate bool
	for _, s := range symptoms {
		names[s.Name] = true
		if s.Duration == "" {
			missingDuration = true
		}
		if s.Severity == SeverityModerate {
			anyModerate = true
		}
	}

	var out []ClarifyingQuestion
	add := func(topic, text string) {
		if len(out) >= 2 || asked[topic] {
			return
		}
		out = append(out, ClarifyingQuestion{Topic: topic, Text: text})
	}

	if missingDuration {
		add("symptom-duration", "How long have you been experiencing these symptoms?")
	}
	if anyModerate {
		add("severity-scale", "On a scale of 1-10, how would you rate your pain or discomfort?")
	}
	if names["headache"] {
		add("headache-location", "Where exactly is your headache located? (forehead, temples, back of head)")
	}
	if names["chest pain"] {
		add("chest-pain-type", "Can you describe your chest pain? Is it sharp, dull, crushing, or burning?")
	}
	if names["fever"] {
		add("fever-temp", "Have you taken your temperature? If so, what was it?")
	}
	if names["nausea"] && !names["vomiting"] {
		add("vomiting-check", "Have you actually vomited, or just felt nauseous?")
	}

	return out
}

// PersonalizedAdvice derives advice lines from symptom durations and
// combinations.
func PersonalizedAdvice(symptoms []Symptom) []string {
	var advice []string
	names := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		names[s.Name] = true
	}

	for _, s := range symptoms {
		if s.Duration != "" && (strings.Contains(s.Duration, "week") || strings.Contains(s.Duration, "month")) {
			advice = append(advice, fmt.Sprintf(
				"Since you've had %s for %s, it's important to consult with a healthcare provider for proper evaluation.",
				s.Name, s.Duration))
			break
		}
	}

	if names["headache"] && names["dizziness"] {
		advice = append(advice,
			"The combination of headache and dizziness could indicate several conditions. Consider checking your blood pressure and staying well-hydrated.")
	}

	if names["fatigue"] && len(symptoms) >= 3 {
		advice = append(advice,
			"Multiple symptoms with fatigue suggest your body may be fighting an infection or dealing with stress. Prioritize rest and nutrition.")
	}

	return advice
}
