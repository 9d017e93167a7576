package consult

import (
	"github.com/google/uuid"

	"github.com/afyachat/afyachat/internal/domain/catalog"
	"github.com/afyachat/afyachat/internal/domain/triage"
)

type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse is the outcome of one conversation turn.
// NewSymptoms holds what this message added; Symptoms is the full
// accumulated set the assessment ran over.
type MessageResponse struct {
	SessionID           uuid.UUID                   `json:"session_id"`
	Reply               string                      `json:"reply"`
	ContextualPhrase    string                      `json:"contextual_phrase,omitempty"`
	Urgency             triage.UrgencyLevel         `json:"urgency"`
	NewSymptoms         []triage.Symptom            `json:"new_symptoms"`
	Symptoms            []triage.Symptom            `json:"symptoms"`
	Conditions          []triage.ScoredCondition    `json:"conditions"`
	Medications         []catalog.Medication        `json:"medications"`
	Guidance            string                      `json:"guidance,omitempty"`
	FollowUpQuestions   []string                    `json:"follow_up_questions,omitempty"`
	ClarifyingQuestions []triage.ClarifyingQuestion `json:"clarifying_questions,omitempty"`
	Advice              []string                    `json:"advice,omitempty"`
	ShowDisclaimer      bool                        `json:"show_disclaimer"`
}
