package consult

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/afyachat/afyachat/internal/domain/catalog"
	"github.com/afyachat/afyachat/internal/domain/session"
	"github.com/afyachat/afyachat/internal/domain/triage"
)

const disclaimer = "Please note: I'm an automated assistant, not a doctor. " +
	"This guidance is informational and does not replace a consultation with a qualified healthcare provider."

type Service struct {
	cat       *catalog.Catalog
	extractor *triage.Extractor
	store     session.Store
}

func NewService(cat *catalog.Catalog, store session.Store) (*Service, error) {
	extractor, err := triage.NewExtractor(cat)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}
	return &Service{cat: cat, extractor: extractor, store: store}, nil
}

func (s *Service) OpenSession(ctx context.Context) (session.State, error) {
	sess, err := s.store.Create(ctx)
	if err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (session.State, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *Service) EndSession(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// HandleMessage runs one conversation turn. The contextual phrase and
// follow-up questions are computed against the pre-merge state, then
// the new symptoms are merged and urgency, conditions and medications
// are assessed over the accumulated set.
func (s *Service) HandleMessage(ctx context.Context, sessionID uuid.UUID, text string) (*MessageResponse, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	newSymptoms := s.extractor.Extract(text)
	medsRequest := isMedicationRequest(text)

	phrase := sess.ContextualPhrase(newSymptoms)
	followUps := sess.FollowUpQuestions(newSymptoms)

	combined := mergeUnique(sess.Symptoms(), newSymptoms)
	urgency := triage.AssessUrgency(s.cat, combined, text)
	sess.Merge(newSymptoms, urgency)

	conditions := triage.Diagnose(s.cat, combined)
	medications := triage.Recommend(s.cat, combined, conditions)

	clarifying := triage.ClarifyingQuestions(newSymptoms, sess.DiscussedTopics())
	for _, q := range clarifying {
		sess.AddDiscussedTopic(q.Topic)
	}

	advice := triage.PersonalizedAdvice(combined)

	showDisclaimer := sess.NeedsDisclaimer()
	if showDisclaimer {
		sess.AddDiscussedTopic("disclaimer-shown")
	}

	resp := &MessageResponse{
		SessionID:           sessionID,
		ContextualPhrase:    phrase,
		Urgency:             urgency,
		NewSymptoms:         newSymptoms,
		Symptoms:            combined,
		Conditions:          conditions,
		Medications:         medications,
		FollowUpQuestions:   followUps,
		ClarifyingQuestions: clarifying,
		Advice:              advice,
		ShowDisclaimer:      showDisclaimer,
	}
	if urgency != triage.UrgencyEmergency {
		if medsRequest && len(combined) == 0 {
			resp.Guidance = triage.EmergencyKit()
		} else {
			resp.Guidance = triage.FormatRecommendations(medications)
		}
	}
	resp.Reply = composeReply(resp, combined, medsRequest)

	return resp, nil
}

// medicationRequestMarkers flag a turn as asking about treatment rather
// than (or in addition to) describing symptoms.
var medicationRequestMarkers = []string{
	"medicine",
	"medication",
	"drug",
	"treatment",
	"paracetamol",
	"panadol",
	"what should i take",
}

func isMedicationRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range medicationRequestMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// composeReply assembles the conversational answer. An emergency
// classification replaces medication guidance entirely.
func composeReply(resp *MessageResponse, combined []triage.Symptom, medsRequest bool) string {
	var b strings.Builder

	if resp.ContextualPhrase != "" {
		b.WriteString(resp.ContextualPhrase)
	}

	switch {
	case resp.Urgency == triage.UrgencyEmergency:
		b.WriteString("This sounds like a medical emergency. ")
		b.WriteString("Please call your local emergency number or go to the nearest emergency department right away. ")
		b.WriteString("Do not wait for symptoms to improve on their own.")
		return b.String()

	case len(combined) == 0:
		if medsRequest && resp.Guidance != "" {
			b.WriteString(resp.Guidance)
		} else {
			b.WriteString("I couldn't identify specific symptoms from your message. ")
			b.WriteString("Could you tell me more about what you're feeling? For example, where it hurts, how long it's lasted, and how severe it is.")
		}
		if resp.ShowDisclaimer {
			b.WriteString("\n\n")
			b.WriteString(disclaimer)
		}
		return b.String()
	}

	names := make([]string, 0, len(combined))
	for _, s := range combined {
		names = append(names, s.Name)
	}
	fmt.Fprintf(&b, "Based on what you've described, I'm tracking: %s. ", strings.Join(names, ", "))

	switch resp.Urgency {
	case triage.UrgencyHigh:
		b.WriteString("Your symptoms suggest you should see a healthcare provider soon, ideally within the next 24 hours. ")
	case triage.UrgencyMedium:
		b.WriteString("You have several symptoms at once, so keep a close eye on how you're feeling. ")
	}

	if len(resp.Conditions) > 0 {
		top := resp.Conditions[0]
		fmt.Fprintf(&b, "The pattern most closely matches %s (%d%% match). ", top.Name, top.Likelihood)
	}

	for _, a := range resp.Advice {
		b.WriteString(a)
		b.WriteString(" ")
	}

	if resp.Guidance != "" {
		b.WriteString("\n\n")
		b.WriteString(resp.Guidance)
	}

	if resp.ShowDisclaimer {
		b.WriteString("\n\n")
		b.WriteString(disclaimer)
	}
	return b.String()
}

// mergeUnique mirrors the session merge rule: the first record for a
// canonical name wins.
func mergeUnique(prior, incoming []triage.Symptom) []triage.Symptom {
	seen := make(map[string]bool, len(prior)+len(incoming))
	out := make([]triage.Symptom, 0, len(prior)+len(incoming))
	for _, s := range prior {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	for _, s := range incoming {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out
}
