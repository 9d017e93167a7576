package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afyachat/afyachat/internal/domain/triage"
)

// Context is the accumulated state of one conversation. It is owned by
// exactly one conversation, never shared across sessions, and all
// mutations are serialized by an internal mutex so retried concurrent
// requests for the same conversation cannot interleave a merge.
type Context struct {
	mu                sync.Mutex
	id                uuid.UUID
	previousSymptoms  []triage.Symptom
	discussedTopics   map[string]bool
	urgency           triage.UrgencyLevel
	lastSymptomUpdate time.Time
	createdAt         time.Time

	now func() time.Time
}

func NewContext(id uuid.UUID) *Context {
	return newContextAt(id, time.Now)
}

func newContextAt(id uuid.UUID, now func() time.Time) *Context {
	t := now()
	return &Context{
		id:                id,
		discussedTopics:   make(map[string]bool),
		urgency:           triage.UrgencyLow,
		lastSymptomUpdate: t,
		createdAt:         t,
		now:               now,
	}
}

func (c *Context) ID() uuid.UUID { return c.id }

// Merge folds newly extracted symptoms into the conversation. Symptoms
// whose canonical name is already tracked are left untouched even when
// the new mention differs in severity; the urgency level is always
// replaced with the latest assessment.
func (c *Context) Merge(newSymptoms []triage.Symptom, urgency triage.UrgencyLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	known := make(map[string]bool, len(c.previousSymptoms))
	for _, s := range c.previousSymptoms {
		known[s.Name] = true
	}
	for _, s := range newSymptoms {
		if known[s.Name] {
			continue
		}
		known[s.Name] = true
		c.previousSymptoms = append(c.previousSymptoms, s)
	}

	c.urgency = urgency
	c.lastSymptomUpdate = c.now()
}

// ContextualPhrase builds the conversational lead-in for a turn by
// comparing the new mentions against tracked symptoms. Fragments join
// in fixed order: time prefix, recurring-symptom acknowledgement,
// worsening note, new-symptom note. Call before Merge, otherwise every
// mention looks recurring.
func (c *Context) ContextualPhrase(newSymptoms []triage.Symptom) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var parts []string

	switch hours := c.now().Sub(c.lastSymptomUpdate).Hours(); {
	case hours > 24:
		parts = append(parts, "Since it's been over a day since we last talked, ")
	case hours > 4:
		parts = append(parts, "Since we spoke earlier today, ")
	}

	if len(c.previousSymptoms) > 0 {
		prevSeverity := make(map[string]triage.Severity, len(c.previousSymptoms))
		for _, s := range c.previousSymptoms {
			prevSeverity[s.Name] = s.Severity
		}

		var common, fresh []string
		worsening := false
		for _, s := range newSymptoms {
			prev, known := prevSeverity[s.Name]
			if !known {
				fresh = append(fresh, s.Name)
				continue
			}
			common = append(common, s.Name)
			if prev.Rank() < s.Severity.Rank() {
				worsening = true
			}
		}

		if len(common) > 0 {
			parts = append(parts, fmt.Sprintf("I see you're still experiencing %s. ", strings.Join(common, ", ")))
			if worsening {
				parts = append(parts, "It sounds like your symptoms may be getting worse. ")
			}
		}
		if len(fresh) > 0 {
			parts = append(parts, fmt.Sprintf("I notice you're now also experiencing %s. ", strings.Join(fresh, ", ")))
		}
	}

	return strings.Join(parts, "")
}

// FollowUpQuestions asks about previously tracked symptoms that are
// absent from the current set, then about chronic durations, at most
// two questions in that priority order. Each question is recorded as a
// discussed topic so it is not asked again.
func (c *Context) FollowUpQuestions(current []triage.Symptom) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentNames := make(map[string]bool, len(current))
	for _, s := range current {
		currentNames[s.Name] = true
	}

	var questions []string

	for _, prev := range c.previousSymptoms {
		if currentNames[prev.Name] {
			continue
		}
		topic := "resolved-" + prev.Name
		if c.discussedTopics[topic] {
			continue
		}
		c.discussedTopics[topic] = true
		questions = append(questions, fmt.Sprintf("Has your %s improved or resolved?", prev.Name))
		break
	}

	if !c.discussedTopics["chronic-care"] {
		for _, s := range current {
			if s.Duration == "" {
				continue
			}
			if strings.Contains(s.Duration, "week") || strings.Contains(s.Duration, "month") {
				c.discussedTopics["chronic-care"] = true
				questions = append(questions, fmt.Sprintf(
					"Since you've had %s for %s, have you seen a healthcare provider about this?",
					s.Name, s.Duration))
				break
			}
		}
	}

	if len(questions) > 2 {
		questions = questions[:2]
	}
	return questions
}

// AddDiscussedTopic marks a topic as covered. Adding the same topic
// twice is a no-op.
func (c *Context) AddDiscussedTopic(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discussedTopics[topic] = true
}

// DiscussedTopics returns a copy of the covered-topic set.
func (c *Context) DiscussedTopics() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]bool, len(c.discussedTopics))
	for k := range c.discussedTopics {
		out[k] = true
	}
	return out
}

// NeedsDisclaimer reports whether the medical disclaimer has not been
// shown in this conversation yet.
func (c *Context) NeedsDisclaimer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.discussedTopics["disclaimer-shown"]
}

// Symptoms returns a copy of the tracked symptom records.
func (c *Context) Symptoms() []triage.Symptom {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]triage.Symptom, len(c.previousSymptoms))
	copy(out, c.previousSymptoms)
	return out
}

func (c *Context) Urgency() triage.UrgencyLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.urgency
}

// State is a read-only snapshot of a conversation for API responses.
type State struct {
	ID                uuid.UUID           `json:"id"`
	Symptoms          []triage.Symptom    `json:"symptoms"`
	Urgency           triage.UrgencyLevel `json:"urgency"`
	DiscussedTopics   []string            `json:"discussed_topics"`
	LastSymptomUpdate time.Time           `json:"last_symptom_update"`
	CreatedAt         time.Time           `json:"created_at"`
}

func (c *Context) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	topics := make([]string, 0, len(c.discussedTopics))
	for t := range c.discussedTopics {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	symptoms := make([]triage.Symptom, len(c.previousSymptoms))
	copy(symptoms, c.previousSymptoms)

	return State{
		ID:                c.id,
		Symptoms:          symptoms,
		Urgency:           c.urgency,
		DiscussedTopics:   topics,
		LastSymptomUpdate: c.lastSymptomUpdate,
		CreatedAt:         c.createdAt,
	}
}
