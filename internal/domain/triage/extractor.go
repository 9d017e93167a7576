package triage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

// severityWindow is the number of characters inspected on each side of
// a matched term when inferring severity.
const severityWindow = 50

// Extractor scans utterances against the catalog lexicon. It is
// stateless and safe for concurrent use once constructed.
type Extractor struct {
	cat       *catalog.Catalog
	durations []*regexp.Regexp
}

func NewExtractor(cat *catalog.Catalog) (*Extractor, error) {
	e := &Extractor{cat: cat}
	for _, pat := range cat.DurationPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("duration pattern %q: %w", pat, err)
		}
		e.durations = append(e.durations, re)
	}
	return e, nil
}

// Extract returns one symptom record per canonical symptom mentioned in
// the utterance. Matching is case-insensitive substring matching over
// the canonical name and its aliases; the first matching term wins and
// the symptom is not re-matched by later aliases. An utterance with no
// matches yields an empty list.
func (e *Extractor) Extract(utterance string) []Symptom {
	lower := strings.ToLower(utterance)
	var out []Symptom

	for _, entry := range e.cat.Symptoms {
		for _, term := range append([]string{entry.Name}, entry.Aliases...) {
			idx := strings.Index(lower, strings.ToLower(term))
			if idx < 0 {
				continue
			}
			out = append(out, Symptom{
				ID:       uuid.New(),
				Name:     entry.Name,
				Severity: e.severityNear(lower, idx, len(term)),
				Duration: e.duration(lower),
				BodyPart: entry.BodyPart,
				Onset:    e.onset(lower),
			})
			break
		}
	}
	return out
}

// severityNear searches a fixed window around the matched term for
// severity keywords, walking the severity table in order. Without a
// keyword hit the severity defaults to moderate.
func (e *Extractor) severityNear(lower string, idx, termLen int) Severity {
	start := idx - severityWindow
	if start < 0 {
		start = 0
	}
	end := idx + termLen + severityWindow
	if end > len(lower) {
		end = len(lower)
	}
	window := lower[start:end]

	for _, lvl := range e.cat.SeverityLevels {
		for _, kw := range lvl.Keywords {
			if strings.Contains(window, kw) {
				return Severity(lvl.Level)
			}
		}
	}
	return SeverityModerate
}

// duration returns the first duration pattern match anywhere in the
// utterance, or the empty string.
func (e *Extractor) duration(lower string) string {
	for _, re := range e.durations {
		if m := re.FindString(lower); m != "" {
			return m
		}
	}
	return ""
}

// onset returns the first onset phrase found anywhere in the utterance,
// or the empty string.
func (e *Extractor) onset(lower string) string {
	for _, phrase := range e.cat.OnsetPhrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}
