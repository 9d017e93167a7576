package catalog

import "fmt"

// SymptomEntry is one canonical symptom in the lexicon. The Name is the
// canonical key; aliases are alternate phrasings that map onto it.
type SymptomEntry struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	BodyPart string   `json:"body_part"`
	Category string   `json:"category"`
}

// SeverityKeywords lists the trigger words for one severity level. The
// catalog keeps these as an ordered slice; matching walks the slice in
// order and the first level with a hit wins.
type SeverityKeywords struct {
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Condition is a static catalog entry describing a candidate condition.
// Likelihood is never stored here; the triage engine computes it per
// query on a transient copy.
type Condition struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Urgency         string   `json:"urgency"`
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
	WhenToSeekCare  []string `json:"when_to_seek_care"`
}

// Medication is a static catalog entry. Entries are grouped under the
// canonical symptom name they treat.
type Medication struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	GenericName       string   `json:"generic_name"`
	BrandNames        []string `json:"brand_names"`
	Type              string   `json:"type"`
	Dosage            string   `json:"dosage"`
	Frequency         string   `json:"frequency"`
	Duration          string   `json:"duration"`
	SideEffects       []string `json:"side_effects"`
	Contraindications []string `json:"contraindications"`
	Availability      string   `json:"availability"`
	EstimatedCost     string   `json:"estimated_cost"`
}

// UrgencyPair escalates urgency when both named symptoms were extracted
// from the same conversation turn. Names are matched literally against
// extracted canonical names.
type UrgencyPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Level  string `json:"level"`
}

// Catalog bundles all clinical reference data. It is immutable after
// loading; every component reads from the same snapshot.
type Catalog struct {
	Symptoms         []SymptomEntry          `json:"symptoms"`
	SeverityLevels   []SeverityKeywords      `json:"severity_levels"`
	DurationPatterns []string                `json:"duration_patterns"`
	OnsetPhrases     []string                `json:"onset_phrases"`
	EmergencyPhrases []string                `json:"emergency_phrases"`
	HighPhrases      []string                `json:"high_phrases"`
	UrgencyPairs     []UrgencyPair           `json:"urgency_pairs"`
	Conditions       []Condition             `json:"conditions"`
	Medications      map[string][]Medication `json:"medications"`
}

var validUrgencies = map[string]bool{
	"low": true, "medium": true, "high": true, "emergency": true,
}

var validSeverities = map[string]bool{
	"mild": true, "moderate": true, "severe": true,
}

var validMedicationTypes = map[string]bool{
	"otc": true, "prescription": true, "herbal": true,
}

var validAvailabilities = map[string]bool{
	"widely_available": true, "common": true, "prescription_only": true,
}

// Symptom returns the lexicon entry for a canonical name.
func (c *Catalog) Symptom(name string) (*SymptomEntry, bool) {
	for i := range c.Symptoms {
		if c.Symptoms[i].Name == name {
			return &c.Symptoms[i], true
		}
	}
	return nil, false
}

// MedicationsFor returns the medication entries for a canonical symptom
// name, or nil when none are cataloged.
func (c *Catalog) MedicationsFor(symptomName string) []Medication {
	return c.Medications[symptomName]
}

// Validate checks the catalog's internal consistency: canonical names
// are unique and non-empty, enum-like fields carry known values, and
// every symptom name referenced by conditions or the medication catalog
// exists in the lexicon. Urgency pair members are deliberately exempt
// from the namespace check; see DormantPairs.
func (c *Catalog) Validate() error {
	if len(c.Symptoms) == 0 {
		return fmt.Errorf("catalog has no symptoms")
	}
	seen := make(map[string]bool, len(c.Symptoms))
	for _, s := range c.Symptoms {
		if s.Name == "" {
			return fmt.Errorf("symptom with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate symptom %q", s.Name)
		}
		seen[s.Name] = true
	}

	for _, lvl := range c.SeverityLevels {
		if !validSeverities[lvl.Level] {
			return fmt.Errorf("invalid severity level %q", lvl.Level)
		}
		if len(lvl.Keywords) == 0 {
			return fmt.Errorf("severity level %q has no keywords", lvl.Level)
		}
	}

	for _, cond := range c.Conditions {
		if cond.ID == "" || cond.Name == "" {
			return fmt.Errorf("condition with empty id or name")
		}
		if !validUrgencies[cond.Urgency] {
			return fmt.Errorf("condition %q: invalid urgency %q", cond.ID, cond.Urgency)
		}
		if len(cond.Symptoms) == 0 {
			return fmt.Errorf("condition %q lists no symptoms", cond.ID)
		}
		for _, name := range cond.Symptoms {
			if !seen[name] {
				return fmt.Errorf("condition %q references unknown symptom %q", cond.ID, name)
			}
		}
	}

	medIDs := make(map[string]string)
	for symptomName, meds := range c.Medications {
		if !seen[symptomName] {
			return fmt.Errorf("medication catalog references unknown symptom %q", symptomName)
		}
		for _, m := range meds {
			if m.ID == "" || m.Name == "" {
				return fmt.Errorf("medication under %q with empty id or name", symptomName)
			}
			if !validMedicationTypes[m.Type] {
				return fmt.Errorf("medication %q: invalid type %q", m.ID, m.Type)
			}
			if !validAvailabilities[m.Availability] {
				return fmt.Errorf("medication %q: invalid availability %q", m.ID, m.Availability)
			}
			// The same entry may be listed under several symptoms, but
			// an id must always describe the same medication.
			if prev, ok := medIDs[m.ID]; ok && prev != m.Name {
				return fmt.Errorf("medication id %q used for both %q and %q", m.ID, prev, m.Name)
			}
			medIDs[m.ID] = m.Name
		}
	}

	for _, p := range c.UrgencyPairs {
		if p.First == "" || p.Second == "" {
			return fmt.Errorf("urgency pair with empty member")
		}
		if !validUrgencies[p.Level] {
			return fmt.Errorf("urgency pair %q+%q: invalid level %q", p.First, p.Second, p.Level)
		}
	}

	return nil
}

// DormantPairs returns urgency pairs naming at least one token that is
// not a canonical symptom. Such pairs can never fire, because pair
// matching runs against extracted canonical names; they are kept in the
// shipped data for compatibility and surfaced here for inspection.
func (c *Catalog) DormantPairs() []UrgencyPair {
	names := make(map[string]bool, len(c.Symptoms))
	for _, s := range c.Symptoms {
		names[s.Name] = true
	}
	var dormant []UrgencyPair
	for _, p := range c.UrgencyPairs {
		if !names[p.First] || !names[p.Second] {
			dormant = append(dormant, p)
		}
	}
	return dormant
}
