package catalog

// Service exposes paged read access to a loaded catalog snapshot for
// the reference-data API. The snapshot is immutable, so no locking or
// context plumbing is needed.
type Service struct {
	cat *Catalog
}

func NewService(cat *Catalog) *Service {
	return &Service{cat: cat}
}

func (s *Service) Catalog() *Catalog {
	return s.cat
}

func (s *Service) ListSymptoms(limit, offset int) ([]SymptomEntry, int) {
	total := len(s.cat.Symptoms)
	lo, hi := clampRange(total, limit, offset)
	return s.cat.Symptoms[lo:hi], total
}

func (s *Service) ListConditions(limit, offset int) ([]Condition, int) {
	total := len(s.cat.Conditions)
	lo, hi := clampRange(total, limit, offset)
	return s.cat.Conditions[lo:hi], total
}

// MedicationGroup pairs a canonical symptom name with its cataloged
// medications, for listing.
type MedicationGroup struct {
	Symptom     string       `json:"symptom"`
	Medications []Medication `json:"medications"`
}

func (s *Service) ListMedications(limit, offset int) ([]MedicationGroup, int) {
	// Group order follows lexicon order so paging is deterministic.
	var groups []MedicationGroup
	for _, sym := range s.cat.Symptoms {
		if meds := s.cat.Medications[sym.Name]; len(meds) > 0 {
			groups = append(groups, MedicationGroup{Symptom: sym.Name, Medications: meds})
		}
	}
	total := len(groups)
	lo, hi := clampRange(total, limit, offset)
	return groups[lo:hi], total
}

func clampRange(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return offset, end
}
