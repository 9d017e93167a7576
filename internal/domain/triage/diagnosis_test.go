package triage

import (
	"testing"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

func findCondition(conds []ScoredCondition, id string) (ScoredCondition, bool) {
	for _, c := range conds {
		if c.ID == id {
			return c, true
		}
	}
	return ScoredCondition{}, false
}

func TestDiagnose_FullMatchMildCapsAt80(t *testing.T) {
	cat := catalog.Builtin()
	// All four migraine symptoms, all mild: 4/4*100 * 0.8 = 80.
	symptoms := []Symptom{
		{Name: "headache", Severity: SeverityMild},
		{Name: "nausea", Severity: SeverityMild},
		{Name: "dizziness", Severity: SeverityMild},
		{Name: "fatigue", Severity: SeverityMild},
	}
	out := Diagnose(cat, symptoms)
	migraine, ok := findCondition(out, "migraine")
	if !ok {
		t.Fatal("migraine not diagnosed")
	}
	if migraine.Likelihood != 80 {
		t.Errorf("expected likelihood 80, got %d", migraine.Likelihood)
	}
}

func TestDiagnose_ModerateMultiplierCapsAt95(t *testing.T) {
	cat := catalog.Builtin()
	symptoms := []Symptom{
		{Name: "headache", Severity: SeverityModerate},
		{Name: "nausea", Severity: SeverityModerate},
		{Name: "dizziness", Severity: SeverityModerate},
		{Name: "fatigue", Severity: SeverityModerate},
	}
	out := Diagnose(cat, symptoms)
	migraine, ok := findCondition(out, "migraine")
	if !ok {
		t.Fatal("migraine not diagnosed")
	}
	// 4/4*100 * 1.0 = 100, capped at 95.
	if migraine.Likelihood != 95 {
		t.Errorf("expected likelihood capped at 95, got %d", migraine.Likelihood)
	}
}

func TestDiagnose_SevereMultiplier(t *testing.T) {
	cat := catalog.Builtin()
	// 2 of 4 migraine symptoms, one severe: 50 * 1.2 = 60.
	symptoms := []Symptom{
		{Name: "headache", Severity: SeveritySevere},
		{Name: "nausea", Severity: SeverityModerate},
	}
	out := Diagnose(cat, symptoms)
	migraine, ok := findCondition(out, "migraine")
	if !ok {
		t.Fatal("migraine not diagnosed")
	}
	if migraine.Likelihood != 60 {
		t.Errorf("expected likelihood 60, got %d", migraine.Likelihood)
	}
}

func TestDiagnose_ThresholdExcludesWeakMatches(t *testing.T) {
	cat := catalog.Builtin()
	// Nausea alone matches 1 of 5 gastroenteritis symptoms:
	// 20 * 1.0 = 20, below the inclusion threshold.
	symptoms := []Symptom{{Name: "nausea", Severity: SeverityModerate}}
	out := Diagnose(cat, symptoms)
	if _, ok := findCondition(out, "gastroenteritis"); ok {
		t.Error("gastroenteritis should be excluded below the threshold")
	}
}

func TestDiagnose_NoMatchReturnsEmpty(t *testing.T) {
	cat := catalog.Builtin()
	symptoms := []Symptom{{Name: "ear pain", Severity: SeverityModerate}}
	out := Diagnose(cat, symptoms)
	if len(out) != 0 {
		t.Fatalf("expected empty diagnosis list, got %d", len(out))
	}
}

func TestDiagnose_SortedByLikelihoodDescending(t *testing.T) {
	cat := catalog.Builtin()
	symptoms := []Symptom{
		{Name: "headache", Severity: SeverityModerate},
		{Name: "nausea", Severity: SeverityModerate},
		{Name: "dizziness", Severity: SeverityModerate},
		{Name: "fatigue", Severity: SeverityModerate},
		{Name: "vomiting", Severity: SeverityModerate},
	}
	out := Diagnose(cat, symptoms)
	if len(out) < 2 {
		t.Fatalf("expected multiple candidates, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Likelihood > out[i-1].Likelihood {
			t.Fatalf("list not sorted: %d before %d", out[i-1].Likelihood, out[i].Likelihood)
		}
	}
}

func TestDiagnose_DoesNotMutateCatalog(t *testing.T) {
	cat := catalog.Builtin()
	symptoms := []Symptom{
		{Name: "headache", Severity: SeveritySevere},
		{Name: "nausea", Severity: SeverityModerate},
	}
	_ = Diagnose(cat, symptoms)
	out := Diagnose(cat, symptoms)
	migraine, _ := findCondition(out, "migraine")
	if migraine.Likelihood != 60 {
		t.Errorf("second run should score identically, got %d", migraine.Likelihood)
	}
}
