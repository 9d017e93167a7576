package triage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/afyachat/afyachat/internal/domain/catalog"
)

var availabilityRank = map[string]int{
	"widely_available":  0,
	"common":            1,
	"prescription_only": 2,
}

var medicationTypeRank = map[string]int{
	"otc":          0,
	"herbal":       1,
	"prescription": 2,
}

// Recommend maps the symptom set to a deduplicated medication
// shortlist, sorted by availability rank then type rank. The conditions
// parameter does not filter the lookup yet; only symptom names drive
// selection. It is kept for condition-aware filtering later.
func Recommend(cat *catalog.Catalog, symptoms []Symptom, _ []ScoredCondition) []catalog.Medication {
	var out []catalog.Medication
	seen := make(map[string]bool)

	for _, s := range symptoms {
		for _, med := range cat.MedicationsFor(s.Name) {
			if seen[med.ID] {
				continue
			}
			seen[med.ID] = true
			out = append(out, med)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if availabilityRank[out[i].Availability] != availabilityRank[out[j].Availability] {
			return availabilityRank[out[i].Availability] < availabilityRank[out[j].Availability]
		}
		return medicationTypeRank[out[i].Type] < medicationTypeRank[out[j].Type]
	})
	return out
}

// FormatRecommendations renders the medication shortlist as a guidance
// text block, grouped by type with a fixed safety-notes footer. An
// empty shortlist renders an explicit consult-a-provider message, never
// an empty string.
func FormatRecommendations(medications []catalog.Medication) string {
	if len(medications) == 0 {
		return "No specific medication recommendations available. Please consult with a healthcare provider or visit your local pharmacy for appropriate treatment options."
	}

	var b strings.Builder
	b.WriteString("## Medication Recommendations\n\n")
	b.WriteString("**IMPORTANT:** These are general suggestions only. Always consult a doctor or pharmacist before taking any medication.\n\n")

	var otc, herbal, prescription []catalog.Medication
	for _, m := range medications {
		switch m.Type {
		case "otc":
			otc = append(otc, m)
		case "herbal":
			herbal = append(herbal, m)
		case "prescription":
			prescription = append(prescription, m)
		}
	}

	if len(otc) > 0 {
		b.WriteString("### Over-the-Counter\n\n")
		for i, m := range otc {
			fmt.Fprintf(&b, "**%d. %s**\n", i+1, m.Name)
			fmt.Fprintf(&b, "- Brand names: %s\n", strings.Join(m.BrandNames, ", "))
			fmt.Fprintf(&b, "- Dosage: %s\n", m.Dosage)
			fmt.Fprintf(&b, "- Frequency: %s\n", m.Frequency)
			fmt.Fprintf(&b, "- Duration: %s\n", m.Duration)
			fmt.Fprintf(&b, "- Estimated cost: %s\n\n", m.EstimatedCost)
		}
	}

	if len(herbal) > 0 {
		b.WriteString("### Natural/Herbal Remedies\n\n")
		for i, m := range herbal {
			fmt.Fprintf(&b, "**%d. %s**\n", i+1, m.Name)
			fmt.Fprintf(&b, "- Usage: %s\n", m.Dosage)
			fmt.Fprintf(&b, "- Frequency: %s\n", m.Frequency)
			fmt.Fprintf(&b, "- Cost: %s\n\n", m.EstimatedCost)
		}
	}

	if len(prescription) > 0 {
		b.WriteString("### Prescription Medications\n\n")
		for i, m := range prescription {
			fmt.Fprintf(&b, "**%d. %s**\n", i+1, m.Name)
			fmt.Fprintf(&b, "- Brand names: %s\n", strings.Join(m.BrandNames, ", "))
			fmt.Fprintf(&b, "- Usage: %s, %s\n", m.Dosage, m.Frequency)
			fmt.Fprintf(&b, "- Estimated cost: %s\n", m.EstimatedCost)
			b.WriteString("- Requires prescription from a licensed doctor\n\n")
		}
	}

	b.WriteString("### Important Safety Notes:\n")
	b.WriteString("- Always read medication labels carefully\n")
	b.WriteString("- Check expiry dates before use\n")
	b.WriteString("- Inform your pharmacist about other medications you're taking\n")
	b.WriteString("- Stop use and consult a doctor if symptoms worsen\n")
	b.WriteString("- Keep medications away from children\n\n")
	b.WriteString("**Remember:** This is not medical advice. Always consult with a qualified healthcare provider before starting any medication.")

	return b.String()
}

// EmergencyKit returns guidance on basic medications to keep at home.
func EmergencyKit() string {
	return `## Emergency Medications to Keep at Home

### Basic First Aid Kit:
- Paracetamol - For fever and pain
- ORS sachets - For dehydration
- Antiseptic - For wound cleaning
- Bandages and plasters - For cuts and wounds
- Antihistamine - For allergic reactions

Always consult a pharmacist for proper guidance on medication use.`
}
