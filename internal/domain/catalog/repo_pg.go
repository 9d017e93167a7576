package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGLoader loads the catalog from Postgres. The tables mirror the
// Catalog shape: symptom, severity_keyword, duration_pattern,
// onset_phrase, urgency_phrase, urgency_pair, condition and medication,
// with list-valued fields stored as text arrays.
type PGLoader struct {
	pool *pgxpool.Pool
}

func NewPGLoader(pool *pgxpool.Pool) *PGLoader {
	return &PGLoader{pool: pool}
}

func (l *PGLoader) Load(ctx context.Context) (*Catalog, error) {
	c := &Catalog{Medications: make(map[string][]Medication)}

	rows, err := l.pool.Query(ctx, `
		SELECT name, aliases, body_part, category
		FROM symptom ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}
	for rows.Next() {
		var s SymptomEntry
		if err := rows.Scan(&s.Name, &s.Aliases, &s.BodyPart, &s.Category); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan symptom: %w", err)
		}
		c.Symptoms = append(c.Symptoms, s)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = l.pool.Query(ctx, `
		SELECT level, keywords
		FROM severity_keyword ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("load severity keywords: %w", err)
	}
	for rows.Next() {
		var sk SeverityKeywords
		if err := rows.Scan(&sk.Level, &sk.Keywords); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan severity keywords: %w", err)
		}
		c.SeverityLevels = append(c.SeverityLevels, sk)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	if c.DurationPatterns, err = l.loadPhrases(ctx, "duration_pattern"); err != nil {
		return nil, err
	}
	if c.OnsetPhrases, err = l.loadPhrases(ctx, "onset_phrase"); err != nil {
		return nil, err
	}

	rows, err = l.pool.Query(ctx, `
		SELECT phrase, level
		FROM urgency_phrase ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("load urgency phrases: %w", err)
	}
	for rows.Next() {
		var phrase, level string
		if err := rows.Scan(&phrase, &level); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan urgency phrase: %w", err)
		}
		switch level {
		case "emergency":
			c.EmergencyPhrases = append(c.EmergencyPhrases, phrase)
		case "high":
			c.HighPhrases = append(c.HighPhrases, phrase)
		default:
			rows.Close()
			return nil, fmt.Errorf("urgency phrase %q: unsupported level %q", phrase, level)
		}
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = l.pool.Query(ctx, `
		SELECT first_symptom, second_symptom, level
		FROM urgency_pair ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("load urgency pairs: %w", err)
	}
	for rows.Next() {
		var p UrgencyPair
		if err := rows.Scan(&p.First, &p.Second, &p.Level); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan urgency pair: %w", err)
		}
		c.UrgencyPairs = append(c.UrgencyPairs, p)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = l.pool.Query(ctx, `
		SELECT id, name, description, urgency, symptoms, recommendations, when_to_seek_care
		FROM condition ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("load conditions: %w", err)
	}
	for rows.Next() {
		var cond Condition
		if err := rows.Scan(&cond.ID, &cond.Name, &cond.Description, &cond.Urgency,
			&cond.Symptoms, &cond.Recommendations, &cond.WhenToSeekCare); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan condition: %w", err)
		}
		c.Conditions = append(c.Conditions, cond)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = l.pool.Query(ctx, `
		SELECT symptom_name, id, name, generic_name, brand_names, type, dosage,
			frequency, duration, side_effects, contraindications, availability, estimated_cost
		FROM medication ORDER BY symptom_name, sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("load medications: %w", err)
	}
	for rows.Next() {
		var symptomName string
		var m Medication
		if err := rows.Scan(&symptomName, &m.ID, &m.Name, &m.GenericName, &m.BrandNames,
			&m.Type, &m.Dosage, &m.Frequency, &m.Duration, &m.SideEffects,
			&m.Contraindications, &m.Availability, &m.EstimatedCost); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		c.Medications[symptomName] = append(c.Medications[symptomName], m)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog from postgres: %w", err)
	}
	return c, nil
}

func (l *PGLoader) loadPhrases(ctx context.Context, table string) ([]string, error) {
	rows, err := l.pool.Query(ctx, `SELECT phrase FROM `+table+` ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
