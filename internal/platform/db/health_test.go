package db

import (
	"encoding/json"
	"testing"
)

func TestStats_HealthyFollowsTotalConns(t *testing.T) {
	healthy := Stats{TotalConns: 3, IdleConns: 2, AcquiredConns: 1, MaxConns: 10, Healthy: true}
	if !healthy.Healthy {
		t.Error("expected Healthy true with open connections")
	}

	drained := Stats{TotalConns: 0, MaxConns: 10, Healthy: false}
	if drained.Healthy {
		t.Error("expected Healthy false when TotalConns is 0")
	}
}

func TestStats_JSONShape(t *testing.T) {
	stats := Stats{
		TotalConns:      1,
		IdleConns:       1,
		MaxConns:        10,
		AcquireCount:    50,
		AcquireDuration: "250ms",
		Healthy:         true,
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"total_conns", "idle_conns", "acquired_conns", "max_conns", "acquire_count", "acquire_duration", "healthy"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected field %q in stats payload", key)
		}
	}
	if decoded["healthy"] != true {
		t.Errorf("expected healthy true, got %v", decoded["healthy"])
	}
	if decoded["acquire_duration"] != "250ms" {
		t.Errorf("expected acquire_duration 250ms, got %v", decoded["acquire_duration"])
	}
}
