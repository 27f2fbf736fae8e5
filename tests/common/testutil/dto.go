//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap round-trips a request DTO through JSON into a map so tests can
// mutate or drop individual fields before sending a malformed body.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal dto: %v", err)
	}

	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("failed to unmarshal dto into map: %v", err)
	}

	for _, mutate := range muts {
		mutate(m)
	}
	return m
}
