package trace

import "fmt"

// Snapshot is the complete trace of one named run.
type Snapshot struct {
	Name   string  `json:"name"`
	RunID  string  `json:"run_id,omitempty"`
	Events []Event `json:"events"`
}

// Canonical returns the canonical JSON encoding of s.
func (s Snapshot) Canonical() ([]byte, error) {
	events := make([]any, len(s.Events))
	for i, e := range s.Events {
		events[i] = e.canonicalMap()
	}

	m := map[string]any{
		"name":   s.Name,
		"events": events,
	}
	if s.RunID != "" {
		m["run_id"] = s.RunID
	}

	data, err := MarshalCanonical(m)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", s.Name, err)
	}
	return data, nil
}

// Digest returns the content digest of s.
func (s Snapshot) Digest() (string, error) {
	data, err := s.Canonical()
	if err != nil {
		return "", err
	}
	return Digest(DomainSnapshot, data), nil
}
