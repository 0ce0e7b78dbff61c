package engine

import (
	"encoding/json"
	"fmt"
)

// Status is the session outcome tag.
type Status int

const (
	// Playing: moves are still possible (or no start has been chosen).
	Playing Status = iota
	// Success: every edge has been traversed exactly once.
	Success
	// Fail: the tip is a dead end while edges remain.
	Fail
)

var statusNames = [...]string{"playing", "success", "fail"}

// String returns "playing", "success" or "fail".
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalJSON encodes s as its string name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a string name produced by MarshalJSON.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("engine: status: %w", err)
	}
	for i, n := range statusNames {
		if n == name {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown status %q", name)
}
