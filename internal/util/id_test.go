package util

import (
	"regexp"
	"testing"
)

func TestNewRequestID(t *testing.T) {
	t.Run("length is always 8", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id := NewRequestID()
			if len(id) != 8 {
				t.Errorf("expected length 8, got %d for id %q", len(id), id)
			}
		}
	})

	t.Run("contains only alphanumeric characters", func(t *testing.T) {
		pattern := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
		for i := 0; i < 100; i++ {
			if id := NewRequestID(); !pattern.MatchString(id) {
				t.Errorf("id %q contains non-alphanumeric characters", id)
			}
		}
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := NewRequestID()
			if seen[id] {
				t.Fatalf("duplicate id generated: %q", id)
			}
			seen[id] = true
		}
	})
}
