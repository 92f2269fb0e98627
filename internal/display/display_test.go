package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/afuentes/planear/internal/planner"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "zero duration",
			duration: 0,
			expected: "00:00",
		},
		{
			name:     "seconds only",
			duration: 45 * time.Second,
			expected: "00:45",
		},
		{
			name:     "minutes and seconds",
			duration: 5*time.Minute + 30*time.Second,
			expected: "05:30",
		},
		{
			name:     "one hour",
			duration: 1 * time.Hour,
			expected: "01:00:00",
		},
		{
			name:     "hours minutes seconds",
			duration: 2*time.Hour + 34*time.Minute + 56*time.Second,
			expected: "02:34:56",
		},
		{
			name:     "rounds to nearest second",
			duration: 5*time.Minute + 30*time.Second + 500*time.Millisecond,
			expected: "05:31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDuration(tt.duration)
			if result != tt.expected {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, result, tt.expected)
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	d := New(&bytes.Buffer{})

	tests := []struct {
		name     string
		state    State
		elapsed  time.Duration
		expected string
	}{
		{
			name: "planner agent",
			state: State{
				Agent:   planner.AgentPlanner,
				Message: "Breaking down the project...",
			},
			elapsed:  1*time.Minute + 30*time.Second,
			expected: "🧠 Planner Agent: Breaking down the project... │ ⏱ 01:30",
		},
		{
			name:     "empty message returns empty",
			state:    State{},
			elapsed:  0,
			expected: "",
		},
		{
			name: "unknown agent keeps raw name",
			state: State{
				Agent:   planner.Agent("optimizer"),
				Message: "Smoothing the schedule...",
			},
			elapsed:  10 * time.Second,
			expected: "• optimizer: Smoothing the schedule... │ ⏱ 00:10",
		},
		{
			name: "with hours",
			state: State{
				Agent:   planner.AgentTimeline,
				Message: "Estimating durations...",
			},
			elapsed:  1*time.Hour + 15*time.Minute + 30*time.Second,
			expected: "📅 Timeline Agent: Estimating durations... │ ⏱ 01:15:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.formatLine(tt.state, tt.elapsed)
			if result != tt.expected {
				t.Errorf("formatLine() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatLine_LongMessage(t *testing.T) {
	d := New(&bytes.Buffer{})

	long := strings.Repeat("x", 80)
	state := State{Agent: planner.AgentPlanner, Message: long}
	result := d.formatLine(state, time.Minute)

	want := strings.Repeat("x", 57) + "..."
	if !strings.Contains(result, want) {
		t.Errorf("expected the message truncated to %q, got %q", want, result)
	}
	if strings.Contains(result, strings.Repeat("x", 61)) {
		t.Errorf("message not truncated: %q", result)
	}
}

func TestUpdateAgent(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.UpdateAgent(planner.AgentPlanner, "Breaking down the project...")
	if d.state.Agent != planner.AgentPlanner {
		t.Errorf("Agent = %q, want %q", d.state.Agent, planner.AgentPlanner)
	}
	if d.state.Message != "Breaking down the project..." {
		t.Errorf("Message = %q", d.state.Message)
	}

	// Last write wins
	d.UpdateAgent(planner.AgentFormatter, "Formatting the plan...")
	if d.state.Agent != planner.AgentFormatter {
		t.Errorf("Agent = %q, want %q", d.state.Agent, planner.AgentFormatter)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.writer != &buf {
		t.Error("writer not set correctly")
	}
	if d.done == nil {
		t.Error("done channel not initialized")
	}
	if d.active {
		t.Error("should not be active initially")
	}
}

func TestStartStop(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Start()
	time.Sleep(50 * time.Millisecond)

	d.mu.Lock()
	active := d.active
	d.mu.Unlock()
	if !active {
		t.Error("should be active after Start()")
	}

	d.Stop()

	d.mu.Lock()
	active = d.active
	d.mu.Unlock()
	if active {
		t.Error("should not be active after Stop()")
	}
}

func TestStartIdempotent(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	d.Start()
	d.Start()
	d.Start()

	time.Sleep(50 * time.Millisecond)
	d.Stop()

	d.mu.Lock()
	active := d.active
	d.mu.Unlock()
	if active {
		t.Error("should not be active after Stop()")
	}
}

func TestStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)

	// Stop without Start must be a no-op
	d.Stop()

	d.mu.Lock()
	active := d.active
	d.mu.Unlock()
	if active {
		t.Error("should not be active")
	}
}
