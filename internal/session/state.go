// Package session models the lifecycle of one plan generation request as a
// single explicit state value. All transitions go through the pure
// functions in this package, so contradictory combinations (a finished
// request with a stale agent indicator, for example) cannot be
// represented by accident.
package session

import (
	"errors"
	"fmt"

	"github.com/afuentes/planear/internal/planner"
)

// Phase is the position of the request in its lifecycle.
type Phase int

const (
	// PhaseIdle means no request is in flight and none has finished yet.
	PhaseIdle Phase = iota
	// PhaseSubmitting means the request was sent but no frame arrived yet.
	PhaseSubmitting
	// PhaseStreaming means at least one status frame has been received.
	PhaseStreaming
	// PhaseCompleted means the stream delivered a finished plan.
	PhaseCompleted
	// PhaseErrored means the request failed, client-side or backend-side.
	PhaseErrored
)

// ConnectingMessage is the indicator text shown between submission and the
// first status frame.
const ConnectingMessage = "Connecting to agents..."

// Indicator is the transient agent status shown while streaming.
type Indicator struct {
	Agent   planner.Agent
	Message string
}

// State is the complete UI-relevant state of the request lifecycle.
type State struct {
	Phase     Phase
	Indicator *Indicator
	Result    *planner.PlanResult
	ErrMsg    string
}

// Loading reports whether a request is currently in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseSubmitting || s.Phase == PhaseStreaming
}

// terminal reports whether the request already finished.
func (s State) terminal() bool {
	return s.Phase == PhaseCompleted || s.Phase == PhaseErrored
}

// Start begins a new request. Any previous result, error, and indicator
// are cleared; a new submission always starts from a clean slate.
func Start(State) State {
	return State{
		Phase: PhaseSubmitting,
		Indicator: &Indicator{
			Agent:   planner.AgentSystem,
			Message: ConnectingMessage,
		},
	}
}

// Reduce applies one status event from the stream.
//
// Events after a terminal event are ignored, with one exception: a later
// completed event still replaces the stored result, since the backend may
// legitimately re-emit the plan after an internal retry. Indicator updates
// are last-write-wins.
func Reduce(s State, event planner.StatusEvent) State {
	switch event.Status {
	case planner.StatusStarting, planner.StatusRunning:
		if s.terminal() {
			return s
		}
		s.Phase = PhaseStreaming
		s.Indicator = &Indicator{Agent: event.Agent, Message: event.Message}

	case planner.StatusCompleted:
		s.Phase = PhaseCompleted
		s.Indicator = nil
		s.Result = event.Data
		s.ErrMsg = ""

	case planner.StatusError:
		if s.Phase == PhaseErrored {
			return s
		}
		s.Phase = PhaseErrored
		s.Indicator = nil
		s.ErrMsg = event.Message
		if s.ErrMsg == "" {
			s.ErrMsg = "The planning service reported an error"
		}
	}

	return s
}

// Fail records a client-side failure (validation, transport, or
// connectivity) with its user-facing message.
func Fail(s State, err error) State {
	s.Phase = PhaseErrored
	s.Indicator = nil
	s.ErrMsg = UserMessage(err)
	return s
}

// Finish marks the end of the stream. The stream ending carries no meaning
// of its own: a terminal phase stays as the last event left it, while an
// unterminated stream simply stops loading.
func Finish(s State) State {
	if s.terminal() {
		return s
	}
	s.Phase = PhaseIdle
	s.Indicator = nil
	return s
}

// UserMessage maps a client error to the single message shown to the user.
func UserMessage(err error) string {
	var statusErr *planner.TransportError
	var connectErr *planner.ConnectError

	switch {
	case errors.Is(err, planner.ErrEmptyStatement):
		return "Please enter a project description first"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("The planning service rejected the request (HTTP %d)", statusErr.Code)
	case errors.As(err, &connectErr):
		return "Could not reach the planning service. Is it running?"
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
