package request

import (
	"fmt"

	"amo/internal/pkg/errs"
)

// State represents the lifecycle state of a return request.
//
// State transitions:
//
//	WaitingForReturning ──> Completed
//
// Completed is a final state.
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = iota

	// WaitingForReturning is the initial state when a user asks to return an
	// assigned asset and an administrator has not yet approved.
	WaitingForReturning

	// Completed indicates an administrator approved the return.
	Completed
)

var stateNames = map[State]string{
	WaitingForReturning: "WaitingForReturning",
	Completed:           "Completed",
}

var statesByName = func() map[string]State {
	m := make(map[string]State, len(stateNames))
	for s, name := range stateNames {
		m[name] = s
	}
	return m
}()

// ParseState resolves a state filter token to its State value.
// An unrecognized token fails with a value-is-invalid error.
func ParseState(token string) (State, error) {
	if s, ok := statesByName[token]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%q is not a valid return request state", token),
	)
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%d is not a valid return request state", s),
		)
	}
	return nil
}

// String returns the canonical enum name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the human-readable form of the state. Return request
// states display as their canonical names.
func (s State) DisplayName() string {
	return s.String()
}
