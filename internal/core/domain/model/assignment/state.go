package assignment

import (
	"fmt"

	"amo/internal/pkg/errs"
)

// State represents the lifecycle state of an assignment.
//
// State transitions:
//
//	WaitingAccept ──> Accepted
//
// Accepted is terminal for this entity; closure happens through the
// return-request workflow, which soft-closes the assignment instead of
// transitioning its state.
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = iota

	// WaitingAccept is the initial state when an assignment is created
	// and the assignee has not yet confirmed it.
	WaitingAccept

	// Accepted indicates the assignee has confirmed the assignment.
	Accepted
)

var stateNames = map[State]string{
	WaitingAccept: "WaitingAccept",
	Accepted:      "Accepted",
}

var stateDisplayNames = map[State]string{
	WaitingAccept: "Waiting for Accept",
	Accepted:      "Accepted",
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
		fmt.Errorf("%q is not a valid assignment state", token),
	)
}

// Validate checks if the State value is valid.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%d is not a valid assignment state", s),
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

// DisplayName returns the human-readable form of the state, e.g.
// "Waiting for Accept" for WaitingAccept.
func (s State) DisplayName() string {
	if name, ok := stateDisplayNames[s]; ok {
		return name
	}
	return "Unknown"
}
