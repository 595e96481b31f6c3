package asset

import (
	"fmt"

	"amo/internal/pkg/errs"
)

// State represents the lifecycle state of an asset.
//
// Assets move between states as they are assigned to users, returned, and
// eventually retired:
//
//	Available ⇄ Assigned
//	Available ⇄ NotAvailable
//	Available ─> WaitingForRecycle ─> Recycled
//
// Transition legality is owned by the workflow layer; this type only knows
// which values are representable for an asset.
type State int

const (
	// Unknown represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unknown State = iota

	// Available indicates the asset can be assigned to a user.
	Available

	// NotAvailable indicates the asset is temporarily out of circulation.
	NotAvailable

	// Assigned indicates the asset is currently assigned to a user.
	Assigned

	// WaitingForRecycle indicates the asset has been flagged for disposal.
	WaitingForRecycle

	// Recycled indicates the asset has been disposed of.
	Recycled
)

// stateNames maps each State to its canonical enum name, used for filter
// token parsing and persistence-facing representations.
var stateNames = map[State]string{
	Available:         "Available",
	NotAvailable:      "NotAvailable",
	Assigned:          "Assigned",
	WaitingForRecycle: "WaitingForRecycle",
	Recycled:          "Recycled",
}

// stateDisplayNames maps each State to its human-readable display string.
// Built once at package init; display strings never change at runtime.
var stateDisplayNames = map[State]string{
	Available:         "Available",
	NotAvailable:      "Not Available",
	Assigned:          "Assigned",
	WaitingForRecycle: "Waiting For Recycle",
	Recycled:          "Recycled",
}

// statesByName is the inverse of stateNames, keyed by canonical enum name.
var statesByName = func() map[string]State {
	m := make(map[string]State, len(stateNames))
	for s, name := range stateNames {
		m[name] = s
	}
	return m
}()

// AllStates returns every valid asset state in declaration order.
// Used to build filter option lists.
func AllStates() []State {
	return []State{Available, NotAvailable, Assigned, WaitingForRecycle, Recycled}
}

// ParseState resolves a state filter token to its State value.
// Token matching is by canonical enum name. An unrecognized token fails with
// a value-is-invalid error rather than being silently dropped.
func ParseState(token string) (State, error) {
	if s, ok := statesByName[token]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%q is not a valid asset state", token),
	)
}

// Validate checks if the State value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%d is not a valid asset state", s),
		)
	}
	return nil
}

// String returns the canonical enum name of the state.
// Implements fmt.Stringer; safe to call on any value.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the human-readable form of the state, e.g.
// "Not Available" for NotAvailable.
func (s State) DisplayName() string {
	if name, ok := stateDisplayNames[s]; ok {
		return name
	}
	return "Unknown"
}
