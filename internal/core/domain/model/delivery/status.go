package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct business workflow.
//
// State transitions:
//
//	Requested ──> Planned
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when a delivery is first registered.
	// Deliveries in this status are waiting to be planned.
	Requested

	// Planned indicates the delivery has been planned and carries
	// transport instructions. This is a final state.
	Planned
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Requested: "Requested",
		Planned:   "Planned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "Requested",
		Planned:   "Planned",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Requested, Planned. Unknown (0) and any other
// values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Requested" or "Planned" for valid statuses and "Unknown"
// for anything else. This method implements the fmt.Stringer interface
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePlan checks if the status allows planning without performing the transition.
//
// Only Requested deliveries can be planned; Planned is a final state.
//
// Returns:
//   - nil if planning is allowed from the current status
//   - error with details if planning is not allowed
func (s Status) ValidatePlan() error {
	if s != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan", s.String()),
		)
	}
	return nil
}

// Plan transitions the status to Planned.
//
// Valid transitions:
//   - Requested -> Planned
//
// Invalid transitions:
//   - Planned -> Planned (already planned)
//   - Unknown -> Planned (invalid initial state)
//
// Returns:
//   - (Planned, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Plan() (Status, error) {
	if err := s.ValidatePlan(); err != nil {
		return 0, err
	}

	return Planned, nil
}

// ValidateCanHaveInstructions validates the consistency between delivery status
// and the presence of transport instructions.
//
// Business Rules:
//   - Requested deliveries must not carry instructions
//   - Planned deliveries must carry instructions
//
// Parameters:
//   - instructions: whether the delivery carries transport instructions
//
// Returns:
//   - error: validation error if status and instructions are inconsistent
func (s Status) ValidateCanHaveInstructions(instructions bool) error {
	if instructions && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have instructions", s.String()),
		)
	}

	if !instructions && s == Planned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no instructions", s.String()),
		)
	}

	return nil
}
