package logistics

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Kind identifies a logistics creator variant.
// It is a closed enumeration: the set of variants is fixed and every valid
// Kind maps to exactly one creator constructor in the dispatch table.
//
// Kind is a value object that validates membership and provides string
// representations for persistence and display.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Road selects road logistics, which plans deliveries by truck.
	Road

	// Sea selects sea logistics, which plans deliveries by ship.
	Sea
)

// getKindStrings returns a map of Kind values to their string representations.
// All kinds are included for string conversion.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "Unknown",
		Road:    "Road",
		Sea:     "Sea",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
// Only valid kinds are included to support validation.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Road: "Road",
		Sea:  "Sea",
	}
}

// Validate checks if the Kind value is valid.
//
// Valid kinds are: Road, Sea. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the kind is valid
//   - error with details if the kind is invalid
//
// This method is used to ensure Kind values from external sources
// (e.g., database, API) are valid before use.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
//
// Returns "Road" or "Sea" for valid kinds and "Unknown" for anything else.
// This method implements the fmt.Stringer interface and is safe to call
// on any Kind value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// WireString returns the canonical lowercase representation used on the wire.
//
// API responses emit this form ("road", "sea") and KindFromString accepts it
// back, so a kind serialized with WireString always round-trips.
func (k Kind) WireString() string {
	return strings.ToLower(k.String())
}

// KindFromString parses a Kind from its string representation.
// Parsing is case-insensitive, so "road", "Road" and "ROAD" all map to Road.
// Returns an error for strings that do not name a valid kind.
//
// This function is used when reconstructing kinds from persistence or
// when parsing kinds from API requests.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if strings.EqualFold(s, str) {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid kind", s))
}
