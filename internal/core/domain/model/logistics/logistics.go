package logistics

import (
	"logistics/internal/core/domain/model/transport"
	"logistics/internal/pkg/errs"
)

// ErrLogisticsIsRequired is returned when the delivery-planning template
// is invoked without a logistics creator.
var ErrLogisticsIsRequired = errs.NewValueIsRequiredError("logistics")

// Logistics is the creator capability of the delivery-planning core.
// Each variant owns a factory operation that produces its transport:
// RoadLogistics creates trucks, SeaLogistics creates ships.
//
// The interface carries only the variant-specific factory operation.
// The fixed planning algorithm that consumes it lives in PlanDelivery,
// a package-level function, so no variant can override it.
type Logistics interface {
	// Kind returns the variant tag of this creator.
	Kind() Kind

	// CreateTransport is the factory operation. Each variant returns its
	// own transport variant. Calling it on an improperly constructed
	// creator fails with the variant's not-constructed error.
	CreateTransport() (transport.Transport, error)

	// Validate checks that the creator was created via its constructor.
	Validate() error
}

// New resolves a logistics creator variant from its kind.
// It is the closed dispatch table over the fixed variant set: Road maps to
// RoadLogistics and Sea maps to SeaLogistics. Any other kind fails with a
// validation error, which is the only way to observe "no such variant".
//
// Example:
//
//	l, err := logistics.New(logistics.Road)
//	if err != nil {
//	    return err
//	}
//	instructions, err := logistics.PlanDelivery(l)
func New(kind Kind) (Logistics, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case Road:
		return NewRoadLogistics(), nil
	case Sea:
		return NewSeaLogistics(), nil
	default:
		return nil, errs.NewValueIsInvalidError("kind")
	}
}

// PlanDelivery runs the fixed delivery-planning algorithm over a creator:
// create a transport through the creator's factory operation, then return
// that transport's delivery description unchanged.
//
// The algorithm is identical for every variant; only the transport produced
// by CreateTransport differs. Being a package-level function rather than an
// interface method, it cannot be overridden by any variant.
//
// Returns:
//   - string: the delivery description of the created transport
//   - error: ErrLogisticsIsRequired for a nil creator, or the creator's or
//     transport's construction error
func PlanDelivery(l Logistics) (string, error) {
	if l == nil {
		return "", ErrLogisticsIsRequired
	}

	if err := l.Validate(); err != nil {
		return "", err
	}

	t, err := l.CreateTransport()
	if err != nil {
		return "", err
	}

	if err = t.Validate(); err != nil {
		return "", err
	}

	return t.Deliver(), nil
}
