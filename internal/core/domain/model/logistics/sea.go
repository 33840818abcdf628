package logistics

import (
	"errors"

	"logistics/internal/core/domain/model/transport"
	"logistics/internal/pkg/guard"
)

// ErrSeaLogisticsIsNotConstructed is returned when using an improperly initialized SeaLogistics.
var ErrSeaLogisticsIsNotConstructed = errors.New(
	"SeaLogistics must be created via NewSeaLogistics constructor")

// SeaLogistics is the creator variant for sea deliveries.
// Its factory operation produces a Ship.
//
// SeaLogistics is a stateless value object; the zero value is invalid
// and must be created through NewSeaLogistics.
type SeaLogistics struct {
	guard guard.ConstructorGuard
}

// NewSeaLogistics creates a sea logistics creator.
func NewSeaLogistics() SeaLogistics {
	return SeaLogistics{
		guard: guard.NewConstructorGuard(),
	}
}

// Kind returns Sea.
func (l SeaLogistics) Kind() Kind {
	return Sea
}

// CreateTransport produces a new Ship for a sea delivery.
// Every call returns a fresh instance; ships are never shared between plans.
func (l SeaLogistics) CreateTransport() (transport.Transport, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return transport.NewShip(), nil
}

// Validate checks if the creator was properly constructed using NewSeaLogistics.
// The zero value of SeaLogistics is invalid and will fail this validation.
func (l SeaLogistics) Validate() error {
	return l.guard.Validate(ErrSeaLogisticsIsNotConstructed)
}
