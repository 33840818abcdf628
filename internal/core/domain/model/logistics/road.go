package logistics

import (
	"errors"

	"logistics/internal/core/domain/model/transport"
	"logistics/internal/pkg/guard"
)

// ErrRoadLogisticsIsNotConstructed is returned when using an improperly initialized RoadLogistics.
var ErrRoadLogisticsIsNotConstructed = errors.New(
	"RoadLogistics must be created via NewRoadLogistics constructor")

// RoadLogistics is the creator variant for land deliveries.
// Its factory operation produces a Truck.
//
// RoadLogistics is a stateless value object; the zero value is invalid
// and must be created through NewRoadLogistics.
type RoadLogistics struct {
	guard guard.ConstructorGuard
}

// NewRoadLogistics creates a road logistics creator.
func NewRoadLogistics() RoadLogistics {
	return RoadLogistics{
		guard: guard.NewConstructorGuard(),
	}
}

// Kind returns Road.
func (l RoadLogistics) Kind() Kind {
	return Road
}

// CreateTransport produces a new Truck for a land delivery.
// Every call returns a fresh instance; trucks are never shared between plans.
func (l RoadLogistics) CreateTransport() (transport.Transport, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return transport.NewTruck(), nil
}

// Validate checks if the creator was properly constructed using NewRoadLogistics.
// The zero value of RoadLogistics is invalid and will fail this validation.
func (l RoadLogistics) Validate() error {
	return l.guard.Validate(ErrRoadLogisticsIsNotConstructed)
}
