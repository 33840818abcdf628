// Package services contains domain services for the logistics system.
// Domain services implement business logic that spans multiple aggregates
// or coordinates domain objects without belonging to any single entity.
//
// The package includes:
//   - DeliveryPlanner: plans delivery requests by resolving the logistics
//     creator variant and recording the produced transport instructions
package services
