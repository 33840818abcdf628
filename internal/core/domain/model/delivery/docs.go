// Package delivery provides domain entities and business logic for delivery-request
// management in the logistics system. It implements the Delivery aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Delivery: The aggregate root that manages request identity, destination, and lifecycle
//   - Status: A state machine that enforces valid delivery status transitions
//
// Key business rules:
//   - Deliveries must have a valid unique identifier, street, and logistics kind
//   - Delivery status follows a defined workflow: Requested -> Planned
//   - Transport instructions are recorded exactly once, when the delivery is planned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
