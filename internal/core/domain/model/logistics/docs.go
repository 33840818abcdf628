// Package logistics provides the creator side of the delivery-planning core.
// It implements the Factory Method pattern over the transport products.
//
// The package includes:
//   - Logistics: the creator capability whose factory operation produces a transport
//   - RoadLogistics: creates trucks for land deliveries
//   - SeaLogistics: creates ships for sea deliveries
//   - Kind: a closed enumeration of the creator variants
//   - New: the dispatch table resolving a Kind to its creator
//   - PlanDelivery: the fixed planning algorithm shared by all variants
//
// Key business rules:
//   - Each creator variant produces exactly one transport variant per call
//   - The planning algorithm is a package-level function and cannot be overridden
//   - Creators are stateless; transports are created on demand and never shared
package logistics
