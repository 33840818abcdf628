// Package transport provides the product side of the delivery-planning core.
// It defines the Transport capability and its concrete variants.
//
// The package includes:
//   - Transport: the capability interface with a single Deliver behavior
//   - Truck: road transport, delivering by land in a box
//   - Ship: sea transport, delivering by sea in a container
//
// Variants are stateless value objects created through constructors. The two
// delivery descriptions are fixed and never equal to each other, so callers
// can rely on the variant chosen by a logistics creator being observable in
// the planned delivery instructions.
package transport
