package transport

// Transport is the product capability of the delivery-planning core.
// A transport knows how to describe the delivery it performs; concrete
// variants (Truck, Ship) each return a fixed, distinct description.
//
// Transports are stateless value objects. The interface cannot be
// instantiated directly: every variant must be obtained through its
// constructor, and the zero value of a variant fails Validate.
type Transport interface {
	// Name returns the human-readable name of the transport variant.
	Name() string

	// Deliver returns the description of how this transport delivers goods.
	// The description is fixed per variant and carries no side effects.
	Deliver() string

	// Validate checks that the transport was created via its constructor.
	Validate() error
}
