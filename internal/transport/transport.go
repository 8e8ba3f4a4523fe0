// Package transport defines the boundary between the VT client and the
// underlying CAN/ISO 11783 network stack. Implementing ISO 11783
// transport-layer segmentation (BAM/ETP), address claiming, and physical
// bus access is explicitly out of scope for this module (spec.md §1's
// "network stack" Non-goal) — NetworkStack is the seam a real stack plugs
// into, the same role goburrow/modbus's Client interface plays for the
// teacher's poller.
package transport

// Frame is one outbound or inbound VT message: a PGN plus its data field,
// addressed to or from a single CAN node. Fixed command/response messages
// always carry protocol.FrameSize (8) bytes; object-pool transfer messages
// carry however many bytes the stack's transport-layer segmentation (BAM/
// ETP) can move in one delivery, which is the stack's concern, not this
// package's.
type Frame struct {
	PGN           uint32
	SourceAddress uint8
	DestAddress   uint8
	Data          []byte
}

// NetworkStack is the external collaborator that turns Frame values into
// CAN traffic and back. A real implementation owns address claiming,
// transport-protocol segmentation for pool uploads larger than one frame,
// and physical bus I/O; this module only calls through the interface.
type NetworkStack interface {
	// SendFrame queues f for transmission. onComplete, if non-nil, is
	// invoked once the stack knows whether the frame was acknowledged at
	// the transport layer (not application layer) — success reflects bus
	// delivery, not VT server processing. SendFrame returns false if the
	// frame could not even be queued (e.g. stack not yet online).
	SendFrame(f Frame, onComplete func(success bool)) bool

	// Frames delivers inbound frames addressed to this client's working
	// set (or broadcast) as they arrive.
	Frames() <-chan Frame

	// PartnerOnline reports whether the given CAN address currently has a
	// claimed address on the bus. The Client does not call it: bring-up is
	// gated on inbound VT status messages instead.
	PartnerOnline(partnerAddress uint8) bool
}
