package interfaces

import "errors"

// Sentinel errors shared by the gateway contracts. Gateways translate
// platform-specific failures into these so the engine can dispatch with
// errors.Is instead of inspecting provider error types.

var (
	// ErrNotFound signals an explicit "object not found" from either
	// platform. It is expected and non-fatal: the engine treats it as
	// "nothing to update" or "must create", never as a transient failure.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidSignature rejects an inbound webhook outright; no engine
	// invocation happens after it.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
