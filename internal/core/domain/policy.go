package domain

import "fmt"

// UnderflowPolicy decides what happens when a put-out would drive a product
// count below zero.
type UnderflowPolicy string

const (
	// UnderflowReject fails the whole adjustment with ErrInsufficientStock.
	UnderflowReject UnderflowPolicy = "reject"
	// UnderflowClamp floors each count at zero.
	UnderflowClamp UnderflowPolicy = "clamp"
	// UnderflowAllow lets counts go negative.
	UnderflowAllow UnderflowPolicy = "allow"
)

// ParseUnderflowPolicy validates a policy read from configuration.
func ParseUnderflowPolicy(s string) (UnderflowPolicy, error) {
	switch UnderflowPolicy(s) {
	case UnderflowReject, UnderflowClamp, UnderflowAllow:
		return UnderflowPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown underflow policy %q", s)
	}
}
