package entity

import "strings"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Capability is a set of optional platform behaviors. A platform may carry
// any combination of them; each is rolled independently at spawn.
type Capability uint8

const (
	CapCloud Capability = 1 << iota
	CapSpring
	CapMover
)

// CapNone is the empty capability set
const CapNone Capability = 0

// Has reports whether every capability in c is present
func (s Capability) Has(c Capability) bool {
	return s&c == c
}

// With returns the set with c added
func (s Capability) With(c Capability) Capability {
	return s | c
}

// Without returns the set with c removed
func (s Capability) Without(c Capability) Capability {
	return s &^ c
}

// String returns the string representation of the capability set
func (s Capability) String() string {
	if s == CapNone {
		return "none"
	}
	var parts []string
	if s.Has(CapCloud) {
		parts = append(parts, "cloud")
	}
	if s.Has(CapSpring) {
		parts = append(parts, "spring")
	}
	if s.Has(CapMover) {
		parts = append(parts, "mover")
	}
	return strings.Join(parts, "+")
}
