package system

// RNG is the uniform [0,1) source used by generation. *math/rand.Rand
// satisfies it; a seeded one makes a session reproducible.
type RNG interface {
	Float64() float64
}
