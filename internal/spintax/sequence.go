package spintax

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// Sequence returns successive pseudo-random values in [0, 1).
type Sequence func() float64

// NewSequence returns a linear congruential generator initialized with seed.
//
// Each call advances state = (state*1103515245 + 12345) mod 2^31 and returns
// state / 2^31. Two sequences built from the same seed yield identical
// streams. The state is local to the returned closure.
func NewSequence(seed uint32) Sequence {
	state := uint64(seed)
	return func() float64 {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		return float64(state) / lcgModulus
	}
}
