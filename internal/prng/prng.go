// Package prng provides the world's two sources of randomness: a
// splittable uniform generator used for placement decisions and mob AI,
// and a seeded coherent-noise generator used for terrain shaping. Both
// are deterministic and portable — no platform-dependent rounding, no
// reliance on map iteration order, no wall-clock seeding.
package prng

// Rng is a SplitMix64-based uniform generator. SplitMix64 is a simple,
// fast, splittable generator with well-documented bit-mixing constants;
// it is not cryptographically secure and is not meant to be — it exists
// purely to make worldgen and mob-AI randomness bitwise reproducible
// across platforms and Go versions.
type Rng struct {
	state uint64
}

// New seeds a generator from a 32-bit world seed, matching the data
// model's `rng` field (spec section 3: "rng (seeded PRNG)").
func New(seed uint32) *Rng {
	return &Rng{state: uint64(seed)}
}

// NewFromUint64 seeds a generator directly from a 64-bit value, used
// where the caller has already combined a seed with an episode index
// (`hash(seed, episode) mod 2^32`, per the world's reset lifecycle).
func NewFromUint64(seed uint64) *Rng {
	return &Rng{state: seed}
}

func (r *Rng) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [0, 1), the `U` draw referenced
// throughout the worldgen cascade and mob AI thresholds.
func (r *Rng) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// IntRange returns a uniform integer in [lo, hi). Panics if hi <= lo,
// a programmer error (callers control both bounds statically).
func (r *Rng) IntRange(lo, hi int) int {
	if hi <= lo {
		panic("prng: IntRange requires hi > lo")
	}
	return lo + int(r.next()%uint64(hi-lo))
}

// Uint64 exposes a raw 64-bit draw for callers that need to seed a
// child generator (e.g. per-episode world seeding) deterministically.
func (r *Rng) Uint64() uint64 {
	return r.next()
}
