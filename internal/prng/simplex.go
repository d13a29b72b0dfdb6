package prng

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex wraps a seeded OpenSimplex noise source in [-1, 1] and adds the
// multi-octave weighted sum worldgen leans on. Used solely during world
// generation; mob AI draws its randomness from Rng, not from noise.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex seeds a noise source from a 32-bit world seed.
func NewSimplex(seed uint32) *Simplex {
	return &Simplex{noise: opensimplex.New(int64(seed))}
}

// Noise3D returns coherent noise in [-1, 1] at the given coordinates.
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}

// ScaleWeight pairs a noise wavelength ("size") with its contribution
// weight in a weighted-octave sum.
type ScaleWeight struct {
	Size   float64
	Weight float64
}

// Weighted returns Σ wᵢ·noise3d(x/sᵢ, y/sᵢ, z), divided by Σwᵢ iff
// normalize is set. This is the `simplex_weighted` primitive used
// throughout the worldgen cascade.
func (s *Simplex) Weighted(x, y, z float64, scales []ScaleWeight, normalize bool) float64 {
	var total, weightSum float64
	for _, sw := range scales {
		total += sw.Weight * s.Noise3D(x/sw.Size, y/sw.Size, z)
		weightSum += sw.Weight
	}
	if normalize && weightSum != 0 {
		return total / weightSum
	}
	return total
}
