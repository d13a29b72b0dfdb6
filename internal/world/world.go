package world

import (
	"hash/fnv"

	"github.com/talgya/crafter/internal/data"
	"github.com/talgya/crafter/internal/prng"
)

// World bundles the grid, the object arena, the worldgen/mob-AI RNG, and
// episode bookkeeping — the unit that gets rebuilt from scratch on every
// Reset.
type World struct {
	Consts  *data.Constants
	Grid    *Grid
	Reg     *Registry
	Rng     *prng.Rng
	Simplex *prng.Simplex

	Seed    int64
	Episode int

	// Tick counts ticks within the current episode. PlantGrowth records
	// the tick a "plant" material cell was placed, so collecting it can
	// gate on ripeness (see rules.CollectPlant).
	Tick        int
	PlantGrowth map[Pos]int

	// PlayerID caches the current episode's player object for O(1)
	// access from mob AI and the env loop, per the arena design note:
	// cross-entity references store an ObjectID, never a pointer.
	PlayerID ObjectID
}

// New allocates an empty world of the given dimensions. Call
// BeginEpisode to seed the RNG, then worldgen.Generate to populate it.
func New(w, h int, consts *data.Constants) *World {
	grid := NewGrid(w, h, NewMaterialTable(consts.Materials))
	return &World{
		Consts: consts,
		Grid:   grid,
		Reg:    NewRegistry(grid),
	}
}

// EpisodeSeed combines the world's base seed and the episode counter
// into the 32-bit RNG seed, matching the reset lifecycle's
// "hash(seed, episode) mod 2^32".
func EpisodeSeed(seed int64, episode int) uint32 {
	h := fnv.New32a()
	var buf [16]byte
	putInt64(buf[0:8], seed)
	putInt64(buf[8:16], int64(episode))
	h.Write(buf[:])
	return h.Sum32()
}

func putInt64(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

// BeginEpisode increments the episode counter, reseeds the RNG, and
// clears the grid and object arena in preparation for worldgen. It does
// not run worldgen itself — that is internal/worldgen's job, kept
// decoupled from World so World stays a plain data holder.
func (w *World) BeginEpisode(seed int64) {
	w.Seed = seed
	w.Episode++
	episodeSeed := EpisodeSeed(seed, w.Episode)
	w.Rng = prng.New(episodeSeed)
	w.Simplex = prng.NewSimplex(episodeSeed)
	w.Tick = 0
	w.PlantGrowth = make(map[Pos]int)
	clear(w.Grid.mat)
	clear(w.Grid.obj)
	w.Reg.Reset()
}

// Move attempts to move obj one step in direction dir, succeeding iff
// the target cell is unoccupied and its material is in the player's
// extended walkable set (walkable terrain, or any set the caller
// passes — mirrors Object.move/is_free in the reference implementation).
func (w *World) Move(obj *Object, dir Pos, walkable map[string]bool) bool {
	target := obj.Pos.Add(dir)
	if !w.Reg.IsFree(target, walkable) {
		return false
	}
	w.Reg.Move(obj, target)
	return true
}

// Toward returns a unit step toward target, preferring the longer axis
// when longAxis is true, else the shorter — used by Zombie/Skeleton
// pursuit and flight.
func Toward(from, target Pos, longAxis bool) Pos {
	dx := target.X - from.X
	dy := target.Y - from.Y
	useX := abs(dx) > abs(dy)
	if !longAxis {
		useX = !useX
	}
	if useX {
		return Pos{X: sign(dx), Y: 0}
	}
	return Pos{X: 0, Y: sign(dy)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RandomDir draws one of the four cardinal unit vectors uniformly.
func RandomDir(r *prng.Rng) Pos {
	return CardinalDirs[r.IntRange(0, len(CardinalDirs))]
}
