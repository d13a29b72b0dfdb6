// Package worldgen paints terrain and spawns the initial entity
// population for a freshly reset World. Every formula below mirrors the
// reference cascade bit for bit: the same noise scale/weight tables, the
// same classification order, and the same row-major RNG draw order, so
// that two worlds built from the same seed are identical cell for cell.
package worldgen

import (
	"math"

	"github.com/talgya/crafter/internal/prng"
	"github.com/talgya/crafter/internal/world"
)

// Config gates worldgen features that are not part of the unconditional
// terrain cascade.
type Config struct {
	// SkeletonsEnabled turns on the optional third hostile-mob spawn
	// pass. Off by default — the reference worldgen only ever spawns
	// Cow and Zombie from noise; Skeleton exists as a playable entity
	// kind that scripted scenarios can still place directly.
	SkeletonsEnabled bool
}

var (
	scaleSingle3 = []prng.ScaleWeight{{Size: 3, Weight: 1}}
	scaleWater   = []prng.ScaleWeight{{Size: 15, Weight: 1}, {Size: 5, Weight: 0.15}}
	scaleMtn     = []prng.ScaleWeight{{Size: 15, Weight: 1}, {Size: 5, Weight: 0.3}}
	scaleSingle7 = []prng.ScaleWeight{{Size: 7, Weight: 1}}
	scaleSingle8 = []prng.ScaleWeight{{Size: 8, Weight: 1}}
	scaleSingle6 = []prng.ScaleWeight{{Size: 6, Weight: 1}}
	scaleSingle5 = []prng.ScaleWeight{{Size: 5, Weight: 1}}
	scaleSingle9 = []prng.ScaleWeight{{Size: 9, Weight: 1}}
)

// Generate paints terrain over w.Grid and spawns the Player plus the
// initial Cow/Zombie (and, if enabled, Skeleton) population. Returns the
// Player's stable object ID. Must be called immediately after
// World.BeginEpisode, before anything else touches the world.
func Generate(w *world.World, cfg Config) world.ObjectID {
	center := world.Pos{X: w.Grid.W / 2, Y: w.Grid.H / 2}

	for x := 0; x < w.Grid.W; x++ {
		for y := 0; y < w.Grid.H; y++ {
			paintCell(w, world.Pos{X: x, Y: y}, center)
		}
	}

	playerID := spawnPlayer(w, center)

	for x := 0; x < w.Grid.W; x++ {
		for y := 0; y < w.Grid.H; y++ {
			spawnEntities(w, world.Pos{X: x, Y: y}, center, cfg)
		}
	}

	placeStarterFences(w, center)

	return playerID
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func paintCell(w *world.World, p, center world.Pos) {
	x, y := float64(p.X), float64(p.Y)
	dist := world.EuclideanDistance(p, center)

	start := sigmoid(4 - dist + 2*w.Simplex.Weighted(x, y, 8, scaleSingle3, true))
	water := w.Simplex.Weighted(x, y, 3, scaleWater, false) + 0.1 - 2*start
	mountain := w.Simplex.Weighted(x, y, 0, scaleMtn, true) - 4*start - 0.3*water

	u := func() float64 { return w.Rng.Float64() }

	switch {
	case start > 0.5:
		w.Grid.SetMaterial(p, "grass")

	case mountain > 0.15:
		switch {
		case w.Simplex.Weighted(x, y, 6, scaleSingle7, true) > 0.15 && mountain > 0.3:
			w.Grid.SetMaterial(p, "path")
		case w.Simplex.Weighted(2*x, y/5, 7, scaleSingle3, true) > 0.4:
			w.Grid.SetMaterial(p, "path")
		case w.Simplex.Weighted(x/5, 2*y, 7, scaleSingle3, true) > 0.4:
			w.Grid.SetMaterial(p, "path")
		case w.Simplex.Weighted(x, y, 1, scaleSingle8, true) > 0 && u() > 0.85:
			w.Grid.SetMaterial(p, "coal")
		case w.Simplex.Weighted(x, y, 2, scaleSingle6, true) > 0.4 && u() > 0.75:
			w.Grid.SetMaterial(p, "iron")
		case mountain > 0.18 && u() > 0.995:
			w.Grid.SetMaterial(p, "diamond")
		case mountain > 0.3 && w.Simplex.Weighted(x, y, 6, scaleSingle5, true) > 0.4:
			w.Grid.SetMaterial(p, "lava")
		default:
			w.Grid.SetMaterial(p, "stone")
		}

	case water > 0.25 && water <= 0.35 && w.Simplex.Weighted(x, y, 4, scaleSingle9, true) > -0.2:
		w.Grid.SetMaterial(p, "sand")

	case water > 0.3:
		w.Grid.SetMaterial(p, "water")

	default:
		if u() > 0.8 && w.Simplex.Weighted(x, y, 5, scaleSingle7, true) > 0 {
			w.Grid.SetMaterial(p, "tree")
		} else {
			w.Grid.SetMaterial(p, "grass")
		}
	}
}

func spawnPlayer(w *world.World, center world.Pos) world.ObjectID {
	player := &world.Object{
		Kind:         world.KindPlayer,
		Pos:          center,
		Facing:       world.Pos{X: 0, Y: 1},
		Health:       w.Consts.Items["health"].Initial,
		MaxHealth:    w.Consts.Items["health"].Max,
		Inventory:    w.Consts.NewInventory(),
		Achievements: w.Consts.NewAchievements(),
	}
	id := w.Reg.Add(player)
	w.PlayerID = id
	return id
}

func spawnEntities(w *world.World, p, center world.Pos, cfg Config) {
	if w.Reg.ObjectAtPos(p) != nil {
		return
	}
	name, _ := w.Grid.Get(p)
	if !w.Consts.Walkable(name) {
		return
	}
	dist := world.EuclideanDistance(p, center)
	u := func() float64 { return w.Rng.Float64() }

	switch {
	case name == "grass" && dist > 3 && u() > 0.98:
		w.Reg.Add(&world.Object{Kind: world.KindCow, Pos: p, Health: 3, MaxHealth: 3})

	case dist > 6 && u() > 0.993:
		w.Reg.Add(&world.Object{Kind: world.KindZombie, Pos: p, Health: 5, MaxHealth: 5})

	case cfg.SkeletonsEnabled && name == "path" && dist > 6 && w.Grid.Nearby(p, 1)["stone"] && u() > 0.993:
		w.Reg.Add(&world.Object{Kind: world.KindSkeleton, Pos: p, Health: 3, MaxHealth: 3})
	}
}

// placeStarterFences seeds a small, fixed decorative ring of Fence
// objects around the spawn point. The action set has no place_fence
// action (see the 17-entry list), so Fence objects can only ever enter
// the world here, at worldgen time — a player can place stone, table,
// furnace and plant, but fences are a worldgen-only feature.
func placeStarterFences(w *world.World, center world.Pos) {
	offsets := []world.Pos{{X: 2, Y: 2}, {X: -2, Y: 2}, {X: 2, Y: -2}, {X: -2, Y: -2}}
	for _, off := range offsets {
		p := center.Add(off)
		if !w.Grid.InBounds(p) {
			continue
		}
		name, _ := w.Grid.Get(p)
		if !w.Consts.Walkable(name) {
			continue
		}
		if w.Reg.ObjectAtPos(p) != nil {
			continue
		}
		w.Reg.Add(&world.Object{Kind: world.KindFence, Pos: p})
	}
}
