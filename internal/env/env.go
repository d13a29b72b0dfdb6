// Package env drives the reset/step loop: it owns one World, one
// Compositor, and the player's previous-tick achievement/health
// snapshot needed for reward synthesis. Nothing in this package
// suspends or retries; Step runs to completion synchronously, per the
// concurrency model.
package env

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/talgya/crafter/internal/data"
	"github.com/talgya/crafter/internal/entities"
	"github.com/talgya/crafter/internal/render"
	"github.com/talgya/crafter/internal/rules"
	"github.com/talgya/crafter/internal/world"
	"github.com/talgya/crafter/internal/worldgen"
)

// Config holds the constructor options from the external interface:
// grid/view/observation dimensions, the episode step cap (0 =
// unbounded), and the base seed.
type Config struct {
	Area             [2]int
	View             [2]int
	Size             [2]int
	Length           int
	Seed             int64
	Textures         map[string]image.Image
	SkeletonsEnabled bool
}

// Info is the per-step auxiliary dictionary.
type Info struct {
	Health       int
	Inventory    map[string]int
	Achievements map[string]int
	Discount     float64
}

// Env is one independent rollout instance. Each Env owns its grid, RNG,
// and object table exclusively — many Envs may run concurrently on
// separate goroutines with no shared mutable state between them.
type Env struct {
	consts     *data.Constants
	cfg        Config
	world      *world.World
	compositor *render.Compositor

	// RunID tags this instance for external correlation (logging,
	// diagnostics) only; it never participates in any RNG draw and is
	// not part of Info, so default observation/info shapes are
	// unaffected by its presence.
	RunID uuid.UUID

	episodeStep      int
	prevAchievements map[string]int
	prevHealth       int
}

// New constructs an Env. Configuration errors (view larger than area)
// are fatal at construction, per the error-handling taxonomy.
func New(cfg Config) (*Env, error) {
	if cfg.View[0] > cfg.Area[0] || cfg.View[1] > cfg.Area[1] {
		return nil, fmt.Errorf("env: view %v exceeds area %v", cfg.View, cfg.Area)
	}
	consts, err := data.Load()
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	w := world.New(cfg.Area[0], cfg.Area[1], consts)
	compositor := render.NewCompositor(render.NewTextureCache(cfg.Textures))
	return &Env{
		consts:     consts,
		cfg:        cfg,
		world:      w,
		compositor: compositor,
		RunID:      uuid.New(),
	}, nil
}

// ObservationShape returns the (y, x, c) shape of the rendered frame.
func (e *Env) ObservationShape() [3]int {
	return [3]int{e.cfg.Size[1], e.cfg.Size[0], 3}
}

// ActionSpaceN returns the size of the discrete action space.
func (e *Env) ActionSpaceN() int {
	return e.consts.NumActions()
}

// Reset starts a new episode and returns its initial observation.
func (e *Env) Reset() *render.Frame {
	e.world.BeginEpisode(e.cfg.Seed)
	worldgen.Generate(e.world, worldgen.Config{SkeletonsEnabled: e.cfg.SkeletonsEnabled})
	e.episodeStep = 0

	player := e.world.Reg.At(e.world.PlayerID)
	e.prevAchievements = copyCounts(player.Achievements)
	e.prevHealth = player.Health

	return e.Render()
}

// Render produces an observation for the current state without
// advancing the simulation — used both by Reset/Step and by external
// wrappers that additionally want HUD-large frames mid-episode.
func (e *Env) Render() *render.Frame {
	return e.compositor.Render(e.world, e.cfg.View, e.cfg.Size)
}

// Step advances the simulation by one action and returns the resulting
// observation, reward, done flag, and info dictionary.
func (e *Env) Step(action int) (*render.Frame, float64, bool, Info) {
	actionName := e.consts.ActionName(action)
	e.episodeStep++
	e.world.Tick++

	player := e.world.Reg.At(e.world.PlayerID)
	preHealth := player.Health

	for _, id := range e.world.Reg.Snapshot() {
		obj := e.world.Reg.At(id)
		if obj == nil {
			continue // removed earlier this same tick
		}
		act := ""
		if obj.Kind == world.KindPlayer {
			act = actionName
		}
		entities.Update(e.world, obj, act)
	}
	rules.ClampInventory(e.consts, player.Inventory)

	unlockedNow := false
	for name, count := range player.Achievements {
		if count > e.prevAchievements[name] {
			if e.prevAchievements[name] == 0 {
				unlockedNow = true
			}
			e.prevAchievements[name] = count
		}
	}

	reward := 0.0
	if unlockedNow {
		reward += 1.0
	}
	switch {
	case player.Health > preHealth:
		reward += 0.1
	case player.Health < preHealth:
		reward -= 0.1
	}

	done := player.Health <= 0 || (e.cfg.Length > 0 && e.episodeStep >= e.cfg.Length)
	discount := 1.0
	if player.Health <= 0 {
		discount = 0
	}

	info := Info{
		Health:       player.Health,
		Inventory:    copyCounts(player.Inventory),
		Achievements: copyCounts(player.Achievements),
		Discount:     discount,
	}

	return e.Render(), reward, done, info
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
