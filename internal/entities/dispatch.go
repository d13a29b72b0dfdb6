// Package entities implements the per-kind update contract: Player,
// Cow, Zombie, Skeleton, Arrow, Fence. Dispatch is an exhaustive switch
// over world.Kind rather than dynamic type assertions, per the
// tagged-sum re-architecture this module follows throughout.
package entities

import "github.com/talgya/crafter/internal/world"

// Update advances obj by one tick. action is only meaningful for
// KindPlayer; every other kind ignores it (the env loop calls Update
// uniformly for the whole snapshot, passing "" for non-player objects).
func Update(w *world.World, obj *world.Object, action string) {
	if !obj.IsAlive() {
		w.Reg.Remove(obj)
		return
	}
	switch obj.Kind {
	case world.KindPlayer:
		updatePlayer(w, obj, action)
	case world.KindCow:
		updateCow(w, obj)
	case world.KindZombie:
		updateZombie(w, obj)
	case world.KindSkeleton:
		updateSkeleton(w, obj)
	case world.KindArrow:
		updateArrow(w, obj)
	case world.KindFence:
		// No-op: fences have no independent behavior.
	}
}
