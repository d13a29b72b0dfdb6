package entities

import "github.com/talgya/crafter/internal/world"

func findPlayer(w *world.World) *world.Object {
	return w.Reg.At(w.PlayerID)
}

func updateCow(w *world.World, cow *world.Object) {
	if w.Rng.Float64() >= 0.5 {
		return
	}
	dir := world.RandomDir(w.Rng)
	w.Move(cow, dir, w.Consts.WalkableSetView())
}

func updateZombie(w *world.World, z *world.Object) {
	player := findPlayer(w)
	if player == nil {
		return
	}
	dist := world.EuclideanDistance(z.Pos, player.Pos)

	if dist <= 1 {
		if z.Near {
			if w.Rng.Float64() < 0.3 {
				player.Health--
			}
			z.Near = false
		} else {
			z.Near = true
		}
	} else {
		z.Near = false
	}

	if dist <= 6 && w.Rng.Float64() < 0.8 {
		longAxis := w.Rng.Float64() < 0.7
		dir := world.Toward(z.Pos, player.Pos, longAxis)
		if dir != (world.Pos{}) {
			w.Move(z, dir, w.Consts.WalkableSetView())
			return
		}
	}
	w.Move(z, world.RandomDir(w.Rng), w.Consts.WalkableSetView())
}

func updateSkeleton(w *world.World, s *world.Object) {
	if s.Reload > 0 {
		s.Reload--
	}
	player := findPlayer(w)
	if player == nil {
		return
	}
	dist := world.EuclideanDistance(s.Pos, player.Pos)

	if dist <= 3 {
		away := world.Toward(player.Pos, s.Pos, true)
		if w.Move(s, away, w.Consts.WalkableSetView()) {
			return
		}
	}
	if dist <= 5 && w.Rng.Float64() < 0.5 {
		if s.Reload == 0 {
			shoot(w, s, player)
			s.Reload = 4
		}
		return
	}
	if dist <= 8 && w.Rng.Float64() < 0.3 {
		dir := world.Toward(s.Pos, player.Pos, true)
		w.Move(s, dir, w.Consts.WalkableSetView())
		return
	}
	if w.Rng.Float64() < 0.2 {
		w.Move(s, world.RandomDir(w.Rng), w.Consts.WalkableSetView())
	}
}

func shoot(w *world.World, s *world.Object, player *world.Object) {
	facing := world.Toward(s.Pos, player.Pos, true)
	if facing == (world.Pos{}) {
		return
	}
	target := s.Pos.Add(facing)
	if !arrowWalkable(w, target) {
		return
	}
	if w.Reg.ObjectAtPos(target) != nil {
		return
	}
	w.Reg.Add(&world.Object{
		Kind:      world.KindArrow,
		Pos:       target,
		Facing:    facing,
		ShooterID: s.ID,
	})
}

func arrowWalkable(w *world.World, p world.Pos) bool {
	if !w.Grid.InBounds(p) {
		return false
	}
	name, _ := w.Grid.Get(p)
	return w.Consts.Walkable(name) || name == "water" || name == "lava"
}

func updateArrow(w *world.World, a *world.Object) {
	target := a.Pos.Add(a.Facing)
	if !w.Grid.InBounds(target) {
		w.Reg.Remove(a)
		return
	}
	if obj := w.Reg.ObjectAtPos(target); obj != nil {
		obj.Health--
		w.Reg.Remove(a)
		return
	}
	if !arrowWalkable(w, target) {
		w.Reg.Remove(a)
		return
	}
	w.Reg.Move(a, target)
}
