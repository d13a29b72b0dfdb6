package entities

import (
	"strings"

	"github.com/talgya/crafter/internal/rules"
	"github.com/talgya/crafter/internal/world"
)

func playerWalkable(w *world.World) map[string]bool {
	set := make(map[string]bool, len(w.Consts.Walkable)+1)
	for _, m := range w.Consts.Walkable {
		set[m] = true
	}
	set["lava"] = true
	return set
}

var moveDirs = map[string]world.Pos{
	"left":  {X: -1, Y: 0},
	"right": {X: 1, Y: 0},
	"up":    {X: 0, Y: -1},
	"down":  {X: 0, Y: 1},
}

func updatePlayer(w *world.World, p *world.Object, action string) {
	if p.Sleeping > 0 {
		p.Sleeping--
		action = "noop"
		if p.Sleeping == 0 {
			p.Inventory["energy"]++
			if p.Inventory["energy"] < w.Consts.Items["energy"].Max {
				action = "sleep"
			} else {
				p.Achievements["wake_up"]++
			}
		}
	}

	switch {
	case action == "noop":
		// no effect beyond life-variable update
	case strings.HasPrefix(action, "move_"):
		movePlayer(w, p, strings.TrimPrefix(action, "move_"))
	case action == "do":
		doAction(w, p)
	case action == "sleep":
		p.Sleeping = 30
	case strings.HasPrefix(action, "place_"):
		placeAction(w, p, strings.TrimPrefix(action, "place_"))
	case strings.HasPrefix(action, "make_"):
		rules.Make(w, p, strings.TrimPrefix(action, "make_"))
	}

	updateLifeVariables(w, p)
	rules.ClampInventory(w.Consts, p.Inventory)
}

func movePlayer(w *world.World, p *world.Object, direction string) {
	dir, ok := moveDirs[direction]
	if !ok {
		return
	}
	p.Facing = dir
	if w.Move(p, dir, playerWalkable(w)) {
		name, _ := w.Grid.Get(p.Pos)
		if name == "lava" {
			p.Health = 0
		}
	}
}

func doAction(w *world.World, p *world.Object) {
	target := p.Pos.Add(p.Facing)
	material, _ := w.Grid.Get(target)
	obj := w.Reg.ObjectAtPos(target)

	if obj != nil {
		doObject(w, p, obj)
		return
	}
	if material == "water" {
		p.SetThirst(0)
		p.Achievements["collect_drink"]++
		return
	}
	if material == "plant" {
		rules.CollectPlant(w, p, target)
		return
	}
	rules.CollectMaterial(w, p, target, material)
}

func swordDamage(inv map[string]int) int {
	dmg := 1
	if inv["wood_sword"] > 0 && 2 > dmg {
		dmg = 2
	}
	if inv["stone_sword"] > 0 && 3 > dmg {
		dmg = 3
	}
	if inv["iron_sword"] > 0 && 5 > dmg {
		dmg = 5
	}
	return dmg
}

func doObject(w *world.World, p *world.Object, obj *world.Object) {
	switch obj.Kind {
	case world.KindFence:
		w.Reg.Remove(obj)
		p.Inventory["fence"]++
		// No collect_fence achievement exists in the fixed 22-entry
		// table in data.yaml, so none is granted here.
	case world.KindZombie:
		obj.Health -= swordDamage(p.Inventory)
		if obj.Health <= 0 {
			p.Achievements["defeat_zombie"]++
		}
	case world.KindSkeleton:
		obj.Health -= swordDamage(p.Inventory)
		if obj.Health <= 0 {
			p.Achievements["defeat_skeleton"]++
		}
	case world.KindCow:
		obj.Health -= swordDamage(p.Inventory)
		if obj.Health <= 0 {
			p.Inventory["food"] += 3
			p.SetHunger(0)
			p.Achievements["eat_cow"]++
		}
	}
}

func placeAction(w *world.World, p *world.Object, name string) {
	target := p.Pos.Add(p.Facing)
	material, _ := w.Grid.Get(target)
	rules.Place(w, p, name, target, material)
}

func updateLifeVariables(w *world.World, p *world.Object) {
	p.SetHunger(p.Hunger() + 1)
	if p.Hunger() >= 50 {
		p.SetHunger(0)
		p.Inventory["food"]--
	}
	p.SetThirst(p.Thirst() + 1)
	if p.Thirst() >= 50 {
		p.SetThirst(0)
		p.Inventory["drink"]--
	}
	p.SetFatigue(p.Fatigue() + 1)
	if p.Sleeping > 0 {
		p.SetFatigue(0)
	} else if p.Fatigue() >= 50 {
		p.SetFatigue(0)
		p.Inventory["energy"]--
	}

	fed := p.Inventory["food"] > 0
	hydrated := p.Inventory["drink"] > 0
	rested := p.Inventory["energy"] > 0
	if fed && hydrated && rested {
		p.SetDegen(0)
		p.SetRegen(p.Regen() + 1)
		if p.Regen() >= 50 {
			p.Health++
			p.SetRegen(0)
		}
	} else {
		p.SetRegen(0)
		p.SetDegen(p.Degen() + 1)
		if p.Degen() >= 30 {
			p.Health--
			p.SetDegen(0)
		}
	}
}
