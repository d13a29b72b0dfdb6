// Package rules resolves the declarative collect/place/make tables
// against a live player and grid — the "Rules Engine" component. Every
// function here either fully commits its effect or is a silent no-op;
// none of them ever return an error, per the precondition-miss policy
// (missing inventory, wrong terrain, and similar misses are not
// exceptional).
package rules

import (
	"github.com/talgya/crafter/internal/data"
	"github.com/talgya/crafter/internal/world"
)

func canAfford(inv map[string]int, cost map[string]int) bool {
	for item, amount := range cost {
		if inv[item] < amount {
			return false
		}
	}
	return true
}

func pay(inv map[string]int, cost map[string]int) {
	for item, amount := range cost {
		inv[item] -= amount
	}
}

func grant(inv map[string]int, gains map[string]int) {
	for item, amount := range gains {
		inv[item] += amount
	}
}

// CollectMaterial applies the collect table entry for the material under
// target, if any. Returns true iff the rule applied: the requirement was
// paid, the yield granted, the cell set to the rule's leaves material
// (which can be the same material, as for grass) and the achievement
// counter incremented.
func CollectMaterial(w *world.World, player *world.Object, target world.Pos, material string) bool {
	rule, ok := w.Consts.Collect[material]
	if !ok {
		return false
	}
	if !canAfford(player.Inventory, rule.Require) {
		return false
	}
	pay(player.Inventory, rule.Require)
	grant(player.Inventory, rule.Receive)
	w.Grid.SetMaterial(target, rule.Leaves)
	// The unlocked achievement is named after what the collect yields, not
	// the terrain collected from — collecting a tree unlocks collect_wood,
	// collecting grass unlocks collect_sapling. Every collect rule grants
	// exactly one item, so its sole Receive key names the achievement.
	player.Achievements["collect_"+soleKey(rule.Receive)]++
	return true
}

// soleKey returns the single key of a one-entry map; panics on any other
// size, since every collect rule in the data table grants exactly one
// item — a rule violating that is a malformed data table, not a runtime
// condition.
func soleKey(m map[string]int) string {
	if len(m) != 1 {
		panic("rules: collect rule does not grant exactly one item")
	}
	for k := range m {
		return k
	}
	panic("unreachable")
}

// RipenTicks is how long a placed plant must stand before it can be
// eaten. The reference data table does not publish this constant
// (plant growth isn't part of the distilled collect/place/make tables);
// this value is a documented design decision, not a spec requirement.
const RipenTicks = 100

// CollectPlant handles `do` against a "plant" material cell. Unlike the
// table-driven materials, eating a plant unlocks "eat_plant" rather
// than "collect_plant" (not a name in the fixed 22-achievement set) and
// is gated on the plant having stood for RipenTicks since it was placed.
func CollectPlant(w *world.World, player *world.Object, target world.Pos) bool {
	plantedAt, tracked := w.PlantGrowth[target]
	if !tracked || w.Tick-plantedAt < RipenTicks {
		return false
	}
	player.Inventory["food"] += 4
	w.Grid.SetMaterial(target, "grass")
	delete(w.PlantGrowth, target)
	player.Achievements["eat_plant"]++
	return true
}

// Place applies the place table entry named name against target, if its
// preconditions (empty cell, terrain in `where`, inventory covers
// `uses`) hold.
func Place(w *world.World, player *world.Object, name string, target world.Pos, material string) bool {
	rule, ok := w.Consts.Place[name]
	if !ok {
		return false
	}
	if w.Reg.ObjectAtPos(target) != nil {
		return false
	}
	if !containsString(rule.Where, material) {
		return false
	}
	if !canAfford(player.Inventory, rule.Uses) {
		return false
	}
	var kind world.Kind
	if rule.Type == "object" {
		k, ok := objectKindFor(name)
		if !ok {
			return false
		}
		kind = k
	}
	pay(player.Inventory, rule.Uses)
	switch rule.Type {
	case "material":
		w.Grid.SetMaterial(target, name)
		if name == "plant" {
			w.PlantGrowth[target] = w.Tick
		}
	case "object":
		w.Reg.Add(&world.Object{Kind: kind, Pos: target})
	}
	player.Achievements["place_"+name]++
	return true
}

func objectKindFor(name string) (world.Kind, bool) {
	switch name {
	case "fence":
		return world.KindFence, true
	default:
		return 0, false
	}
}

// Make applies the make table entry named name, requiring every listed
// utility to be present within radius 2 of the player (world.nearby).
func Make(w *world.World, player *world.Object, name string) bool {
	rule, ok := w.Consts.Make[name]
	if !ok {
		return false
	}
	nearby := w.Grid.Nearby(player.Pos, 2)
	for _, need := range rule.Nearby {
		if !nearby[need] {
			return false
		}
	}
	if !canAfford(player.Inventory, rule.Uses) {
		return false
	}
	pay(player.Inventory, rule.Uses)
	player.Inventory[name] += rule.Gives
	player.Achievements["make_"+name]++
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ClampInventory bounds every inventory entry into [0, max], the
// end-of-tick step every Player.Update performs.
func ClampInventory(consts *data.Constants, inv map[string]int) {
	for item, amount := range inv {
		inv[item] = consts.Clamp(item, amount)
	}
}
