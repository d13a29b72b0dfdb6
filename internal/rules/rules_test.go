package rules

import (
	"testing"

	"github.com/talgya/crafter/internal/data"
	"github.com/talgya/crafter/internal/world"
)

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	consts, err := data.Load()
	if err != nil {
		t.Fatalf("data.Load() error: %v", err)
	}
	w := world.New(10, 10, consts)
	w.BeginEpisode(1)
	return w
}

func newPlayer(w *world.World, pos world.Pos) *world.Object {
	p := &world.Object{
		Kind:         world.KindPlayer,
		Pos:          pos,
		Inventory:    w.Consts.NewInventory(),
		Achievements: w.Consts.NewAchievements(),
	}
	w.Reg.Add(p)
	return p
}

func TestCollectMaterialPaysRequiresAndGrants(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "tree")

	if !CollectMaterial(w, p, target, "tree") {
		t.Fatal("CollectMaterial(tree) should succeed with no requirements")
	}
	if p.Inventory["wood"] != 1 {
		t.Fatalf("wood = %d, want 1", p.Inventory["wood"])
	}
	if name, _ := w.Grid.Get(target); name != "grass" {
		t.Fatalf("tree collection leaves %q, want grass", name)
	}
	if p.Achievements["collect_wood"] != 1 {
		t.Fatalf("collect_wood = %d, want 1", p.Achievements["collect_wood"])
	}
}

func TestCollectMaterialFailsWhenUnaffordable(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "iron")
	// No wood/wood_pickaxe in a fresh inventory: iron requires a pickaxe.
	if CollectMaterial(w, p, target, "iron") {
		t.Fatal("CollectMaterial(iron) should fail without a pickaxe")
	}
	if p.Inventory["iron"] != 0 {
		t.Fatal("inventory should be unchanged on a failed collect")
	}
}

func TestCollectMaterialUnknownMaterialIsNoop(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	if CollectMaterial(w, p, world.Pos{1, 0}, "water") {
		t.Fatal("water has no collect table entry; CollectMaterial should return false")
	}
}

func TestCollectPlantGatesOnRipeness(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "plant")
	w.PlantGrowth[target] = 0

	w.Tick = RipenTicks - 1
	if CollectPlant(w, p, target) {
		t.Fatal("CollectPlant should fail before RipenTicks elapses")
	}

	w.Tick = RipenTicks
	if !CollectPlant(w, p, target) {
		t.Fatal("CollectPlant should succeed once RipenTicks elapses")
	}
	if p.Inventory["food"] != 4 {
		t.Fatalf("food = %d, want 4", p.Inventory["food"])
	}
	if name, _ := w.Grid.Get(target); name != "grass" {
		t.Fatalf("eaten plant leaves %q, want grass", name)
	}
	if _, tracked := w.PlantGrowth[target]; tracked {
		t.Fatal("PlantGrowth entry should be removed after eating")
	}
	if p.Achievements["eat_plant"] != 1 {
		t.Fatalf("eat_plant = %d, want 1", p.Achievements["eat_plant"])
	}
}

func TestPlaceMaterialRequiresWhereAndUses(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "grass")

	if Place(w, p, "stone", target, "grass") {
		t.Fatal("placing stone should fail without stone in inventory")
	}

	p.Inventory["stone"] = 1
	if !Place(w, p, "stone", target, "grass") {
		t.Fatal("placing stone should succeed once affordable")
	}
	if p.Inventory["stone"] != 0 {
		t.Fatalf("stone = %d after placement, want 0", p.Inventory["stone"])
	}
	if name, _ := w.Grid.Get(target); name != "stone" {
		t.Fatalf("placed material %q, want stone", name)
	}
	if p.Achievements["place_stone"] != 1 {
		t.Fatalf("place_stone = %d, want 1", p.Achievements["place_stone"])
	}
}

func TestPlaceFailsOnOccupiedCell(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "grass")
	p.Inventory["stone"] = 1
	w.Reg.Add(&world.Object{Kind: world.KindCow, Pos: target})

	if Place(w, p, "stone", target, "grass") {
		t.Fatal("Place should fail against an occupied cell")
	}
}

func TestPlacePlantTracksPlantGrowth(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{0, 0})
	target := world.Pos{1, 0}
	w.Grid.SetMaterial(target, "grass")
	p.Inventory["sapling"] = 1
	w.Tick = 42

	if !Place(w, p, "plant", target, "grass") {
		t.Fatal("placing a plant on grass should succeed")
	}
	if got, ok := w.PlantGrowth[target]; !ok || got != 42 {
		t.Fatalf("PlantGrowth[target] = (%d, %v), want (42, true)", got, ok)
	}
}

func TestMakeRequiresNearbyUtility(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{5, 5})
	p.Inventory["wood"] = 1

	if Make(w, p, "wood_pickaxe") {
		t.Fatal("make_wood_pickaxe should require a nearby table")
	}

	w.Grid.SetMaterial(world.Pos{5, 6}, "table")
	if !Make(w, p, "wood_pickaxe") {
		t.Fatal("make_wood_pickaxe should succeed next to a table")
	}
	if p.Inventory["wood_pickaxe"] != 1 {
		t.Fatalf("wood_pickaxe = %d, want 1", p.Inventory["wood_pickaxe"])
	}
	if p.Achievements["make_wood_pickaxe"] != 1 {
		t.Fatalf("make_wood_pickaxe achievement = %d, want 1", p.Achievements["make_wood_pickaxe"])
	}
}

func TestMakeNearbyWindowExcludesExactRadiusCell(t *testing.T) {
	w := newTestWorld(t)
	p := newPlayer(w, world.Pos{5, 5})
	p.Inventory["wood"] = 1

	// A table at pos+radius sits one cell past the (2r)x(2r) nearby
	// window and must not satisfy the "nearby table" requirement.
	w.Grid.SetMaterial(world.Pos{5, 7}, "table")
	if Make(w, p, "wood_pickaxe") {
		t.Fatal("make_wood_pickaxe should not see a table at exactly pos+radius")
	}
}

func TestClampInventoryBounds(t *testing.T) {
	w := newTestWorld(t)
	inv := w.Consts.NewInventory()
	inv["wood"] = -3
	ClampInventory(w.Consts, inv)
	if inv["wood"] != 0 {
		t.Fatalf("ClampInventory left wood at %d, want 0", inv["wood"])
	}
}
