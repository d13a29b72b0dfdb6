package data

import "testing"

func TestLoadValidatesEmbeddedTable(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Achievements) != 22 {
		t.Fatalf("got %d achievements, want 22", len(c.Achievements))
	}
	if len(c.Actions) != 17 {
		t.Fatalf("got %d actions, want 17", len(c.Actions))
	}
}

func TestActionIndexRoundTrip(t *testing.T) {
	c := MustLoad()
	for i, name := range c.Actions {
		idx, ok := c.ActionIndex(name)
		if !ok {
			t.Fatalf("ActionIndex(%q) not found", name)
		}
		if idx != i {
			t.Fatalf("ActionIndex(%q) = %d, want %d", name, idx, i)
		}
		if got := c.ActionName(idx); got != name {
			t.Fatalf("ActionName(%d) = %q, want %q", idx, got, name)
		}
	}
}

func TestActionNamePanicsOutOfRange(t *testing.T) {
	c := MustLoad()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range action index")
		}
	}()
	c.ActionName(c.NumActions())
}

func TestWalkableSet(t *testing.T) {
	c := MustLoad()
	for _, name := range c.Walkable {
		if !c.Walkable(name) {
			t.Fatalf("Walkable(%q) = false, want true", name)
		}
	}
	if c.Walkable("lava") {
		t.Fatal("lava must not be in the walkable set")
	}
}

func TestNewInventoryMatchesInitialValues(t *testing.T) {
	c := MustLoad()
	inv := c.NewInventory()
	for name, spec := range c.Items {
		if inv[name] != spec.Initial {
			t.Fatalf("inventory[%q] = %d, want initial %d", name, inv[name], spec.Initial)
		}
	}
}

func TestNewAchievementsAllZero(t *testing.T) {
	c := MustLoad()
	ach := c.NewAchievements()
	if len(ach) != len(c.Achievements) {
		t.Fatalf("got %d achievement entries, want %d", len(ach), len(c.Achievements))
	}
	for name, count := range ach {
		if count != 0 {
			t.Fatalf("achievement %q initialized to %d, want 0", name, count)
		}
	}
}

func TestClampBounds(t *testing.T) {
	c := MustLoad()
	if got := c.Clamp("wood", -5); got != 0 {
		t.Fatalf("Clamp(wood,-5) = %d, want 0", got)
	}
	max := c.Items["wood"].Max
	if got := c.Clamp("wood", max+100); got != max {
		t.Fatalf("Clamp(wood, overflow) = %d, want %d", got, max)
	}
}

func TestClampUnknownItemPassesThrough(t *testing.T) {
	c := MustLoad()
	if got := c.Clamp("nonexistent", 7); got != 7 {
		t.Fatalf("Clamp(unknown,7) = %d, want 7 (pass-through)", got)
	}
}

func TestCollectPlaceMakeReferenceKnownItems(t *testing.T) {
	// Load() already runs validate() on these tables; this test only
	// pins the invariant so a future data.yaml edit that breaks a
	// reference fails loudly here too, not just at Load().
	c := MustLoad()
	if err := c.validate(); err != nil {
		t.Fatalf("validate() = %v", err)
	}
}
