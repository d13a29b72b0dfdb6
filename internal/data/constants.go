// Package data loads the Crafter world's immutable data tables: the
// material/item/action/achievement vocabularies and the collect/place/make
// recipe tables. The document is embedded at build time and parsed once;
// there is no runtime reload path.
package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawTable []byte

// ItemSpec bounds a single inventory-tracked quantity (resource or life
// variable) between an initial value and a clamp ceiling.
type ItemSpec struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// CollectRule describes the outcome of a `do` action against a material,
// as opposed to an object: the inventory prerequisite, the inventory
// delta, and the material the cell turns into afterward.
type CollectRule struct {
	Require map[string]int `yaml:"require"`
	Receive map[string]int `yaml:"receive"`
	Leaves  string         `yaml:"leaves"`
}

// PlaceRule describes a `place_*` action: inventory cost, the terrain the
// target cell must already be, and whether the placement yields a new
// material or a new object.
type PlaceRule struct {
	Uses  map[string]int `yaml:"uses"`
	Where []string       `yaml:"where"`
	Type  string         `yaml:"type"` // "material" or "object"
}

// MakeRule describes a `make_*` action: inventory cost, the utilities
// that must be present in the crafting neighborhood, and the item
// produced.
type MakeRule struct {
	Uses   map[string]int `yaml:"uses"`
	Nearby []string       `yaml:"nearby"`
	Gives  int            `yaml:"gives"`
}

// Constants is the single immutable value threaded by reference into
// worldgen, the rules engine, and the player update — no component reads
// a package-level global.
type Constants struct {
	Materials    []string               `yaml:"materials"`
	Walkable     []string               `yaml:"walkable"`
	Items        map[string]ItemSpec    `yaml:"items"`
	Actions      []string               `yaml:"actions"`
	Achievements []string               `yaml:"achievements"`
	Collect      map[string]CollectRule `yaml:"collect"`
	Place        map[string]PlaceRule   `yaml:"place"`
	Make         map[string]MakeRule    `yaml:"make"`

	actionIndex map[string]int
	walkableSet map[string]bool
}

// Load parses the embedded data table. It fails fatally (configuration
// error, per the error-handling taxonomy) if the document is malformed or
// references are internally inconsistent — e.g. a recipe mentioning an
// item absent from the items table.
func Load() (*Constants, error) {
	var c Constants
	if err := yaml.Unmarshal(rawTable, &c); err != nil {
		return nil, fmt.Errorf("data: parse table: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("data: validate table: %w", err)
	}
	c.actionIndex = make(map[string]int, len(c.Actions))
	for i, a := range c.Actions {
		c.actionIndex[a] = i
	}
	c.walkableSet = make(map[string]bool, len(c.Walkable))
	for _, m := range c.Walkable {
		c.walkableSet[m] = true
	}
	return &c, nil
}

// MustLoad panics on a malformed embedded table; used by callers that
// cannot meaningfully continue without a valid data table (the table is
// embedded, so failure here indicates a build-time defect, not a runtime
// condition).
func MustLoad() *Constants {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Constants) validate() error {
	known := func(name string) bool {
		_, ok := c.Items[name]
		return ok
	}
	checkAmounts := func(where string, amounts map[string]int) error {
		for item := range amounts {
			if !known(item) {
				return fmt.Errorf("%s: references unknown item %q", where, item)
			}
		}
		return nil
	}
	for mat, rule := range c.Collect {
		if err := checkAmounts("collect."+mat, rule.Require); err != nil {
			return err
		}
		if err := checkAmounts("collect."+mat, rule.Receive); err != nil {
			return err
		}
	}
	for name, rule := range c.Place {
		if err := checkAmounts("place."+name, rule.Uses); err != nil {
			return err
		}
		if rule.Type != "material" && rule.Type != "object" {
			return fmt.Errorf("place.%s: unknown type %q", name, rule.Type)
		}
	}
	for name, rule := range c.Make {
		if err := checkAmounts("make."+name, rule.Uses); err != nil {
			return err
		}
		if !known(name) {
			return fmt.Errorf("make.%s: recipe name is not a tracked item", name)
		}
	}
	if len(c.Achievements) == 0 {
		return fmt.Errorf("achievements table is empty")
	}
	return nil
}

// ActionIndex returns the canonical action-space index for a named
// action, and false if the name is not part of the action set.
func (c *Constants) ActionIndex(name string) (int, bool) {
	i, ok := c.actionIndex[name]
	return i, ok
}

// ActionName returns the action name for an index from the discrete
// action space, panicking on out-of-range input — an out-of-range action
// index is a programmer error (malformed policy output), not a
// precondition miss.
func (c *Constants) ActionName(index int) string {
	if index < 0 || index >= len(c.Actions) {
		panic(fmt.Sprintf("data: action index %d out of range [0,%d)", index, len(c.Actions)))
	}
	return c.Actions[index]
}

// NumActions returns the size of the discrete action space.
func (c *Constants) NumActions() int { return len(c.Actions) }

// Walkable reports whether a named material is in the fixed walkable set
// (grass, path, sand).
func (c *Constants) Walkable(material string) bool {
	return c.walkableSet[material]
}

// WalkableSetView returns the walkable-material lookup table used by
// mob movement (Cow/Zombie/Skeleton all restrict movement to the same
// grass/path/sand set the data table declares walkable).
func (c *Constants) WalkableSetView() map[string]bool {
	return c.walkableSet
}

// NewInventory returns a fresh inventory populated with each item's
// configured initial count.
func (c *Constants) NewInventory() map[string]int {
	inv := make(map[string]int, len(c.Items))
	for name, spec := range c.Items {
		inv[name] = spec.Initial
	}
	return inv
}

// NewAchievements returns a fresh, all-zero achievement counter map
// covering exactly the fixed 22-entry set.
func (c *Constants) NewAchievements() map[string]int {
	a := make(map[string]int, len(c.Achievements))
	for _, name := range c.Achievements {
		a[name] = 0
	}
	return a
}

// Clamp bounds an inventory value into [0, max] for the named item.
func (c *Constants) Clamp(item string, value int) int {
	spec, ok := c.Items[item]
	if !ok {
		return value
	}
	if value < 0 {
		return 0
	}
	if value > spec.Max {
		return spec.Max
	}
	return value
}
