package world

// MaterialID is a small per-cell terrain code. 0 denotes unset/out of
// world, matching the data model's "ID 0 denotes unset/out-of-world".
type MaterialID uint8

// MaterialTable assigns stable small integer IDs to the named materials
// listed in the data table, in table order, starting at 1.
type MaterialTable struct {
	names []string
	ids   map[string]MaterialID
}

// NewMaterialTable builds a lookup table from the ordered material name
// list in the data table.
func NewMaterialTable(materials []string) *MaterialTable {
	t := &MaterialTable{
		names: make([]string, len(materials)+1),
		ids:   make(map[string]MaterialID, len(materials)),
	}
	for i, name := range materials {
		id := MaterialID(i + 1)
		t.names[id] = name
		t.ids[name] = id
	}
	return t
}

// ID returns the material's stable ID, or 0 if the name is unknown.
func (t *MaterialTable) ID(name string) MaterialID {
	return t.ids[name]
}

// Name returns the material name for an ID, or "" for 0 / out of range.
func (t *MaterialTable) Name(id MaterialID) string {
	if int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Grid is the dense 2-D backing store: a material ID and an occupying
// object ID per cell.
type Grid struct {
	W, H      int
	Materials *MaterialTable

	mat []MaterialID
	obj []ObjectID
}

// NewGrid allocates a W×H grid, all cells unset and unoccupied.
func NewGrid(w, h int, materials *MaterialTable) *Grid {
	return &Grid{
		W:         w,
		H:         h,
		Materials: materials,
		mat:       make([]MaterialID, w*h),
		obj:       make([]ObjectID, w*h),
	}
}

// InBounds reports whether p lies within [0,W)×[0,H); boundary checks are
// symmetric — no negative-index wraparound.
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

func (g *Grid) index(p Pos) int {
	return p.Y*g.W + p.X
}

// Get returns the material name and occupying object ID at p. Out of
// bounds returns ("", 0).
func (g *Grid) Get(p Pos) (string, ObjectID) {
	if !g.InBounds(p) {
		return "", 0
	}
	i := g.index(p)
	return g.Materials.Name(g.mat[i]), g.obj[i]
}

// MaterialIDAt returns the raw material ID at p (0 if out of bounds).
func (g *Grid) MaterialIDAt(p Pos) MaterialID {
	if !g.InBounds(p) {
		return 0
	}
	return g.mat[g.index(p)]
}

// SetMaterial overwrites the terrain at p; it never touches occupancy.
// Out-of-bounds writes are a programmer error.
func (g *Grid) SetMaterial(p Pos, name string) {
	if !g.InBounds(p) {
		panic("world: SetMaterial out of bounds")
	}
	g.mat[g.index(p)] = g.Materials.ID(name)
}

// ObjectAt returns the object ID occupying p, 0 if none or out of bounds.
func (g *Grid) ObjectAt(p Pos) ObjectID {
	if !g.InBounds(p) {
		return 0
	}
	return g.obj[g.index(p)]
}

// setOccupant is used only by Registry to maintain the occupancy
// invariant; nothing else in this package writes g.obj directly.
func (g *Grid) setOccupant(p Pos, id ObjectID) {
	g.obj[g.index(p)] = id
}

// Nearby returns the set of distinct material names within the
// (2r)x(2r) window centered on pos, clipped to the grid bounds.
func (g *Grid) Nearby(pos Pos, radius int) map[string]bool {
	found := make(map[string]bool)
	for y := pos.Y - radius; y < pos.Y+radius; y++ {
		for x := pos.X - radius; x < pos.X+radius; x++ {
			p := Pos{X: x, Y: y}
			if !g.InBounds(p) {
				continue
			}
			name := g.Materials.Name(g.mat[g.index(p)])
			if name != "" {
				found[name] = true
			}
		}
	}
	return found
}

// Count returns the number of cells carrying the named material.
func (g *Grid) Count(name string) int {
	id := g.Materials.ID(name)
	n := 0
	for _, v := range g.mat {
		if v == id {
			n++
		}
	}
	return n
}
