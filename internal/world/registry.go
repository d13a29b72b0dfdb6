package world

// Registry is the arena-style object store: a stable-ID-indexed slice of
// live objects bound to a Grid, maintaining invariants 1-2 from the data
// model (object_ids[o.pos] == o.id; at most one live object per cell).
// Cross-entity references elsewhere in the module store an ObjectID,
// never a pointer, so the arena remains the sole owner of lifetime.
type Registry struct {
	grid    *Grid
	objects []*Object // index 0 is the permanent sentinel (nil)
	nextID  ObjectID
}

// NewRegistry creates an empty registry bound to grid.
func NewRegistry(grid *Grid) *Registry {
	return &Registry{grid: grid, objects: []*Object{nil}, nextID: 1}
}

// Add registers obj at its current Pos, assigning it a fresh stable ID.
// Panics if the target cell is already occupied — insertion at an
// occupied cell can only happen from a worldgen or entity-update defect,
// never from an agent action (those are checked with IsFree first).
func (r *Registry) Add(obj *Object) ObjectID {
	if !r.grid.InBounds(obj.Pos) {
		panic("world: Add out of bounds")
	}
	if r.grid.ObjectAt(obj.Pos) != 0 {
		panic("world: Add onto an occupied cell")
	}
	obj.ID = r.nextID
	r.nextID++
	r.objects = append(r.objects, obj)
	r.grid.setOccupant(obj.Pos, obj.ID)
	return obj.ID
}

// Remove deregisters obj and frees its cell. Panics if obj is not a
// currently-registered object — a programmer error, since every removal
// site holds a live *Object it just looked up from the registry.
func (r *Registry) Remove(obj *Object) {
	if int(obj.ID) >= len(r.objects) || r.objects[obj.ID] != obj {
		panic("world: Remove of unregistered object")
	}
	r.grid.setOccupant(obj.Pos, 0)
	r.objects[obj.ID] = nil
}

// Move relocates obj to target, updating grid occupancy. Panics if
// target is already occupied by a different object.
func (r *Registry) Move(obj *Object, target Pos) {
	if !r.grid.InBounds(target) {
		panic("world: Move out of bounds")
	}
	if occ := r.grid.ObjectAt(target); occ != 0 && occ != obj.ID {
		panic("world: Move onto an occupied cell")
	}
	r.grid.setOccupant(obj.Pos, 0)
	obj.Pos = target
	r.grid.setOccupant(target, obj.ID)
}

// IsFree reports whether target holds no object and its material is in
// the given walkable set (nil means "any material, occupancy only").
func (r *Registry) IsFree(target Pos, walkable map[string]bool) bool {
	if !r.grid.InBounds(target) {
		return false
	}
	if r.grid.ObjectAt(target) != 0 {
		return false
	}
	if walkable == nil {
		return true
	}
	name, _ := r.grid.Get(target)
	return walkable[name]
}

// At returns the live object at id, or nil for the sentinel / a removed
// object / an out-of-range id.
func (r *Registry) At(id ObjectID) *Object {
	if id == 0 || int(id) >= len(r.objects) {
		return nil
	}
	return r.objects[id]
}

// ObjectAtPos resolves whatever object currently occupies pos, if any.
func (r *Registry) ObjectAtPos(pos Pos) *Object {
	return r.At(r.grid.ObjectAt(pos))
}

// Snapshot returns the currently live object IDs in ascending order.
// The env loop iterates this exact snapshot each step so objects added
// mid-tick (arrows) do not themselves update until the following tick.
func (r *Registry) Snapshot() []ObjectID {
	ids := make([]ObjectID, 0, len(r.objects))
	for id := ObjectID(1); int(id) < len(r.objects); id++ {
		if r.objects[id] != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Reset clears every registered object and resets ID allocation,
// preparing the registry for a new episode. The caller is responsible
// for clearing grid occupancy/materials separately (Grid has no bulk
// clear since World owns full-grid replacement on reset).
func (r *Registry) Reset() {
	r.objects = r.objects[:1]
	r.nextID = 1
}
