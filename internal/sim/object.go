package sim

import "github.com/hongjigr-sebon/tmposegame/internal/core"

// Kind tags what happens when the player touches an object.
type Kind int

const (
	KindObstacle Kind = iota // costs a warning unless cleared
	KindBonus                // adds points
	KindHazard               // ends the session
)

// String returns the lowercase kind name used in config files.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindBonus:
		return "bonus"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "obstacle":
		return KindObstacle, true
	case "bonus":
		return KindBonus, true
	case "hazard":
		return KindHazard, true
	default:
		return 0, false
	}
}

// Object is a spawned entity moving through the playfield.
type Object struct {
	Kind  Kind
	Key   string   // spawn table key, e.g. "cactus" or "10k"
	Box   core.Box // current hitbox in world units
	Speed float64  // units per second, fixed at spawn
	Value int      // points awarded for bonuses
}

// Resolution is a collision handler's verdict for one object.
type Resolution int

const (
	Keep    Resolution = iota // object stays live
	Consume                   // object is removed
	Halt                      // object is removed and no further objects are resolved
)

// Objects is the live object collection of a session.
type Objects []Object

// Add appends spawned objects.
func (s *Objects) Add(objs ...Object) {
	*s = append(*s, objs...)
}

// Translate moves every object by the same offset.
func (s Objects) Translate(dx, dy float64) {
	for i := range s {
		s[i].Box = s[i].Box.Translate(dx, dy)
	}
}

// Advance moves every object along the unit direction (ux, uy) at its own speed.
func (s Objects) Advance(dt, ux, uy float64) {
	for i := range s {
		d := s[i].Speed * dt
		s[i].Box = s[i].Box.Translate(ux*d, uy*d)
	}
}

// Cull removes objects for which gone returns true and reports how many were dropped.
func (s *Objects) Cull(gone func(Object) bool) int {
	valid := (*s)[:0]
	removed := 0
	for _, o := range *s {
		if gone(o) {
			removed++
			continue
		}
		valid = append(valid, o)
	}
	*s = valid
	return removed
}

// Resolve calls handle for every object overlapping player, in collection order,
// and compacts the collection in place. Objects that do not overlap are never
// passed to handle. After a Halt the remaining objects are kept untouched.
func (s *Objects) Resolve(player core.Box, handle func(Object) Resolution) int {
	valid := (*s)[:0]
	consumed := 0
	halted := false
	for _, o := range *s {
		if halted || !o.Box.Intersects(player) {
			valid = append(valid, o)
			continue
		}
		switch handle(o) {
		case Consume:
			consumed++
		case Halt:
			consumed++
			halted = true
		default:
			valid = append(valid, o)
		}
	}
	*s = valid
	return consumed
}

// Reset drops every object.
func (s *Objects) Reset() {
	*s = (*s)[:0]
}

// Clone returns an independent copy for snapshots.
func (s Objects) Clone() []Object {
	out := make([]Object, len(s))
	copy(out, s)
	return out
}
