// Package obstacles holds the static solid geometry of an arena and answers
// placement queries against it.
package obstacles

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-arena/shared/gamemath"
)

// TagSolid marks blocking objects in the space.
const TagSolid = "solid"

// Field is a bounded arena whose solids live in a resolv space. The space is
// only a broadphase; overlap is decided on exact rectangles.
type Field struct {
	Width, Height float64

	space  *resolv.Space
	probe  *resolv.Object
	solids []*resolv.Object
}

// NewField creates an empty arena. cellSize is the broadphase cell size in
// pixels; it has no effect on query results.
func NewField(width, height float64, cellSize int) *Field {
	if cellSize <= 0 {
		cellSize = 16
	}
	return &Field{
		Width:  width,
		Height: height,
		space:  resolv.NewSpace(int(width), int(height), cellSize, cellSize),
		probe:  resolv.NewObject(0, 0, 1, 1),
	}
}

// AddSolid registers a blocking rectangle.
func (f *Field) AddSolid(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	f.space.Add(obj)
	f.solids = append(f.solids, obj)
	return obj
}

// Solids returns the registered blocking objects.
func (f *Field) Solids() []*resolv.Object {
	return f.solids
}

// Space exposes the broadphase so other objects can share it.
func (f *Field) Space() *resolv.Space {
	return f.space
}

// CanMoveTo reports whether a rectangle with top-left (x, y) lies inside the
// arena and touches no solid. Edges touching a solid are allowed.
func (f *Field) CanMoveTo(x, y, width, height float64) bool {
	if f == nil {
		return true
	}
	if x < 0 || y < 0 || x+width > f.Width || y+height > f.Height {
		return false
	}

	f.probe.X, f.probe.Y = x, y
	f.probe.W, f.probe.H = width, height
	f.space.Add(f.probe)
	defer f.space.Remove(f.probe)

	check := f.probe.Check(0, 0, TagSolid)
	if check == nil {
		return true
	}
	for _, o := range check.Objects {
		if gamemath.RectOverlap(x, y, width, height, o.X, o.Y, o.W, o.H) {
			return false
		}
	}
	return true
}
