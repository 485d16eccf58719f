// Package collision decides whether proposed moves are legal by combining the
// static obstacle field with entity-vs-entity rectangle tests.
package collision

import "github.com/automoto/doomerang-arena/shared/gamemath"

// Field is the static obstacle query.
type Field interface {
	CanMoveTo(x, y, width, height float64) bool
}

// Rect is an axis-aligned box with top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the centre point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns the box moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps reports strict overlap; shared edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return gamemath.RectOverlap(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

// Result is the outcome of ResolveMove.
type Result struct {
	X, Y     float64
	BlockedX bool
	BlockedY bool
}

// Legal reports whether r may occupy its position. Blockers flagged in ignore
// are skipped; ResolveMove flags the ones r already overlaps so entities that
// were pushed into each other can separate.
func Legal(field Field, blockers []Rect, r Rect, ignore []bool) bool {
	if field != nil && !field.CanMoveTo(r.X, r.Y, r.W, r.H) {
		return false
	}
	for i, b := range blockers {
		if ignore != nil && ignore[i] {
			continue
		}
		if r.Overlaps(b) {
			return false
		}
	}
	return true
}

// ResolveMove moves r by (dx, dy) if that is legal. Otherwise it retries the
// horizontal component alone, then the vertical one, so agents slide along
// walls instead of stopping dead.
func ResolveMove(field Field, blockers []Rect, r Rect, dx, dy float64) Result {
	if dx == 0 && dy == 0 {
		return Result{X: r.X, Y: r.Y}
	}

	var ignore []bool
	for i, b := range blockers {
		if r.Overlaps(b) {
			if ignore == nil {
				ignore = make([]bool, len(blockers))
			}
			ignore[i] = true
		}
	}

	if Legal(field, blockers, r.Translate(dx, dy), ignore) {
		return Result{X: r.X + dx, Y: r.Y + dy}
	}
	if dx != 0 && Legal(field, blockers, r.Translate(dx, 0), ignore) {
		return Result{X: r.X + dx, Y: r.Y, BlockedY: dy != 0}
	}
	if dy != 0 && Legal(field, blockers, r.Translate(0, dy), ignore) {
		return Result{X: r.X, Y: r.Y + dy, BlockedX: dx != 0}
	}
	return Result{X: r.X, Y: r.Y, BlockedX: dx != 0, BlockedY: dy != 0}
}
