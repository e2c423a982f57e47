// Package layout partitions rectangles into non-overlapping regions using
// simple size constraints. It is purely geometric: no terminal state, no
// widget knowledge.
package layout

// Rect is a screen-space rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Direction selects the axis a Split divides along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
	kindPercentage
)

// Constraint describes how much of the parent one region receives.
type Constraint struct {
	kind constraintKind
	v    int
}

// Length requests exactly n cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, v: n} }

// Min requests at least n cells; the first Min constraint absorbs all
// leftover space.
func Min(n int) Constraint { return Constraint{kind: kindMin, v: n} }

// Percentage requests p percent of the parent extent, truncated.
func Percentage(p int) Constraint { return Constraint{kind: kindPercentage, v: p} }

// Split divides area along dir into one Rect per constraint. The result is
// contiguous, non-overlapping and never exceeds the parent bounds: when the
// requested sizes do not fit, trailing regions are clipped to zero size.
func Split(dir Direction, area Rect, constraints ...Constraint) []Rect {
	total := area.H
	if dir == Horizontal {
		total = area.W
	}

	sizes := make([]int, len(constraints))
	minIdx := -1
	used := 0
	for i, c := range constraints {
		switch c.kind {
		case kindLength:
			sizes[i] = c.v
		case kindMin:
			sizes[i] = c.v
			if minIdx < 0 {
				minIdx = i
			}
		case kindPercentage:
			sizes[i] = total * c.v / 100
		}
		if sizes[i] < 0 {
			sizes[i] = 0
		}
		used += sizes[i]
	}

	// Leftover space goes to the first Min region, or the last region when
	// there is none.
	if leftover := total - used; leftover > 0 && len(sizes) > 0 {
		if minIdx >= 0 {
			sizes[minIdx] += leftover
		} else {
			sizes[len(sizes)-1] += leftover
		}
	}

	rects := make([]Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		if offset+size > total {
			size = total - offset
		}
		if size < 0 {
			size = 0
		}
		if dir == Vertical {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: size}
		} else {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, W: size, H: area.H}
		}
		offset += size
	}
	return rects
}
