package layout

import "testing"

func TestSplitVerticalFillsParent(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 80, H: 24}
	rects := Split(Vertical, area, Length(3), Length(2), Min(10), Length(1))

	if len(rects) != 4 {
		t.Fatalf("expected 4 rects, got %d", len(rects))
	}
	if rects[0].H != 3 || rects[1].H != 2 || rects[3].H != 1 {
		t.Errorf("fixed heights wrong: %v", rects)
	}
	// Min region absorbs the leftover: 24 - 3 - 2 - 1 = 18.
	if rects[2].H != 18 {
		t.Errorf("expected min region height 18, got %d", rects[2].H)
	}

	sum := 0
	for _, r := range rects {
		if r.W != area.W || r.X != area.X {
			t.Errorf("vertical split changed width or x: %v", r)
		}
		sum += r.H
	}
	if sum != area.H {
		t.Errorf("heights sum to %d, want %d", sum, area.H)
	}
}

func TestSplitHorizontalPercentages(t *testing.T) {
	area := Rect{X: 5, Y: 2, W: 100, H: 10}
	rects := Split(Horizontal, area, Percentage(70), Percentage(30))

	if rects[0].W != 70 || rects[1].W != 30 {
		t.Errorf("expected 70/30, got %d/%d", rects[0].W, rects[1].W)
	}
	if rects[0].X != 5 || rects[1].X != 75 {
		t.Errorf("regions not contiguous: %v", rects)
	}
}

func TestSplitPercentageRoundingGoesToLast(t *testing.T) {
	// 45% + 55% of 81 truncates to 36 + 44 = 80; the last region takes the
	// remaining cell.
	area := Rect{W: 81, H: 10}
	rects := Split(Horizontal, area, Percentage(45), Percentage(55))

	if rects[0].W+rects[1].W != 81 {
		t.Errorf("widths sum to %d, want 81", rects[0].W+rects[1].W)
	}
	if rects[0].W != 36 {
		t.Errorf("expected first region 36, got %d", rects[0].W)
	}
}

func TestSplitNoOverlapAndInBounds(t *testing.T) {
	area := Rect{X: 3, Y: 7, W: 40, H: 30}
	rects := Split(Vertical, area, Length(7), Min(10), Length(5))

	prevEnd := area.Y
	for i, r := range rects {
		if r.Y != prevEnd {
			t.Errorf("rect %d starts at %d, expected %d", i, r.Y, prevEnd)
		}
		if r.Y < area.Y || r.Y+r.H > area.Y+area.H {
			t.Errorf("rect %d out of bounds: %v", i, r)
		}
		prevEnd = r.Y + r.H
	}
}

func TestSplitTooSmallClipsTrailing(t *testing.T) {
	// Requested fixed sizes exceed the parent; trailing regions collapse to
	// zero instead of overflowing.
	area := Rect{W: 20, H: 4}
	rects := Split(Vertical, area, Length(3), Length(2), Min(10), Length(1))

	sum := 0
	for i, r := range rects {
		if r.H < 0 {
			t.Errorf("rect %d has negative height", i)
		}
		sum += r.H
	}
	if sum > area.H {
		t.Errorf("heights sum to %d, exceeding parent %d", sum, area.H)
	}
	if rects[0].H != 3 || rects[1].H != 1 {
		t.Errorf("expected leading regions to keep priority, got %v", rects)
	}
}

func TestSplitZeroArea(t *testing.T) {
	rects := Split(Horizontal, Rect{}, Percentage(50), Percentage(50))
	for i, r := range rects {
		if r.W != 0 {
			t.Errorf("rect %d of zero area has width %d", i, r.W)
		}
	}
}
