package render

import (
	"testing"
)

func TestSplitScreenWithMembers(t *testing.T) {
	screen := Rect{Width: 80, Height: 24}
	regions := SplitScreen(screen, true)

	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(regions))
	}
	if regions[0].Width != 20 {
		t.Errorf("channel list width = %d, want 20", regions[0].Width)
	}
	if regions[2].Width != 10 {
		t.Errorf("member pane width = %d, want 10 (1/8 of 80)", regions[2].Width)
	}

	total := 0
	x := screen.X
	for i, r := range regions {
		if r.X != x {
			t.Errorf("region %d starts at x=%d, want %d", i, r.X, x)
		}
		if r.Height != screen.Height {
			t.Errorf("region %d height = %d, want %d", i, r.Height, screen.Height)
		}
		x += r.Width
		total += r.Width
	}
	if total != screen.Width {
		t.Errorf("region widths sum to %d, want %d", total, screen.Width)
	}
}

func TestSplitScreenWithoutMembers(t *testing.T) {
	regions := SplitScreen(Rect{Width: 80, Height: 24}, false)

	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Width != 20 {
		t.Errorf("channel list width = %d, want 20 (1/4 of 80)", regions[0].Width)
	}
	if regions[1].Width != 60 {
		t.Errorf("chat width = %d, want 60 (3/4 of 80)", regions[1].Width)
	}
}

func TestSplitScreenTinyTerminal(t *testing.T) {
	for _, width := range []int{0, 1, 3, 7} {
		for _, hasMembers := range []bool{false, true} {
			for _, r := range SplitScreen(Rect{Width: width, Height: 5}, hasMembers) {
				if r.Width < 0 {
					t.Errorf("width %d hasMembers=%v: negative region width %d", width, hasMembers, r.Width)
				}
			}
		}
	}
}

func TestRectInterior(t *testing.T) {
	if got := (Rect{Width: 10}).Interior(); got != 8 {
		t.Errorf("Interior() = %d, want 8", got)
	}
	if got := (Rect{Width: 1}).Interior(); got != 0 {
		t.Errorf("Interior() of width 1 = %d, want 0", got)
	}
}
