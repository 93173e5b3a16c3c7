package zone

import (
	"errors"
	"testing"

	"github.com/bloops-games/doodleduel/internal/cache/cachelru"
	"github.com/google/go-cmp/cmp"
)

func TestContainsInclusive(t *testing.T) {
	t.Parallel()

	z := Zone{MinX: 0, MinY: 0, MaxX: 319, MaxY: 479}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{319, 479}, true},
		{Point{160, 240}, true},
		{Point{320, 240}, false},
		{Point{-1, 10}, false},
		{Point{10, 480}, false},
		{Point{10, -1}, false},
	}

	for _, tc := range tests {
		if got := z.Contains(tc.p); got != tc.want {
			t.Errorf("%#v: expected %v got %v", tc.p, tc.want, got)
		}
	}
}

func TestClampAlwaysInside(t *testing.T) {
	t.Parallel()

	zones := []Zone{
		{MinX: 0, MinY: 0, MaxX: 319, MaxY: 479},
		{MinX: 320, MinY: 0, MaxX: 639, MaxY: 479},
		{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5},
	}

	for _, z := range zones {
		for x := -700; x <= 1400; x += 37 {
			for y := -500; y <= 1000; y += 41 {
				p := Point{X: x, Y: y}
				c := z.Clamp(p)
				if !z.Contains(c) {
					t.Fatalf("clamp(%#v) = %#v escapes %#v", p, c, z)
				}
				if z.Contains(p) && c != p {
					t.Fatalf("clamp moved an inside point %#v to %#v", p, c)
				}
			}
		}
	}
}

func TestConfine(t *testing.T) {
	t.Parallel()

	z := Zone{MinX: 320, MinY: 0, MaxX: 639, MaxY: 479}

	p, inside := Confine(Point{X: 100, Y: 500}, z)
	if inside {
		t.Error("expected point outside zone")
	}
	if want := (Point{X: 320, Y: 479}); p != want {
		t.Errorf("expected %#v got %#v", want, p)
	}

	p, inside = Confine(Point{X: 500, Y: 10}, z)
	if !inside || p != (Point{X: 500, Y: 10}) {
		t.Errorf("expected inside unchanged point, got %#v %v", p, inside)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	zones, err := Split(640, 480, 2)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	want := []Zone{
		{MinX: 0, MinY: 0, MaxX: 319, MaxY: 479},
		{MinX: 320, MinY: 0, MaxX: 639, MaxY: 479},
	}
	if diff := cmp.Diff(want, zones); diff != "" {
		t.Fatalf("zones mismatch (-want +got):\n%s", diff)
	}

	zones, err = Split(641, 10, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	for i := 1; i < len(zones); i++ {
		if zones[i].MinX != zones[i-1].MaxX+1 {
			t.Errorf("zones %d and %d are not adjacent: %#v", i-1, i, zones)
		}
	}
	if zones[len(zones)-1].MaxX != 640 {
		t.Errorf("expected last zone to end at 640, got %d", zones[len(zones)-1].MaxX)
	}
}

func TestSplitInvalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ w, h, n int }{{0, 480, 2}, {640, 0, 2}, {640, 480, 0}, {1, 1, 2}} {
		if _, err := Split(tc.w, tc.h, tc.n); !errors.Is(err, ErrInvalidFrameSize) {
			t.Errorf("%#v: expected %v got %v", tc, ErrInvalidFrameSize, err)
		}
	}
}

func TestLayouterRecomputesOnResize(t *testing.T) {
	t.Parallel()

	c, err := cachelru.NewLRU(4)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	l := NewLayouter(2, c)

	small, err := l.Zones(640, 480)
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	if _, err := l.Zones(640, 480); err != nil {
		t.Fatalf("zones: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected one cached layout, got %d", c.Len())
	}

	large, err := l.Zones(1280, 720)
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	if large[1].MinX != 640 || small[1].MinX != 320 {
		t.Errorf("unexpected split after resize: %#v %#v", small, large)
	}
	if c.Len() != 2 {
		t.Errorf("expected two cached layouts, got %d", c.Len())
	}

	if _, err := l.Zones(0, 720); !errors.Is(err, ErrInvalidFrameSize) {
		t.Errorf("expected %v got %v", ErrInvalidFrameSize, err)
	}
}
