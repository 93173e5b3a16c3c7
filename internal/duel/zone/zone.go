// Package zone confines each player's input to their own rectangle of the frame.
package zone

import (
	"errors"
	"fmt"
)

var ErrInvalidFrameSize = errors.New("invalid frame size")

// Point is a position in frame pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Zone is an axis-aligned rectangle with inclusive bounds.
type Zone struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

func (z Zone) Contains(p Point) bool {
	return p.X >= z.MinX && p.X <= z.MaxX && p.Y >= z.MinY && p.Y <= z.MaxY
}

func (z Zone) Clamp(p Point) Point {
	return Point{X: clamp(p.X, z.MinX, z.MaxX), Y: clamp(p.Y, z.MinY, z.MaxY)}
}

func (z Zone) Width() int {
	return z.MaxX - z.MinX + 1
}

func (z Zone) Height() int {
	return z.MaxY - z.MinY + 1
}

// Confine returns p clamped into z and whether p was inside z to begin with.
func Confine(p Point, z Zone) (Point, bool) {
	return z.Clamp(p), z.Contains(p)
}

// Split divides a width x height frame into n side-by-side zones of full
// height, left to right. Zone i spans [i*width/n, (i+1)*width/n - 1].
func Split(width, height, n int) ([]Zone, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrameSize, width, height)
	}
	if n <= 0 || n > width {
		return nil, fmt.Errorf("%w: cannot split width %d into %d zones", ErrInvalidFrameSize, width, n)
	}

	zones := make([]Zone, n)
	for i := range zones {
		zones[i] = Zone{
			MinX: i * width / n,
			MinY: 0,
			MaxX: (i+1)*width/n - 1,
			MaxY: height - 1,
		}
	}

	return zones, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
