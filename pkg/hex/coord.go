// Package hex implements cube coordinates for cells on an infinite
// hexagonal grid. A cell is addressed by axial (q, r); the third cube
// component s = -q - r is always derived, never stored independently.
package hex

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned by the checked operations when a component
// does not fit in an int.
var ErrOverflow = errors.New("hex: coordinate overflow")

// Hex is an immutable cell in cube coordinates with q+r+s=0.
// The zero value is the origin.
type Hex struct {
	q int
	r int
	s int
}

// New returns the cell at axial (q, r).
// Arithmetic wraps like any Go int, which keeps q+r+s=0 for every input.
func New(q, r int) Hex {
	return Hex{q: q, r: r, s: -q - r}
}

// NewChecked is New but fails with ErrOverflow when -q-r is not representable.
func NewChecked(q, r int) (Hex, error) {
	// negate whichever component is not MinInt; -MinInt alone never fits
	a, b := q, r
	if a == math.MinInt {
		a, b = r, q
	}
	na, ok := negInt(a)
	if !ok {
		return Hex{}, fmt.Errorf("%w: s for q=%d r=%d", ErrOverflow, q, r)
	}
	s, ok := subInt(na, b)
	if !ok {
		return Hex{}, fmt.Errorf("%w: s for q=%d r=%d", ErrOverflow, q, r)
	}
	return Hex{q: q, r: r, s: s}, nil
}

// Q returns the q component.
func (h Hex) Q() int { return h.q }

// R returns the r component.
func (h Hex) R() int { return h.r }

// S returns the derived s component.
func (h Hex) S() int { return h.s }

// Equal reports whether h and o are the same cell.
func (h Hex) Equal(o Hex) bool { return h == o }

// Add returns h+o. The result goes back through New.
func (h Hex) Add(o Hex) Hex { return New(h.q+o.q, h.r+o.r) }

// Sub returns h-o.
func (h Hex) Sub(o Hex) Hex { return New(h.q-o.q, h.r-o.r) }

// AddChecked returns h+o or ErrOverflow.
func (h Hex) AddChecked(o Hex) (Hex, error) {
	q, ok1 := addInt(h.q, o.q)
	r, ok2 := addInt(h.r, o.r)
	if !ok1 || !ok2 {
		return Hex{}, fmt.Errorf("%w: %s + %s", ErrOverflow, h, o)
	}
	return NewChecked(q, r)
}

// SubChecked returns h-o or ErrOverflow.
func (h Hex) SubChecked(o Hex) (Hex, error) {
	q, ok1 := subInt(h.q, o.q)
	r, ok2 := subInt(h.r, o.r)
	if !ok1 || !ok2 {
		return Hex{}, fmt.Errorf("%w: %s - %s", ErrOverflow, h, o)
	}
	return NewChecked(q, r)
}

// DistanceFrom returns the number of steps between h and o, i.e. the
// largest absolute component of the cube difference. The difference is
// taken per component, not through Sub.
//
// The result is only a metric while no component difference wraps; for
// operands near the int limits use DistanceChecked.
func (h Hex) DistanceFrom(o Hex) int {
	dq := absInt(h.q - o.q)
	dr := absInt(h.r - o.r)
	ds := absInt(h.s - o.s)
	return max(dq, dr, ds)
}

// DistanceChecked is DistanceFrom but fails with ErrOverflow when a
// component difference does not fit in an int.
func (h Hex) DistanceChecked(o Hex) (int, error) {
	best := 0
	for _, pair := range [3][2]int{{h.q, o.q}, {h.r, o.r}, {h.s, o.s}} {
		d, ok := subInt(pair[0], pair[1])
		if ok {
			d, ok = negIfNegative(d)
		}
		if !ok {
			return 0, fmt.Errorf("%w: distance %s to %s", ErrOverflow, h, o)
		}
		best = max(best, d)
	}
	return best, nil
}

// String renders the cell as Hex(q, r, s).
func (h Hex) String() string {
	return fmt.Sprintf("Hex(%d, %d, %d)", h.q, h.r, h.s)
}

// Distance returns hex distance between two cells.
func Distance(a, b Hex) int {
	return a.DistanceFrom(b)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func negIfNegative(v int) (int, bool) {
	if v < 0 {
		return negInt(v)
	}
	return v, true
}

func negInt(v int) (int, bool) {
	if v == math.MinInt {
		return 0, false
	}
	return -v, true
}

func addInt(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

func subInt(a, b int) (int, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, false
	}
	return c, true
}
