package rimg

import (
	"fmt"
	"image"
	"math"
)

// Channel identifies one component of an RGB bundle.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// RGB is a bundle of three same-size matrices, one per color channel.
// Arithmetic operations apply per channel. Sum and Norm reduce over all
// three channels jointly.
type RGB struct {
	R, G, B *Matrix
}

// NewRGB creates a zero-filled bundle of the given dimensions.
func NewRGB(width, height int) *RGB {
	return &RGB{New(width, height), New(width, height), New(width, height)}
}

// BundleRGB creates a bundle from copies of the three channels.
// Returns ErrShapeMismatch unless all three have the same shape.
func BundleRGB(r, g, b *Matrix) (*RGB, error) {
	if err := r.sameSize(g); err != nil {
		return nil, err
	}
	if err := r.sameSize(b); err != nil {
		return nil, err
	}
	return &RGB{r.Clone(), g.Clone(), b.Clone()}, nil
}

// Width returns the number of columns.
func (f *RGB) Width() int { return f.R.Width }

// Height returns the number of rows.
func (f *RGB) Height() int { return f.R.Height }

// Size returns the dimensions of the bundle.
func (f *RGB) Size() image.Point { return f.R.Size() }

// Channel returns the matrix of the given channel.
// Panics if c is not Red, Green or Blue.
func (f *RGB) Channel(c Channel) *Matrix {
	switch c {
	case Red:
		return f.R
	case Green:
		return f.G
	case Blue:
		return f.B
	}
	panic(fmt.Sprintf("rimg: invalid channel %d", int(c)))
}

// SetChannel replaces the given channel with a copy of m.
// Returns ErrShapeMismatch unless m has the shape of the bundle.
// Panics if c is not Red, Green or Blue.
func (f *RGB) SetChannel(c Channel, m *Matrix) error {
	if err := f.R.sameSize(m); err != nil {
		return err
	}
	switch c {
	case Red:
		f.R = m.Clone()
	case Green:
		f.G = m.Clone()
	case Blue:
		f.B = m.Clone()
	default:
		panic(fmt.Sprintf("rimg: invalid channel %d", int(c)))
	}
	return nil
}

// Clone returns a deep copy of the bundle.
func (f *RGB) Clone() *RGB {
	return &RGB{f.R.Clone(), f.G.Clone(), f.B.Clone()}
}

// Map returns a bundle with fn applied to every element of every channel.
func (f *RGB) Map(fn func(float64) float64) *RGB {
	return &RGB{f.R.Map(fn), f.G.Map(fn), f.B.Map(fn)}
}

// lift applies op to each channel, stopping at the first error.
func (f *RGB) lift(op func(*Matrix) (*Matrix, error)) (*RGB, error) {
	r, err := op(f.R)
	if err != nil {
		return nil, err
	}
	g, err := op(f.G)
	if err != nil {
		return nil, err
	}
	b, err := op(f.B)
	if err != nil {
		return nil, err
	}
	return &RGB{r, g, b}, nil
}

// lift2 applies a binary op channel-wise, stopping at the first error.
func (f *RGB) lift2(g *RGB, op func(s, t *Matrix) (*Matrix, error)) (*RGB, error) {
	r, err := op(f.R, g.R)
	if err != nil {
		return nil, err
	}
	gg, err := op(f.G, g.G)
	if err != nil {
		return nil, err
	}
	b, err := op(f.B, g.B)
	if err != nil {
		return nil, err
	}
	return &RGB{r, gg, b}, nil
}

// Add returns the elementwise sum f + g per channel.
func (f *RGB) Add(g *RGB) (*RGB, error) { return f.lift2(g, (*Matrix).Add) }

// Sub returns the elementwise difference f - g per channel.
func (f *RGB) Sub(g *RGB) (*RGB, error) { return f.lift2(g, (*Matrix).Sub) }

// Mul returns the elementwise product f * g per channel.
func (f *RGB) Mul(g *RGB) (*RGB, error) { return f.lift2(g, (*Matrix).Mul) }

// Div returns the elementwise quotient f / g per channel.
func (f *RGB) Div(g *RGB) (*RGB, error) { return f.lift2(g, (*Matrix).Div) }

// AddScaled returns f + k*g per channel.
func (f *RGB) AddScaled(k float64, g *RGB) (*RGB, error) {
	return f.lift2(g, func(s, t *Matrix) (*Matrix, error) { return s.AddScaled(k, t) })
}

// DivEach returns the bundle with every channel divided elementwise by g.
func (f *RGB) DivEach(g *Matrix) (*RGB, error) {
	return f.lift(func(m *Matrix) (*Matrix, error) { return m.Div(g) })
}

// Scale returns the bundle with every element multiplied by k.
func (f *RGB) Scale(k float64) *RGB {
	return &RGB{f.R.Scale(k), f.G.Scale(k), f.B.Scale(k)}
}

// AddConst returns the bundle with c added to every element.
func (f *RGB) AddConst(c float64) *RGB {
	return &RGB{f.R.AddConst(c), f.G.AddConst(c), f.B.AddConst(c)}
}

// Squared returns the bundle with every element squared.
func (f *RGB) Squared() *RGB {
	return &RGB{f.R.Squared(), f.G.Squared(), f.B.Squared()}
}

// Pow returns the bundle with every element raised to the power p.
func (f *RGB) Pow(p float64) *RGB {
	return &RGB{f.R.Pow(p), f.G.Pow(p), f.B.Pow(p)}
}

// ShiftPos shifts every channel by one towards growing indices, wrapping.
func (f *RGB) ShiftPos(axis Axis) (*RGB, error) {
	return f.lift(func(m *Matrix) (*Matrix, error) { return m.ShiftPos(axis) })
}

// ShiftNeg shifts every channel by one towards shrinking indices, wrapping.
func (f *RGB) ShiftNeg(axis Axis) (*RGB, error) {
	return f.lift(func(m *Matrix) (*Matrix, error) { return m.ShiftNeg(axis) })
}

// Diff returns the forward difference along the given axis per channel.
func (f *RGB) Diff(axis Axis) (*RGB, error) {
	return f.lift(func(m *Matrix) (*Matrix, error) { return m.Diff(axis) })
}

// DiffT returns the transposed difference along the given axis per channel.
func (f *RGB) DiffT(axis Axis) (*RGB, error) {
	return f.lift(func(m *Matrix) (*Matrix, error) { return m.DiffT(axis) })
}

// Sum returns the sum of the elements of all three channels.
func (f *RGB) Sum() float64 {
	return f.R.Sum() + f.G.Sum() + f.B.Sum()
}

// Norm returns the Euclidean norm over the elements of all three channels.
func (f *RGB) Norm() float64 {
	return math.Hypot(math.Hypot(f.R.Norm(), f.G.Norm()), f.B.Norm())
}
