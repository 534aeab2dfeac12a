package rimg

import (
	"gonum.org/v1/gonum/floats"
)

// binary validates shapes and applies a dst = op(s, t) kernel.
// Every public binary operation goes through here.
func (f *Matrix) binary(g *Matrix, op func(dst, s, t []float64) []float64) (*Matrix, error) {
	if err := f.sameSize(g); err != nil {
		return nil, err
	}
	h := New(f.Width, f.Height)
	op(h.Elems, f.Elems, g.Elems)
	return h, nil
}

// Add returns f + g elementwise.
func (f *Matrix) Add(g *Matrix) (*Matrix, error) {
	return f.binary(g, floats.AddTo)
}

// Sub returns f - g elementwise.
func (f *Matrix) Sub(g *Matrix) (*Matrix, error) {
	return f.binary(g, floats.SubTo)
}

// Mul returns f * g elementwise.
func (f *Matrix) Mul(g *Matrix) (*Matrix, error) {
	return f.binary(g, floats.MulTo)
}

// Div returns f / g elementwise.
func (f *Matrix) Div(g *Matrix) (*Matrix, error) {
	return f.binary(g, floats.DivTo)
}

// AddScaled returns f + k*g elementwise.
func (f *Matrix) AddScaled(k float64, g *Matrix) (*Matrix, error) {
	if err := f.sameSize(g); err != nil {
		return nil, err
	}
	h := New(f.Width, f.Height)
	floats.AddScaledTo(h.Elems, f.Elems, k, g.Elems)
	return h, nil
}

// Scale returns k*f.
func (f *Matrix) Scale(k float64) *Matrix {
	g := New(f.Width, f.Height)
	floats.ScaleTo(g.Elems, k, f.Elems)
	return g
}

// AddConst returns f + c elementwise.
func (f *Matrix) AddConst(c float64) *Matrix {
	g := f.Clone()
	floats.AddConst(c, g.Elems)
	return g
}
