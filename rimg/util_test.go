package rimg

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-12

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

// fromRows builds a matrix from row-major literals, so tests read like the
// image they describe.
func fromRows(rows ...[]float64) *Matrix {
	h, w := len(rows), len(rows[0])
	f := New(w, h)
	for y, row := range rows {
		for x, v := range row {
			f.Set(x, y, v)
		}
	}
	return f
}

// randMatrix draws integer values so that differences, products and partial
// sums are exact in float64.
func randMatrix(rnd *rand.Rand, width, height int) *Matrix {
	f := New(width, height)
	for i := range f.Elems {
		f.Elems[i] = float64(rnd.Intn(256))
	}
	return f
}

func randRGB(rnd *rand.Rand, width, height int) *RGB {
	return &RGB{
		randMatrix(rnd, width, height),
		randMatrix(rnd, width, height),
		randMatrix(rnd, width, height),
	}
}

func matricesEq(want, got *Matrix) (bool, string) {
	if want.Width != got.Width || want.Height != got.Height {
		msg := fmt.Sprintf(
			"matrix sizes differ: want %dx%d, got %dx%d",
			want.Width, want.Height, got.Width, got.Height,
		)
		return false, msg
	}
	for x := 0; x < want.Width; x++ {
		for y := 0; y < want.Height; y++ {
			if !epsEq(want.At(x, y), got.At(x, y), eps) {
				msg := fmt.Sprintf("at (%d, %d): want %.6g, got %.6g", x, y, want.At(x, y), got.At(x, y))
				return false, msg
			}
		}
	}
	return true, ""
}

func testMatrixEq(t *testing.T, want, got *Matrix) {
	t.Helper()
	if eq, msg := matricesEq(want, got); !eq {
		t.Fatal(msg)
	}
}

func testRGBEq(t *testing.T, want, got *RGB) {
	t.Helper()
	for _, c := range []Channel{Red, Green, Blue} {
		if eq, msg := matricesEq(want.Channel(c), got.Channel(c)); !eq {
			t.Fatalf("%s: %s", c, msg)
		}
	}
}
