package tvd

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lily-mosquitoes/image-recovery/rimg"
)

const eps = 1e-12

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func fromRows(rows ...[]float64) *rimg.Matrix {
	h, w := len(rows), len(rows[0])
	f := rimg.New(w, h)
	for y, row := range rows {
		for x, v := range row {
			f.Set(x, y, v)
		}
	}
	return f
}

func flatMatrix(width, height int, v float64) *rimg.Matrix {
	f := rimg.New(width, height)
	for i := range f.Elems {
		f.Elems[i] = v
	}
	return f
}

// stepMatrix has a vertical edge halfway across, plus the wrapping edge.
func stepMatrix(width, height int, left, right float64) *rimg.Matrix {
	f := rimg.New(width, height)
	for x := 0; x < width; x++ {
		v := left
		if x >= width/2 {
			v = right
		}
		for y := 0; y < height; y++ {
			f.Set(x, y, v)
		}
	}
	return f
}

func randMatrix(rnd *rand.Rand, width, height int) *rimg.Matrix {
	f := rimg.New(width, height)
	for i := range f.Elems {
		f.Elems[i] = rnd.Float64() * 255
	}
	return f
}

func randRGB(rnd *rand.Rand, width, height int) *rimg.RGB {
	return &rimg.RGB{
		R: randMatrix(rnd, width, height),
		G: randMatrix(rnd, width, height),
		B: randMatrix(rnd, width, height),
	}
}

func matricesEq(want, got *rimg.Matrix) (bool, string) {
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

func testMatrixEq(t *testing.T, want, got *rimg.Matrix) {
	t.Helper()
	if eq, msg := matricesEq(want, got); !eq {
		t.Fatal(msg)
	}
}

func testRGBEq(t *testing.T, want, got *rimg.RGB) {
	t.Helper()
	for _, c := range []rimg.Channel{rimg.Red, rimg.Green, rimg.Blue} {
		if eq, msg := matricesEq(want.Channel(c), got.Channel(c)); !eq {
			t.Fatalf("%s: %s", c, msg)
		}
	}
}

// countIters counts per-iteration trace lines.
func countIters(trace string) int {
	n := 0
	for _, line := range strings.Split(trace, "\n") {
		if strings.HasPrefix(line, "iter ") {
			n++
		}
	}
	return n
}

func maxAbsDiff(a, b *rimg.RGB) float64 {
	var d float64
	for _, c := range []rimg.Channel{rimg.Red, rimg.Green, rimg.Blue} {
		ma, mb := a.Channel(c), b.Channel(c)
		for i := range ma.Elems {
			d = math.Max(d, math.Abs(ma.Elems[i]-mb.Elems[i]))
		}
	}
	return d
}

// totalVariation sums the per-pixel gradient magnitudes.
func totalVariation(t *testing.T, f *rimg.Matrix) float64 {
	t.Helper()
	dx, err := f.Diff(rimg.X)
	require.NoError(t, err)
	dy, err := f.Diff(rimg.Y)
	require.NoError(t, err)
	length, err := VecLen(dx, dy)
	require.NoError(t, err)
	return length.Sum()
}
