package tvd

import (
	"math"

	"github.com/lily-mosquitoes/image-recovery/rimg"
)

// EstimateNoise estimates the standard deviation of gaussian noise on a
// natural image, after Immerkær, "Fast Noise Variance Estimation" (1996).
// It convolves the interior with a 3x3 Laplacian-difference kernel that
// annihilates constant and linear content, and scales the summed magnitude
// response. The estimate can guide the choice of Lambda. Images smaller
// than 3x3 return 0.
func EstimateNoise(f *rimg.Matrix) float64 {
	w, h := f.Width, f.Height
	if w < 3 || h < 3 {
		return 0
	}
	var sum float64
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			conv := 4*f.At(x, y) -
				2*(f.At(x-1, y)+f.At(x+1, y)+f.At(x, y-1)+f.At(x, y+1)) +
				f.At(x-1, y-1) + f.At(x+1, y-1) + f.At(x-1, y+1) + f.At(x+1, y+1)
			sum += math.Abs(conv)
		}
	}
	return sum * math.Sqrt(0.5*math.Pi) / (6 * float64(w-2) * float64(h-2))
}
