package tvd

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/lily-mosquitoes/image-recovery/rimg"
)

// Options holds the solver parameters.
//
// Lambda weights fidelity to the input: near zero the output approaches a
// flat image, large values keep it close to the input. Tau and Sigma are
// the primal and dual step sizes; convergence is guaranteed when
// tau*sigma*L² ≤ 1 with L² ≤ 8 for the discrete gradient. Gamma drives the
// acceleration schedule. The solver stops when the relative change
// norm(current-previous)/norm(previous) falls below Tol, or after MaxIter
// iterations.
type Options struct {
	Lambda float64
	Tau    float64
	Sigma  float64
	Gamma  float64

	MaxIter int
	Tol     float64

	// Debug receives a one-line trace per iteration when non-nil.
	Debug io.Writer
}

// DefaultOptions returns the parameters of Chambolle and Pock (2011) for
// the given fidelity weight: tau*sigma*8 == 1 and gamma = 0.35*lambda.
func DefaultOptions(lambda float64) Options {
	tau := 1 / math.Sqrt2
	return Options{
		Lambda:  lambda,
		Tau:     tau,
		Sigma:   1 / (8 * tau),
		Gamma:   0.35 * lambda,
		MaxIter: 500,
		Tol:     1e-10,
	}
}

func (opt Options) validate() error {
	params := []struct {
		name  string
		value float64
	}{
		{"lambda", opt.Lambda},
		{"tau", opt.Tau},
		{"sigma", opt.Sigma},
		{"gamma", opt.Gamma},
	}
	for _, p := range params {
		// !(v > 0) also rejects NaN.
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrBadOption, p.name, p.value)
		}
	}
	if opt.MaxIter < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrBadOption, opt.MaxIter)
	}
	if !(opt.Tol >= 0) {
		return fmt.Errorf("%w: convergence threshold must not be negative, got %g", ErrBadOption, opt.Tol)
	}
	return nil
}

func (opt Options) tracef(format string, args ...any) {
	if opt.Debug == nil {
		return
	}
	fmt.Fprintf(opt.Debug, format, args...)
}

func (opt Options) warnStability() {
	if p := opt.Tau * opt.Sigma * 8; p > 1 {
		opt.tracef("warning: tau*sigma*8 = %.4g exceeds 1, convergence is not guaranteed\n", p)
	}
}

// checkSize rejects images that a wrapping shift cannot be defined on.
func checkSize(size image.Point) error {
	if size.X < 2 || size.Y < 2 {
		return fmt.Errorf("tvd: image %dx%d too small to denoise: %w", size.X, size.Y, rimg.ErrAxisTooShort)
	}
	return nil
}

func checkBundle(f *rimg.RGB) error {
	for _, m := range []*rimg.Matrix{f.G, f.B} {
		if m.Size() != f.R.Size() {
			return fmt.Errorf("tvd: channel shapes %dx%d and %dx%d differ: %w",
				f.R.Width, f.R.Height, m.Width, m.Height, rimg.ErrShapeMismatch)
		}
	}
	return nil
}

// Shapes are validated before the loop, so operator errors cannot occur
// inside it; must and must2 unwrap them.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func must2[T any](a, b T, err error) (T, T) {
	if err != nil {
		panic(err)
	}
	return a, b
}

// weightedAverage pulls v back toward the noisy input u0, returning
// (v + w*u0) / (1 + w) with w = tau*lambda.
func weightedAverage(v, u0 *rimg.Matrix, w float64) *rimg.Matrix {
	return must(v.AddScaled(w, u0)).Scale(1 / (1 + w))
}

func weightedAverageRGB(v, u0 *rimg.RGB, w float64) *rimg.RGB {
	return must(v.AddScaled(w, u0)).Scale(1 / (1 + w))
}

// Denoise runs the accelerated primal-dual iteration on a single channel
// and returns the reconstruction. The extrapolated variable starts at the
// input and the dual pair at the input's own gradient; the warm start is
// kept deliberately, zero initialization behaves differently.
func Denoise(f *rimg.Matrix, opt Options) (*rimg.Matrix, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if err := checkSize(f.Size()); err != nil {
		return nil, err
	}
	opt.warnStability()

	tau, sigma := opt.Tau, opt.Sigma
	current := f.Clone()
	bar := current.Clone()
	dualA := must(current.Diff(rimg.X))
	dualB := must(current.Diff(rimg.Y))

	for iter := 1; ; iter++ {
		// Dual ascent on the extrapolated variable, then projection.
		dualA, dualB = must2(ProjectBall(
			must(dualA.AddScaled(sigma, must(bar.Diff(rimg.X)))),
			must(dualB.AddScaled(sigma, must(bar.Diff(rimg.Y)))),
		))

		// Operators return fresh matrices, so keeping the pointer is a copy.
		previous := current
		div := must(must(dualA.DiffT(rimg.X)).Add(must(dualB.DiffT(rimg.Y))))
		current = weightedAverage(must(current.AddScaled(-tau, div)), f, tau*opt.Lambda)

		theta := 1 / (1 + 2*opt.Gamma*tau)
		tau *= theta
		sigma /= theta

		delta := must(current.Sub(previous))
		bar = must(current.AddScaled(theta, delta))

		c := delta.Norm() / previous.Norm()
		opt.tracef("iter %d: ratio %.6g\n", iter, c)
		// A NaN ratio is 0/0 on an image that did not change; stop instead
		// of running to the cap.
		if c < opt.Tol || math.IsNaN(c) || iter >= opt.MaxIter {
			opt.tracef("returned at iter %d\n", iter)
			return current, nil
		}
	}
}

// DenoiseRGB runs the multichannel iteration with the channels coupled
// through the shared ball projection. Edges move together across channels,
// unlike DenoiseEachChannel.
func DenoiseRGB(f *rimg.RGB, opt Options) (*rimg.RGB, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if err := checkBundle(f); err != nil {
		return nil, err
	}
	if err := checkSize(f.Size()); err != nil {
		return nil, err
	}
	opt.warnStability()

	tau, sigma := opt.Tau, opt.Sigma
	current := f.Clone()
	bar := current.Clone()
	dualA := must(current.Diff(rimg.X))
	dualB := must(current.Diff(rimg.Y))

	for iter := 1; ; iter++ {
		dualA, dualB = must2(ProjectBallRGB(
			must(dualA.AddScaled(sigma, must(bar.Diff(rimg.X)))),
			must(dualB.AddScaled(sigma, must(bar.Diff(rimg.Y)))),
		))

		previous := current
		div := must(must(dualA.DiffT(rimg.X)).Add(must(dualB.DiffT(rimg.Y))))
		current = weightedAverageRGB(must(current.AddScaled(-tau, div)), f, tau*opt.Lambda)

		theta := 1 / (1 + 2*opt.Gamma*tau)
		tau *= theta
		sigma /= theta

		delta := must(current.Sub(previous))
		bar = must(current.AddScaled(theta, delta))

		c := delta.Norm() / previous.Norm()
		opt.tracef("iter %d: ratio %.6g\n", iter, c)
		if c < opt.Tol || math.IsNaN(c) || iter >= opt.MaxIter {
			opt.tracef("returned at iter %d\n", iter)
			return current, nil
		}
	}
}

// DenoiseEachChannel denoises the three channels independently with the
// single-channel solver and rebundles the results. The solves share no
// state and run concurrently, except when a Debug writer is set, to keep
// the trace ordered.
func DenoiseEachChannel(f *rimg.RGB, opt Options) (*rimg.RGB, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if err := checkBundle(f); err != nil {
		return nil, err
	}
	if err := checkSize(f.Size()); err != nil {
		return nil, err
	}

	channels := [3]*rimg.Matrix{f.R, f.G, f.B}
	var (
		out  [3]*rimg.Matrix
		errs [3]error
	)
	if opt.Debug != nil {
		for i, ch := range channels {
			opt.tracef("%s channel:\n", rimg.Channel(i))
			out[i], errs[i] = Denoise(ch, opt)
		}
	} else {
		var wg sync.WaitGroup
		for i, ch := range channels {
			wg.Add(1)
			go func(i int, ch *rimg.Matrix) {
				defer wg.Done()
				out[i], errs[i] = Denoise(ch, opt)
			}(i, ch)
		}
		wg.Wait()
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &rimg.RGB{R: out[0], G: out[1], B: out[2]}, nil
}
