package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"

	"github.com/nfnt/resize"

	"github.com/lily-mosquitoes/image-recovery/imio"
	"github.com/lily-mosquitoes/image-recovery/tvd"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] noisy.png denoised.png")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		lambda  = flag.Float64("lambda", 0.0259624705, "Fidelity weight. Near zero smooths flat, large stays near the input.")
		tau     = flag.Float64("tau", 1/math.Sqrt2, "Primal step size.")
		sigma   = flag.Float64("sigma", 0, "Dual step size. Zero means 1/(8*tau).")
		gamma   = flag.Float64("gamma", 0, "Acceleration rate. Zero means 0.35*lambda.")
		iter    = flag.Int("iter", 500, "Iteration cap.")
		tol     = flag.Float64("tol", 1e-10, "Relative-change stopping tolerance.")
		mode    = flag.String("mode", "rgb", "Denoising mode: {gray, rgb, each}.")
		width   = flag.Uint("width", 0, "Downscale to this width before denoising. Zero keeps the size.")
		verbose = flag.Bool("v", false, "Trace iterations to stderr.")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		srcFile = flag.Arg(0)
		dstFile = flag.Arg(1)
	)

	im, err := imio.Load(srcFile)
	if err != nil {
		log.Fatalln("load image:", err)
	}
	if *width > 0 {
		im = resize.Resize(*width, 0, im, resize.Lanczos3)
	}
	log.Printf("image: %dx%d", im.Bounds().Dx(), im.Bounds().Dy())

	opt := tvd.Options{
		Lambda:  *lambda,
		Tau:     *tau,
		Sigma:   *sigma,
		Gamma:   *gamma,
		MaxIter: *iter,
		Tol:     *tol,
	}
	if opt.Sigma == 0 {
		opt.Sigma = 1 / (8 * opt.Tau)
	}
	if opt.Gamma == 0 {
		opt.Gamma = 0.35 * opt.Lambda
	}
	if *verbose {
		opt.Debug = os.Stderr
		// Advisory only; a good lambda shrinks with the noise level.
		log.Printf("estimated noise sigma: %.4g", tvd.EstimateNoise(imio.FromGray(im)))
	}

	out, err := denoise(im, *mode, opt)
	if err != nil {
		log.Fatalln("denoise:", err)
	}
	if err := imio.Save(dstFile, out); err != nil {
		log.Fatalln("save image:", err)
	}
}

func denoise(im image.Image, mode string, opt tvd.Options) (image.Image, error) {
	switch mode {
	case "gray":
		f, err := tvd.Denoise(imio.FromGray(im), opt)
		if err != nil {
			return nil, err
		}
		return imio.ToGray(f), nil
	case "rgb":
		f, err := tvd.DenoiseRGB(imio.FromRGB(im), opt)
		if err != nil {
			return nil, err
		}
		return imio.ToRGB(f), nil
	case "each":
		f, err := tvd.DenoiseEachChannel(imio.FromRGB(im), opt)
		if err != nil {
			return nil, err
		}
		return imio.ToRGB(f), nil
	default:
		return nil, fmt.Errorf("unknown mode: %q", mode)
	}
}
