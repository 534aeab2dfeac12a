package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/lily-mosquitoes/image-recovery/imio"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] clean.png noisy.png")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		sigma = flag.Float64("sigma", 25, "Standard deviation of the gaussian noise.")
		seed  = flag.Int64("seed", 1, "Noise generator seed.")
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
	rnd := rand.New(rand.NewSource(*seed))
	noisy := imio.FromRGB(im).Map(func(v float64) float64 {
		return v + rnd.NormFloat64()*(*sigma)
	})
	// ToRGB clamps the perturbed values back into the 8-bit range.
	if err := imio.Save(dstFile, imio.ToRGB(noisy)); err != nil {
		log.Fatalln("save image:", err)
	}
}
