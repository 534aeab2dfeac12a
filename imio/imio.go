// Package imio converts between images and rimg matrices.
//
// Matrices hold 8-bit channel intensities widened to float64. Narrowing
// back clamps to [0, 255] and truncates toward zero, never rounds.
package imio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/lily-mosquitoes/image-recovery/rimg"
)

// FromGray converts an image to the matrix of its 8-bit gray levels.
func FromGray(im image.Image) *rimg.Matrix {
	b := im.Bounds()
	f := rimg.New(b.Dx(), b.Dy())
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			g := color.GrayModel.Convert(im.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			f.Set(x, y, float64(g.Y))
		}
	}
	return f
}

// ToGray narrows a matrix to an 8-bit grayscale image.
func ToGray(f *rimg.Matrix) *image.Gray {
	im := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			im.SetGray(x, y, color.Gray{Y: narrow(f.At(x, y))})
		}
	}
	return im
}

// FromRGB converts an image to a bundle of its 8-bit color channels.
func FromRGB(im image.Image) *rimg.RGB {
	b := im.Bounds()
	f := rimg.NewRGB(b.Dx(), b.Dy())
	for x := 0; x < f.Width(); x++ {
		for y := 0; y < f.Height(); y++ {
			r, g, bl, _ := im.At(b.Min.X+x, b.Min.Y+y).RGBA()
			f.R.Set(x, y, float64(r>>8))
			f.G.Set(x, y, float64(g>>8))
			f.B.Set(x, y, float64(bl>>8))
		}
	}
	return f
}

// ToRGB narrows a bundle to an 8-bit opaque color image.
func ToRGB(f *rimg.RGB) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for x := 0; x < f.Width(); x++ {
		for y := 0; y < f.Height(); y++ {
			im.SetRGBA(x, y, color.RGBA{
				R: narrow(f.R.At(x, y)),
				G: narrow(f.G.At(x, y)),
				B: narrow(f.B.At(x, y)),
				A: 0xff,
			})
		}
	}
	return im
}

// Channel extracts one color channel of an image as a matrix.
// Panics if c is not Red, Green or Blue.
func Channel(im image.Image, c rimg.Channel) *rimg.Matrix {
	checkChannel(c)
	b := im.Bounds()
	f := rimg.New(b.Dx(), b.Dy())
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			r, g, bl, _ := im.At(b.Min.X+x, b.Min.Y+y).RGBA()
			switch c {
			case rimg.Red:
				f.Set(x, y, float64(r>>8))
			case rimg.Green:
				f.Set(x, y, float64(g>>8))
			case rimg.Blue:
				f.Set(x, y, float64(bl>>8))
			}
		}
	}
	return f
}

// UpdateChannel overwrites one color channel of a packed image with the
// narrowed elements of f, leaving the other channels and making the pixels
// opaque. Returns ErrShapeMismatch unless f matches the image bounds.
// Panics if c is not Red, Green or Blue.
func UpdateChannel(im *image.RGBA, c rimg.Channel, f *rimg.Matrix) error {
	checkChannel(c)
	b := im.Bounds()
	if f.Width != b.Dx() || f.Height != b.Dy() {
		return fmt.Errorf("imio: %dx%d matrix for %dx%d image: %w",
			f.Width, f.Height, b.Dx(), b.Dy(), rimg.ErrShapeMismatch)
	}
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			// Pixels pack as R, G, B, A, in channel order.
			i := im.PixOffset(b.Min.X+x, b.Min.Y+y)
			im.Pix[i+int(c)] = narrow(f.At(x, y))
			im.Pix[i+3] = 0xff
		}
	}
	return nil
}

func checkChannel(c rimg.Channel) {
	switch c {
	case rimg.Red, rimg.Green, rimg.Blue:
	default:
		panic(fmt.Sprintf("imio: invalid channel %d", int(c)))
	}
}

// narrow converts a real intensity to an 8-bit channel value, clamping to
// [0, 255] and truncating. NaN narrows to zero.
func narrow(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Load decodes the image in the named file. PNG, JPEG, GIF and TIFF are
// recognized.
func Load(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return im, nil
}

// Save encodes the image to the named file, choosing the encoder by
// extension: .png, .jpg, .jpeg, .tif or .tiff.
func Save(name string, im image.Image) error {
	encode, err := encoderFor(name)
	if err != nil {
		return err
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return encode(file, im)
}

func encoderFor(name string) (func(io.Writer, image.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, im image.Image) error {
			return jpeg.Encode(w, im, nil)
		}, nil
	case ".tif", ".tiff":
		return func(w io.Writer, im image.Image) error {
			return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
