package spheres3d

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
)

// SaveImage writes the canvas; the format follows the file extension
// (.png, .bmp, .gif, .jpg/.jpeg). gamma != 1 applies a gamma correction
// (values above 1 brighten) before encoding.
func (c *Canvas) SaveImage(path string, gamma Real) error {
	if err := checkGamma(gamma); err != nil {
		return err
	}
	var img image.Image = c.Image()
	if gamma != 1 {
		img = adjust.Gamma(img, gamma)
	}

	// Make sure parent directory exists.
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return gg.SavePNG(path, img)
	case ".bmp":
		return encodeFile(path, func(w io.Writer) error { return bmp.Encode(w, img) })
	case ".gif":
		return encodeFile(path, func(w io.Writer) error { return encodeGIF(w, img) })
	case ".jpg", ".jpeg":
		return encodeFile(path, func(w io.Writer) error { return jpeg.Encode(w, img, &jpeg.Options{Quality: 95}) })
	default:
		return fmt.Errorf("unsupported image format %q (use .png, .bmp, .gif or .jpg)", ext)
	}
}

func checkGamma(gamma Real) error {
	if !(gamma > 0) || !isFinite(gamma) {
		return fmt.Errorf("gamma must be > 0, got %.6g", gamma)
	}
	return nil
}

// encodeGIF quantizes to the Plan9 palette with Floyd-Steinberg dithering.
func encodeGIF(w io.Writer, img image.Image) error {
	pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, img.Bounds().Min)
	return gif.Encode(w, pimg, &gif.Options{NumColors: len(palette.Plan9)})
}

func encodeFile(path string, enc func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
