package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	// Register decoders for image.Decode.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxDecodedBytes bounds the RGBA buffer a picture may decode into.
const MaxDecodedBytes = 512 << 20

var (
	// ErrEmptyImage is returned when there are no bytes to decode.
	ErrEmptyImage = errors.New("empty image data")
	// ErrImageTooLarge is returned when the declared pixel size would exceed
	// MaxDecodedBytes.
	ErrImageTooLarge = errors.New("image dimensions exceed decode limit")
)

// Lanczos3 is a windowed-sinc resampling kernel with a support of three pixels.
var Lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t >= 3 {
			return 0
		}
		return sinc(t) * sinc(t/3)
	},
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// StageError reports which step of Compress failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("image %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Compress decodes raw, shrinks it to fit within maxWidth x maxHeight when it
// is larger, and encodes the result as JPEG. Aspect ratio is preserved and the
// picture is never enlarged. A zero bound leaves that axis unconstrained.
func Compress(raw []byte, maxWidth, maxHeight uint, quality int) ([]byte, error) {
	if len(raw) == 0 {
		return nil, &StageError{Stage: "decode", Err: ErrEmptyImage}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, &StageError{Stage: "decode", Err: err}
	}
	if int64(cfg.Width)*int64(cfg.Height)*4 > MaxDecodedBytes {
		return nil, &StageError{Stage: "decode", Err: fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)}
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &StageError{Stage: "decode", Err: err}
	}

	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxWidth, maxHeight)

	// JPEG has no alpha channel: composite onto white first.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	} else {
		Lanczos3.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, &StageError{Stage: "encode", Err: err}
	}
	return out.Bytes(), nil
}

// FitWithin returns the size of a w x h picture scaled down to fit inside a
// maxW x maxH box. Pictures that already fit are returned unchanged.
func FitWithin(w, h int, maxW, maxH uint) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}

	scale := 1.0
	if maxW > 0 && w > int(maxW) {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 && h > int(maxH) {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	if scale == 1.0 {
		return w, h
	}

	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
