package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

// noise is incompressible, so its PNG encoding is roughly 4 bytes per pixel.
func noise(w, h int) *image.RGBA {
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int, string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

func TestIngestThresholdBoundary(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		wantAttempted bool
	}{
		{name: "exactly at threshold", size: DefaultThreshold, wantAttempted: false},
		{name: "one byte above threshold", size: DefaultThreshold + 1, wantAttempted: true},
		{name: "tiny", size: 10, wantAttempted: false},
	}

	in := NewIngestor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := bytes.Repeat([]byte{0xAB}, tt.size)
			res := in.Ingest(raw, 100, 100)

			assert.Equal(t, tt.wantAttempted, res.Attempted)
			assert.Equal(t, tt.size, res.OriginalSize)
			// The buffer is not an image, so the result is always the original.
			assert.False(t, res.Compressed)
			assert.Equal(t, raw, res.Data)
			assert.Equal(t, "png", res.Format.Extension)
			if tt.wantAttempted {
				assert.Error(t, res.Err)
			} else {
				assert.NoError(t, res.Err)
			}
		})
	}
}

func TestIngestCompressesLargeImage(t *testing.T) {
	raw := encodePNG(t, noise(500, 500))
	require.Greater(t, len(raw), DefaultThreshold)

	res := NewIngestor().Ingest(raw, 100, 50)
	require.NoError(t, res.Err)
	require.True(t, res.Compressed)
	assert.Less(t, len(res.Data), len(raw))
	assert.Equal(t, "jpeg", res.Format.Extension)

	w, h, format := decodedSize(t, res.Data)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 50, w)
	assert.Equal(t, 50, h)
}

func TestIngestCustomThreshold(t *testing.T) {
	raw := encodePNG(t, gradient(64, 32))
	in := &Ingestor{Threshold: 16, Quality: 90}

	res := in.Ingest(raw, 32, 32)
	require.NoError(t, res.Err)
	require.True(t, res.Compressed)

	w, h, _ := decodedSize(t, res.Data)
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
}

func TestIngestNilAndZeroValueUseDefaults(t *testing.T) {
	var in *Ingestor
	assert.Equal(t, DefaultThreshold, in.threshold())
	assert.Equal(t, DefaultQuality, in.quality())

	zero := &Ingestor{Quality: 500}
	assert.Equal(t, DefaultThreshold, zero.threshold())
	assert.Equal(t, DefaultQuality, zero.quality())
}

func TestCompressNeverUpscales(t *testing.T) {
	raw := encodePNG(t, gradient(20, 10))

	out, err := Compress(raw, 400, 300, DefaultQuality)
	require.NoError(t, err)

	w, h, format := decodedSize(t, out)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
}

func TestCompressDownscalesPreservingAspect(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		maxW, maxH   uint
		wantW, wantH int
	}{
		{name: "wide", srcW: 200, srcH: 100, maxW: 50, maxH: 50, wantW: 50, wantH: 25},
		{name: "tall", srcW: 100, srcH: 200, maxW: 50, maxH: 50, wantW: 25, wantH: 50},
		{name: "only height too large", srcW: 40, srcH: 200, maxW: 100, maxH: 100, wantW: 20, wantH: 100},
		{name: "zero width bound", srcW: 300, srcH: 100, maxW: 0, maxH: 50, wantW: 150, wantH: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compress(encodePNG(t, gradient(tt.srcW, tt.srcH)), tt.maxW, tt.maxH, DefaultQuality)
			require.NoError(t, err)
			w, h, _ := decodedSize(t, out)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCompressDecodesExtraFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, gradient(30, 30)))

	out, err := Compress(buf.Bytes(), 10, 10, DefaultQuality)
	require.NoError(t, err)
	w, h, _ := decodedSize(t, out)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestCompressFlattensTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	out, err := Compress(encodePNG(t, img), 10, 10, 100)
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	r, g, b, _ := decoded.At(1, 1).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestCompressErrors(t *testing.T) {
	_, err := Compress(nil, 10, 10, DefaultQuality)
	require.ErrorIs(t, err, ErrEmptyImage)

	_, err = Compress([]byte("definitely not an image"), 10, 10, DefaultQuality)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "decode", stageErr.Stage)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		w, h         int
		maxW, maxH   uint
		wantW, wantH int
	}{
		{10, 10, 20, 20, 10, 10},
		{20, 20, 20, 20, 20, 20},
		{40, 20, 20, 20, 20, 10},
		{1000, 1, 10, 10, 10, 1},
		{1, 1000, 10, 10, 1, 10},
		{50, 50, 0, 0, 50, 50},
	}
	for _, tt := range tests {
		w, h := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
		assert.Equal(t, tt.wantW, w, "%+v", tt)
		assert.Equal(t, tt.wantH, h, "%+v", tt)
	}
}

func TestLanczos3Kernel(t *testing.T) {
	assert.InDelta(t, 1.0, Lanczos3.At(0), 1e-9)
	assert.InDelta(t, 0.0, Lanczos3.At(1), 1e-9)
	assert.InDelta(t, 0.0, Lanczos3.At(2), 1e-9)
	assert.Equal(t, 0.0, Lanczos3.At(3))
	assert.Equal(t, 0.0, Lanczos3.At(-4))
	assert.InDelta(t, Lanczos3.At(0.5), Lanczos3.At(-0.5), 1e-12)
}

// oversizedPNG is a valid 1x1 PNG whose header declares w x h pixels, padded
// past the default threshold.
func oversizedPNG(t *testing.T, w, h uint32) []byte {
	t.Helper()
	data := encodePNG(t, gradient(1, 1))
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return append(data, make([]byte, DefaultThreshold)...)
}

func TestCompressRejectsOversizedDimensions(t *testing.T) {
	raw := oversizedPNG(t, 60000, 60000)

	_, err := Compress(raw, 100, 100, DefaultQuality)
	require.ErrorIs(t, err, ErrImageTooLarge)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "decode", stageErr.Stage)
}

func TestIngestFallsBackOnOversizedDimensions(t *testing.T) {
	raw := oversizedPNG(t, 60000, 60000)

	res := NewIngestor().Ingest(raw, 100, 100)
	assert.True(t, res.Attempted)
	assert.False(t, res.Compressed)
	assert.ErrorIs(t, res.Err, ErrImageTooLarge)
	assert.Equal(t, raw, res.Data)
	assert.Equal(t, "png", res.Format.Extension)
}

func TestFormatFor(t *testing.T) {
	f, ok := FormatFor("IMAGE/JPEG")
	require.True(t, ok)
	assert.Equal(t, "jpeg", f.Extension)

	_, ok = FormatFor("")
	assert.False(t, ok)
}

func TestDetectFormat(t *testing.T) {
	var jpg bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpg, gradient(4, 4), nil))
	var bm bytes.Buffer
	require.NoError(t, bmp.Encode(&bm, gradient(4, 4)))

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{name: "png", data: encodePNG(t, gradient(4, 4)), want: Format{Extension: "png", ContentType: "image/png"}},
		{name: "jpeg", data: jpg.Bytes(), want: Format{Extension: "jpeg", ContentType: "image/jpeg"}},
		{name: "bmp", data: bm.Bytes(), want: Format{Extension: "bmp", ContentType: "image/bmp"}},
		{name: "gif header only", data: []byte("GIF89a"), want: Format{Extension: "gif", ContentType: "image/gif"}},
		{name: "garbage", data: []byte("garbage"), want: Format{Extension: "png", ContentType: "image/png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.data))
		})
	}
}
