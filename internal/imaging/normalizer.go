// Package imaging bounds uploaded images to a size/quality budget before they
// are persisted or embedded in proposal documents. Transparency-capable
// sources stay PNG; everything else is re-encoded as JPEG.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"strings"

	_ "image/gif"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecode = errors.New("imaging: undecodable image")
	ErrEncode = errors.New("imaging: encode failed")
)

const (
	DefaultMaxWidth = 1024
	DefaultQuality  = 0.70
)

// Options selects the size/quality budget for one asset class. Zero values
// fall back to the defaults; Quality only affects JPEG output.
type Options struct {
	MaxWidth int
	Quality  float64
}

// Per-asset budgets, matching the admin surface's call sites.
var (
	LogoPreset      = Options{MaxWidth: 500}
	BannerPreset    = Options{MaxWidth: 1200, Quality: 0.8}
	HeroPreset      = Options{MaxWidth: 1000}
	GalleryPreset   = Options{MaxWidth: 800, Quality: 0.7}
	TimetablePreset = Options{MaxWidth: 1000}
)

// PresetFor maps an asset kind name to its budget. Unknown kinds get the
// defaults.
func PresetFor(kind string) Options {
	switch strings.ToLower(kind) {
	case "logo":
		return LogoPreset
	case "banner":
		return BannerPreset
	case "hero":
		return HeroPreset
	case "gallery":
		return GalleryPreset
	case "timetable":
		return TimetablePreset
	}
	return Options{}
}

// Encoded is a self-describing normalized image: bytes plus the MIME type
// they were encoded with.
type Encoded struct {
	Bytes  []byte
	MIME   string
	Width  int
	Height int
}

// DataURL renders the encoded image as an inline data URL.
func (e Encoded) DataURL() string {
	return "data:" + e.MIME + ";base64," + base64.StdEncoding.EncodeToString(e.Bytes)
}

// Normalize decodes data, downscales it to opts.MaxWidth when wider
// (preserving aspect ratio, never upscaling), redraws it onto a fresh
// transparent surface, and re-encodes it: PNG when the declared MIME type or
// filename indicates PNG/WEBP/GIF, JPEG at opts.Quality otherwise.
// It is pure: identical input bytes and options yield identical output.
func Normalize(data []byte, declaredMIME, filename string, opts Options) (Encoded, error) {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.Quality <= 0 || opts.Quality > 1 {
		opts.Quality = DefaultQuality
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > opts.MaxWidth {
		h = int(math.Round(float64(h) * float64(opts.MaxWidth) / float64(w)))
		w = opts.MaxWidth
	}

	// A zero-valued RGBA is fully transparent, and draw.Src copies source
	// alpha instead of compositing, so transparent pixels survive the redraw.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)

	var buf bytes.Buffer
	if keepPNG(declaredMIME, filename) {
		if err := png.Encode(&buf, dst); err != nil {
			return Encoded{}, fmt.Errorf("%w: %v", ErrEncode, err)
		}
		return Encoded{Bytes: buf.Bytes(), MIME: "image/png", Width: w, Height: h}, nil
	}
	q := int(math.Round(opts.Quality * 100))
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: q}); err != nil {
		return Encoded{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return Encoded{Bytes: buf.Bytes(), MIME: "image/jpeg", Width: w, Height: h}, nil
}

// keepPNG reports whether the source format may carry alpha and therefore
// must stay PNG on output.
func keepPNG(declaredMIME, filename string) bool {
	mime := strings.ToLower(declaredMIME)
	name := strings.ToLower(filename)
	return strings.Contains(mime, "png") ||
		strings.Contains(mime, "webp") ||
		strings.Contains(mime, "gif") ||
		strings.HasSuffix(name, ".png") ||
		strings.HasSuffix(name, ".webp") ||
		strings.HasSuffix(name, ".gif")
}
