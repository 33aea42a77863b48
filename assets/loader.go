// Package assets decodes image files into drawable ebiten textures.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	// Registered decoders. The stdlib formats cover the common cases, the
	// x/image ones let scenes reference bmp, tiff and webp files directly.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
)

// Info describes a decoded image before it is uploaded.
type Info struct {
	Width    int
	Height   int
	Channels int
	Format   string
}

// Texture is a decoded image uploaded as an ebiten image.
type Texture struct {
	Path     string
	Image    *ebiten.Image
	Width    int
	Height   int
	Channels int
}

// Decode reads a single image from r.
func Decode(r io.Reader) (image.Image, Info, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, Info{}, err
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, Info{}, fmt.Errorf("decoded %s image is empty", format)
	}
	return img, Info{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channelCount(img),
		Format:   format,
	}, nil
}

// channelCount reports how many channels the source data carried: 1 for
// gray, 3 for opaque color, 4 when an alpha channel is present.
func channelCount(img image.Image) int {
	m := img.ColorModel()
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	return 4
}

// Loader uploads textures and owns them until Dispose.
type Loader struct {
	cache map[string]*Texture
	// order keeps acquisition order so Dispose can release in reverse.
	order []string
}

func NewLoader() *Loader {
	return &Loader{cache: make(map[string]*Texture)}
}

// Load returns the texture for path, decoding and uploading it on first use.
func (l *Loader) Load(path string) (*Texture, error) {
	key := filepath.Clean(path)
	if tex, ok := l.cache[key]; ok {
		return tex, nil
	}

	f, err := os.Open(key)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", key, err)
	}
	defer f.Close()

	img, info, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", key, err)
	}

	tex := &Texture{
		Path:     key,
		Image:    ebiten.NewImageFromImage(img),
		Width:    info.Width,
		Height:   info.Height,
		Channels: info.Channels,
	}
	l.cache[key] = tex
	l.order = append(l.order, key)
	return tex, nil
}

// Len returns the number of cached textures.
func (l *Loader) Len() int { return len(l.cache) }

// Retain deallocates every cached texture whose path is not in keep and
// returns how many were released. Kept textures stay in acquisition order.
func (l *Loader) Retain(keep []string) int {
	want := make(map[string]bool, len(keep))
	for _, p := range keep {
		want[filepath.Clean(p)] = true
	}
	released := 0
	order := l.order[:0]
	for _, key := range l.order {
		if want[key] {
			order = append(order, key)
			continue
		}
		if tex := l.cache[key]; tex != nil && tex.Image != nil {
			tex.Image.Deallocate()
		}
		delete(l.cache, key)
		released++
	}
	l.order = order
	return released
}

// Dispose deallocates every texture, newest first, and empties the cache.
func (l *Loader) Dispose() {
	for i := len(l.order) - 1; i >= 0; i-- {
		if tex := l.cache[l.order[i]]; tex != nil && tex.Image != nil {
			tex.Image.Deallocate()
		}
	}
	l.cache = make(map[string]*Texture)
	l.order = nil
}
