package scene

import (
	"fmt"
	"sort"

	"pan-zoom/assets"
	"pan-zoom/canvas"
)

// TextureLoader is satisfied by *assets.Loader.
type TextureLoader interface {
	Load(path string) (*assets.Texture, error)
}

// Build loads every texture the scene names and returns its sprites in draw
// order: sprites from the scene file first, then those from the layout script.
// Any load or layout failure is returned; nothing is drawn from a partial scene.
func Build(cfg *Config, loader TextureLoader, screenW, screenH int) ([]canvas.Sprite, error) {
	names := make([]string, 0, len(cfg.Textures))
	for name := range cfg.Textures {
		names = append(names, name)
	}
	sort.Strings(names)

	textures := make(map[string]*assets.Texture, len(names))
	for _, name := range names {
		tex, err := loader.Load(cfg.Resolve(cfg.Textures[name]))
		if err != nil {
			return nil, fmt.Errorf("texture %s: %w", name, err)
		}
		textures[name] = tex
	}

	specs := append([]SpriteConfig(nil), cfg.Sprites...)
	if cfg.Layout != "" {
		laid, err := RunLayout(cfg.Resolve(cfg.Layout), nil, screenW, screenH, textures)
		if err != nil {
			return nil, err
		}
		specs = append(specs, laid...)
	}

	sprites := make([]canvas.Sprite, 0, len(specs))
	for i, s := range specs {
		tex, ok := textures[s.Texture]
		if !ok {
			return nil, fmt.Errorf("sprite %d (%s): unknown texture %q", i, s.Name, s.Texture)
		}
		sprites = append(sprites, canvas.Sprite{
			Name:    spriteName(s),
			World:   worldRect(s, tex),
			Texture: tex,
		})
	}
	return sprites, nil
}

func spriteName(s SpriteConfig) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Texture
}

func worldRect(s SpriteConfig, tex *assets.Texture) canvas.Rect {
	w, h := s.W, s.H
	if w == 0 {
		w = scaleOrOne(s.ScaleW) * float64(tex.Width)
	}
	if h == 0 {
		h = scaleOrOne(s.ScaleH) * float64(tex.Height)
	}
	return canvas.Rect{X: s.X, Y: s.Y, W: w, H: h}
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
