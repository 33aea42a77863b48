// Package scene describes what the viewer shows: window settings, the
// initial camera, the textures and where their sprites sit in the world.
package scene

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

type CameraConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Zoom      float64 `yaml:"zoom"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	PanButton string  `yaml:"pan_button"`
}

// Button maps PanButton to an ebiten mouse button.
func (c CameraConfig) Button() (ebiten.MouseButton, error) {
	switch strings.ToLower(c.PanButton) {
	case "", "left":
		return ebiten.MouseButtonLeft, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	}
	return 0, fmt.Errorf("unknown pan_button %q", c.PanButton)
}

type GridConfig struct {
	Enabled bool    `yaml:"enabled"`
	Size    float64 `yaml:"size"`
}

// SpriteConfig places one texture in the world. W and H win over the scale
// factors, which multiply the texture's pixel size and default to 1.
type SpriteConfig struct {
	Name    string  `yaml:"name"`
	Texture string  `yaml:"texture"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	ScaleW  float64 `yaml:"scale_w"`
	ScaleH  float64 `yaml:"scale_h"`
}

type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Background ColorConfig       `yaml:"background"`
	Camera     CameraConfig      `yaml:"camera"`
	Grid       GridConfig        `yaml:"grid"`
	Textures   map[string]string `yaml:"textures"`
	Layout     string            `yaml:"layout"`
	Sprites    []SpriteConfig    `yaml:"sprites"`

	// Dir is the directory relative paths resolve against.
	Dir string `yaml:"-"`
}

// DefaultConfig returns the settings used for anything a scene file omits.
func DefaultConfig() *Config {
	return &Config{
		Window:     WindowConfig{Title: "pan-zoom", Width: 800, Height: 600},
		Background: ColorConfig{R: 128, G: 178, B: 168, A: 255},
		Camera: CameraConfig{
			Zoom:      2.0,
			MinZoom:   0.01,
			MaxZoom:   512.0,
			PanButton: "left",
		},
		Grid:     GridConfig{Enabled: true, Size: 100},
		Textures: map[string]string{},
		Dir:      ".",
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes scene YAML over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if cfg.Textures == nil {
		cfg.Textures = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	cam := c.Camera
	if cam.MinZoom <= 0 {
		return fmt.Errorf("min_zoom %g must be positive", cam.MinZoom)
	}
	if cam.MinZoom > cam.MaxZoom {
		return fmt.Errorf("min_zoom %g exceeds max_zoom %g", cam.MinZoom, cam.MaxZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		return fmt.Errorf("zoom %g outside [%g, %g]", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
	if _, err := cam.Button(); err != nil {
		return err
	}
	if c.Grid.Enabled && c.Grid.Size <= 0 {
		return fmt.Errorf("grid size %g must be positive", c.Grid.Size)
	}
	for i, s := range c.Sprites {
		if _, ok := c.Textures[s.Texture]; !ok {
			return fmt.Errorf("sprite %d (%s): unknown texture %q", i, s.Name, s.Texture)
		}
	}
	return nil
}

// Resolve returns p relative to the scene directory unless it is absolute.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
