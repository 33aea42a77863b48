package scene

import (
	"strings"
	"testing"

	"pan-zoom/assets"
)

var layoutTextures = map[string]*assets.Texture{
	"tile":   {Width: 16, Height: 8, Channels: 4},
	"person": {Width: 32, Height: 64, Channels: 3},
}

func TestRunLayout(t *testing.T) {
	src := `
def size(name):
    t = textures[name]
    return t["width"], t["height"]

tw, th = size("tile")
pw, ph = size("person")

sprites = [
    {"texture": "tile", "x": screen_width * 0.5 - 5.0 * tw, "y": 0, "w": 10.0 * tw, "h": 10.0 * th},
    {"name": "hero", "texture": "person", "x": -300, "y": 500, "w": pw, "h": ph},
]
`
	got, err := RunLayout("test.star", src, 800, 600, layoutTextures)
	if err != nil {
		t.Fatalf("RunLayout: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sprites = %d, want 2", len(got))
	}

	want0 := SpriteConfig{Name: "tile", Texture: "tile", X: 320, Y: 0, W: 160, H: 80}
	if got[0] != want0 {
		t.Errorf("sprites[0] = %+v, want %+v", got[0], want0)
	}
	want1 := SpriteConfig{Name: "hero", Texture: "person", X: -300, Y: 500, W: 32, H: 64}
	if got[1] != want1 {
		t.Errorf("sprites[1] = %+v, want %+v", got[1], want1)
	}
}

func TestRunLayoutSeesChannels(t *testing.T) {
	src := `sprites = [{"texture": "person", "x": textures["person"]["channels"], "y": 0, "w": 1, "h": 1}]`
	got, err := RunLayout("channels.star", src, 1, 1, layoutTextures)
	if err != nil {
		t.Fatalf("RunLayout: %v", err)
	}
	if got[0].X != 3 {
		t.Errorf("x = %f, want 3", got[0].X)
	}
}

func TestRunLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"undefined", `x = 1`, "sprites is not defined"},
		{"not list", `sprites = 3`, "want list"},
		{"not dict", `sprites = [1]`, "want dict"},
		{"missing field", `sprites = [{"texture": "tile", "x": 0, "y": 0, "w": 1}]`, `missing "h"`},
		{"bad type", `sprites = [{"texture": "tile", "x": "0", "y": 0, "w": 1, "h": 1}]`, "want number"},
		{"unknown texture", `sprites = [{"texture": "ghost", "x": 0, "y": 0, "w": 1, "h": 1}]`, "unknown texture"},
		{"runtime", `sprites = [1 // 0]`, "division by zero"},
		{"syntax", `sprites = [`, "layout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunLayout("bad.star", tt.src, 800, 600, layoutTextures)
			if err == nil {
				t.Fatal("RunLayout succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
