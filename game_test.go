package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pan-zoom/assets"
	"pan-zoom/canvas"
	"pan-zoom/scene"
)

type stubLoader struct{}

func (stubLoader) Load(path string) (*assets.Texture, error) {
	if strings.Contains(path, "missing") {
		return nil, errors.New("not found")
	}
	return &assets.Texture{Path: path, Width: 10, Height: 10, Channels: 4}, nil
}

const testScene = `
window: {width: 640, height: 480}
textures:
  box: box.png
sprites:
  - texture: box
`

func writeScene(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestGame(t *testing.T) (*Game, string) {
	t.Helper()
	path := writeScene(t, t.TempDir(), testScene)
	cfg, err := scene.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g, err := NewGame(cfg, path, stubLoader{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, path
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)
	if len(g.sprites) != 1 {
		t.Fatalf("sprites = %d, want 1", len(g.sprites))
	}
	if g.sprites[0].World != (canvas.Rect{W: 10, H: 10}) {
		t.Errorf("sprite rect = %v", g.sprites[0].World)
	}
	if g.camera.Zoom() != 2 || g.camera.Offset() != (canvas.Vec2{}) {
		t.Errorf("camera offset %v zoom %f, want origin and 2", g.camera.Offset(), g.camera.Zoom())
	}
	if w, h := g.screenSize(); w != 640 || h != 480 {
		t.Errorf("screen = %dx%d, want 640x480", w, h)
	}
}

func TestNewGameFailsOnBadTexture(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Textures["box"] = "missing.png"
	if _, err := NewGame(cfg, "scene.yaml", stubLoader{}); err == nil {
		t.Error("NewGame succeeded with a texture that cannot load")
	}
}

func TestQuitFinishesTick(t *testing.T) {
	g, _ := newTestGame(t)
	g.Quit()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Quit = %v, want ebiten.Termination", err)
	}
}

func TestZoomButtonsAnchorAtCenter(t *testing.T) {
	g, _ := newTestGame(t)
	center := canvas.Vec2{X: 320, Y: 240}
	before := g.camera.ScreenToWorld(center)

	g.zoomAtCenter(1)
	if g.camera.Zoom() != 4 {
		t.Errorf("Zoom = %f, want 4", g.camera.Zoom())
	}
	if after := g.camera.ScreenToWorld(center); after != before {
		t.Errorf("center world moved from %v to %v", before, after)
	}
}

func TestReloadKeepsCamera(t *testing.T) {
	g, path := newTestGame(t)
	g.camera.Pan(100, 50)
	g.camera.ZoomAt(1, canvas.Vec2{X: 10, Y: 10})
	off, zoom := g.camera.Offset(), g.camera.Zoom()

	writeScene(t, filepath.Dir(path), testScene+"  - texture: box\n    x: 20\n")
	if err := g.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(g.sprites) != 2 {
		t.Errorf("sprites = %d, want 2", len(g.sprites))
	}
	if g.camera.Offset() != off || g.camera.Zoom() != zoom {
		t.Errorf("camera changed by reload: %v %f", g.camera.Offset(), g.camera.Zoom())
	}
}

func TestReloadFailureKeepsSprites(t *testing.T) {
	g, path := newTestGame(t)
	writeScene(t, filepath.Dir(path), "sprites: [{texture: nope}]")

	if err := g.Reload(); err == nil {
		t.Fatal("Reload succeeded with an invalid scene")
	}
	if len(g.sprites) != 1 {
		t.Errorf("sprites = %d, want the previous 1", len(g.sprites))
	}
	if !strings.Contains(g.ui.Debug.Error, "unknown texture") {
		t.Errorf("debug panel = %q", g.ui.Debug.Error)
	}

	writeScene(t, filepath.Dir(path), testScene)
	if err := g.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if g.ui.Debug.Error != "" {
		t.Errorf("debug panel not cleared: %q", g.ui.Debug.Error)
	}
}

func TestHUDText(t *testing.T) {
	g, _ := newTestGame(t)
	got := g.hudText(100, 100)
	for _, want := range []string{"Zoom: 2.00", "Pointer World: (50.0, 50.0)", "Sprites: 1", "idle"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUD %q missing %q", got, want)
		}
	}
}

func TestSaveScreenshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := saveScreenshot(image.NewRGBA(image.Rect(0, 0, 3, 2)), path); err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("screenshot = %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
}

func TestShippedScene(t *testing.T) {
	cfg, err := scene.Load(DefaultScenePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g, err := NewGame(cfg, DefaultScenePath, stubLoader{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	want := []struct {
		name string
		rect canvas.Rect
	}{
		{"perebi", canvas.Rect{X: 0, Y: 0, W: 500, H: 250}},
		{"sashishi", canvas.Rect{X: 350, Y: 250, W: 100, H: 100}},
		{"person", canvas.Rect{X: -300, Y: 500, W: 10, H: 10}},
	}
	if len(g.sprites) != len(want) {
		t.Fatalf("sprites = %d, want %d", len(g.sprites), len(want))
	}
	for i, w := range want {
		if g.sprites[i].Name != w.name || g.sprites[i].World != w.rect {
			t.Errorf("sprites[%d] = %s %v, want %s %v", i, g.sprites[i].Name, g.sprites[i].World, w.name, w.rect)
		}
	}
}

// retainingLoader records the paths a reload asks it to keep.
type retainingLoader struct {
	stubLoader
	kept []string
}

func (l *retainingLoader) Retain(keep []string) int {
	l.kept = append([]string(nil), keep...)
	return 1
}

func TestReloadReleasesDroppedTextures(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, testScene)
	cfg, err := scene.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	loader := &retainingLoader{}
	g, err := NewGame(cfg, path, loader)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	writeScene(t, dir, "textures: {tile: tile.png}\nsprites: [{texture: tile}]\n")
	if err := g.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(loader.kept) != 1 || filepath.Base(loader.kept[0]) != "tile.png" {
		t.Errorf("kept = %v, want only tile.png", loader.kept)
	}

	loader.kept = nil
	writeScene(t, dir, "sprites: [{texture: gone}]")
	if err := g.Reload(); err == nil {
		t.Fatal("Reload succeeded with an unknown texture")
	}
	if loader.kept != nil {
		t.Errorf("failed reload released textures: kept = %v", loader.kept)
	}
}
