package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"pan-zoom/canvas"
	"pan-zoom/input"
	"pan-zoom/scene"
	"pan-zoom/ui"
)

type Game struct {
	scenePath string
	cfg       *scene.Config
	loader    scene.TextureLoader
	watcher   *scene.Watcher

	camera  *canvas.Camera
	sprites []canvas.Sprite

	screenWidth  int
	screenHeight int

	// Sub-systems
	poller *input.Poller
	input  *input.Controller
	ui     *ui.UISystem
	font   font.Face

	running             bool
	screenshotRequested bool
}

// NewGame builds the scene's sprites and the camera. Any texture or layout
// failure is returned so the caller can stop before the loop starts.
func NewGame(cfg *scene.Config, scenePath string, loader scene.TextureLoader) (*Game, error) {
	panButton, err := cfg.Camera.Button()
	if err != nil {
		return nil, err
	}

	sprites, err := scene.Build(cfg, loader, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scenePath:    scenePath,
		cfg:          cfg,
		loader:       loader,
		sprites:      sprites,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		running:      true,
		camera: canvas.NewCamera(
			canvas.Vec2{X: cfg.Camera.X, Y: cfg.Camera.Y},
			cfg.Camera.Zoom, cfg.Camera.MinZoom, cfg.Camera.MaxZoom,
		),
		font: LoadUIFont(UIFontPath, UIFontSize),
	}

	g.poller = input.NewPoller(g.screenSize)
	g.input = input.NewController(g, g.camera, panButton)
	g.ui = ui.NewUISystem(
		func() font.Face { return g.font },
		g.screenSize,
		func() { g.zoomAtCenter(1) },
		func() { g.zoomAtCenter(-1) },
		DrawTextLines,
	)
	return g, nil
}

// SetWatcher enables hot reload of the scene from w.
func (g *Game) SetWatcher(w *scene.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}

	g.pollWatcher()

	// Delegate to sub-systems
	g.input.Handle(g.poller.Poll())
	g.ui.Update()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		log.Println("watch:", err)
	}
	if changed {
		g.Reload()
	}
}

// Reload rebuilds the sprites from the scene file. On failure the current
// sprites stay and the error is shown in the debug panel. The camera is
// never touched.
func (g *Game) Reload() error {
	cfg, err := scene.Load(g.scenePath)
	if err != nil {
		return g.reloadFailed(err)
	}
	sprites, err := scene.Build(cfg, g.loader, g.cfg.Window.Width, g.cfg.Window.Height)
	if err != nil {
		return g.reloadFailed(err)
	}

	g.cfg.Background = cfg.Background
	g.cfg.Grid = cfg.Grid
	g.cfg.Textures = cfg.Textures
	g.cfg.Sprites = cfg.Sprites
	g.cfg.Layout = cfg.Layout
	g.sprites = sprites
	g.releaseUnused(cfg)
	g.ui.Debug.Clear()
	log.Printf("reloaded %s: %d sprites", g.scenePath, len(sprites))
	return nil
}

// textureReleaser is implemented by loaders that can free textures a
// reloaded scene no longer names.
type textureReleaser interface {
	Retain(keep []string) int
}

func (g *Game) releaseUnused(cfg *scene.Config) {
	r, ok := g.loader.(textureReleaser)
	if !ok {
		return
	}
	keep := make([]string, 0, len(cfg.Textures))
	for _, p := range cfg.Textures {
		keep = append(keep, cfg.Resolve(p))
	}
	if n := r.Retain(keep); n > 0 {
		log.Printf("released %d unused textures", n)
	}
}

func (g *Game) reloadFailed(err error) error {
	err = fmt.Errorf("reload: %w", err)
	log.Println(err)
	g.ui.Debug.SetError(err.Error())
	return err
}

func (g *Game) zoomAtCenter(delta float64) {
	center := canvas.Vec2{X: float64(g.screenWidth) / 2, Y: float64(g.screenHeight) / 2}
	g.camera.ZoomAt(delta, center)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.RGBA())

	if g.cfg.Grid.Enabled {
		canvas.DrawBackgroundGrid(g.camera, screen, g.screenWidth, g.screenHeight, g.cfg.Grid.Size, ColorGrid, ColorOriginCross)
	}

	canvas.DrawSprites(screen, g.camera, g.sprites)

	mx, my := ebiten.CursorPosition()
	DrawTextLines(screen, g.font, g.hudText(mx, my), HUDMarginX, HUDMarginY, ColorHUDText)

	g.ui.Draw(screen)

	if g.screenshotRequested {
		g.screenshotRequested = false
		if err := saveScreenshot(screen, ScreenshotPath); err != nil {
			log.Println("screenshot error:", err)
		} else {
			log.Println("Screenshot saved as", ScreenshotPath)
		}
	}
}

func (g *Game) hudText(mx, my int) string {
	off := g.camera.Offset()
	w := g.camera.ScreenToWorld(canvas.Vec2{X: float64(mx), Y: float64(my)})
	return fmt.Sprintf(
		"Offset: (%.1f, %.1f) Zoom: %.2f\n"+
			"Pointer World: (%.1f, %.1f)\n"+
			"Sprites: %d  Drag: %s\n"+
			"Wheel/+/-: zoom  F12: screenshot  Esc: quit",
		off.X, off.Y, g.camera.Zoom(),
		w.X, w.Y,
		len(g.sprites), g.input.State(),
	)
}

func saveScreenshot(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) screenSize() (int, int) {
	return g.screenWidth, g.screenHeight
}

// --- input.Host ---

func (g *Game) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (g *Game) IsMouseOver(x, y int) bool {
	return g.ui.IsMouseOver(x, y)
}

func (g *Game) Quit() {
	g.running = false
}

func (g *Game) Resize(width, height int) {
	log.Printf("window resized to %dx%d", width, height)
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}
