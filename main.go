package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pan-zoom/assets"
	"pan-zoom/scene"
)

func main() {
	log.SetPrefix("pan-zoom: ")

	scenePath := flag.String("scene", DefaultScenePath, "scene file to show")
	watch := flag.Bool("watch", true, "reload sprites when scene files change")
	flag.Parse()

	cfg, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	loader := assets.NewLoader()
	g, err := NewGame(cfg, *scenePath, loader)
	if err != nil {
		loader.Dispose()
		log.Fatal(err)
	}

	var watcher *scene.Watcher
	if *watch {
		watcher, err = scene.NewWatcher(cfg.Dir)
		if err != nil {
			log.Println("watch disabled:", err)
		} else {
			g.SetWatcher(watcher)
		}
	}

	err = ebiten.RunGame(g)

	loader.Dispose()
	if watcher != nil {
		_ = watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
