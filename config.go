package main

import "image/color"

const (
	DefaultScenePath = "scene.yaml"
	ScreenshotPath   = "screenshot.png"
	UIFontPath       = "fonts/Roboto-Regular.ttf"
	UIFontSize       = 14

	HUDMarginX = 10
	HUDMarginY = 10
)

var (
	ColorGrid        = color.RGBA{255, 255, 255, 24}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorHUDText     = color.RGBA{20, 20, 25, 255}
)
