package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxGridLines caps the lines per axis; when zoomed far out the grid is skipped.
const maxGridLines = 400

// GridLines returns the world coordinates of grid lines visible in bounds
// along one axis, or nil when there would be more than maxGridLines.
func GridLines(start, length, size float64) []float64 {
	if size <= 0 || length <= 0 || length/size > maxGridLines {
		return nil
	}
	first := math.Floor(start/size) * size
	// Past 2^53 the step is lost to rounding and the lines would collapse.
	if first+size == first {
		return nil
	}
	n := int(math.Floor((start+length-first)/size)) + 1
	if n <= 0 || n > maxGridLines {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = first + float64(i)*size
	}
	return out
}

// DrawBackgroundGrid renders the world grid and the origin cross for a
// screenWidth x screenHeight screen.
func DrawBackgroundGrid(cam *Camera, screen *ebiten.Image, screenWidth, screenHeight int, gridSize float64, gridColor, originCross color.Color) {
	sw, sh := float64(screenWidth), float64(screenHeight)
	view := cam.VisibleBounds(sw, sh)

	// Vertical lines
	for _, wx := range GridLines(view.X, view.W, gridSize) {
		sx := cam.WorldToScreen(Vec2{X: wx}).X
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(sh), 1, gridColor, false)
	}

	// Horizontal lines
	for _, wy := range GridLines(view.Y, view.H, gridSize) {
		sy := cam.WorldToScreen(Vec2{Y: wy}).Y
		vector.StrokeLine(screen, 0, float32(sy), float32(sw), float32(sy), 1, gridColor, false)
	}

	o := cam.WorldToScreen(Vec2{})
	ox, oy := float32(o.X), float32(o.Y)
	vector.StrokeLine(screen, ox-15, oy, ox+15, oy, 2, originCross, false)
	vector.StrokeLine(screen, ox, oy-15, ox, oy+15, 2, originCross, false)
}
