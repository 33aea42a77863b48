package canvas

import "math"

const (
	DefaultZoom    = 2.0
	DefaultMinZoom = 0.01
	DefaultMaxZoom = 512.0

	zoomInFactor  = 2.0
	zoomOutFactor = 0.5
)

// Camera holds the view into the world: the world point mapped to the screen
// origin and the number of screen pixels per world unit.
//
// The offset and zoom only change through ZoomAt and Pan.
type Camera struct {
	offset Vec2
	zoom   float64

	minZoom float64
	maxZoom float64
}

// NewCamera returns a camera at offset with the given zoom, clamped to
// [minZoom, maxZoom]. Non-positive limits fall back to the defaults.
func NewCamera(offset Vec2, zoom, minZoom, maxZoom float64) *Camera {
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom <= 0 {
		maxZoom = DefaultMaxZoom
	}
	if maxZoom < minZoom {
		minZoom, maxZoom = maxZoom, minZoom
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Camera{
		offset:  offset,
		zoom:    clamp(zoom, minZoom, maxZoom),
		minZoom: minZoom,
		maxZoom: maxZoom,
	}
}

// NewDefaultCamera returns a camera at the origin with zoom 2 in [0.01, 512].
func NewDefaultCamera() *Camera {
	return NewCamera(Vec2{}, DefaultZoom, DefaultMinZoom, DefaultMaxZoom)
}

// Offset returns the world point currently mapped to the screen origin.
func (c *Camera) Offset() Vec2 { return c.offset }

// Zoom returns the current scale in screen pixels per world unit.
func (c *Camera) Zoom() float64 { return c.zoom }

// ZoomLimits returns the clamp range for Zoom.
func (c *Camera) ZoomLimits() (lo, hi float64) { return c.minZoom, c.maxZoom }

// WorldToScreen converts a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.offset).Scale(c.zoom)
}

// ScreenToWorld converts a screen-space point to world coordinates.
// It is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{p.X/c.zoom + c.offset.X, p.Y/c.zoom + c.offset.Y}
}

// ZoomAt applies one zoom step keeping the world point under pointer fixed on
// screen. A positive delta doubles the zoom, a negative one halves it, and
// zero does nothing. It reports whether a step was applied.
func (c *Camera) ZoomAt(delta float64, pointer Vec2) bool {
	if delta == 0 || math.IsNaN(delta) {
		return false
	}

	before := c.ScreenToWorld(pointer)

	factor := zoomOutFactor
	if delta > 0 {
		factor = zoomInFactor
	}
	// Compensation below must see the clamped zoom, not the raw product.
	c.zoom = clamp(c.zoom*factor, c.minZoom, c.maxZoom)

	after := c.ScreenToWorld(pointer)
	c.offset = c.offset.Sub(after.Sub(before))
	return true
}

// Pan moves the view by a screen-space delta. The delta is divided by the zoom
// so a drag covers the same on-screen distance at any scale.
func (c *Camera) Pan(dx, dy float64) {
	c.offset.X -= dx / c.zoom
	c.offset.Y -= dy / c.zoom
}

// Project maps a world rectangle to its screen rectangle. The position goes
// through WorldToScreen; the size is only scaled.
func (c *Camera) Project(r Rect) Rect {
	p := c.WorldToScreen(r.Pos())
	return Rect{X: p.X, Y: p.Y, W: r.W * c.zoom, H: r.H * c.zoom}
}

// VisibleBounds returns the world rectangle covered by a w x h screen.
func (c *Camera) VisibleBounds(w, h float64) Rect {
	tl := c.ScreenToWorld(Vec2{})
	return Rect{X: tl.X, Y: tl.Y, W: w / c.zoom, H: h / c.zoom}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
