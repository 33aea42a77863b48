package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pan-zoom/assets"
)

// Sprite is a texture placed at a fixed world-space rectangle.
// The texture is borrowed; its owner is the assets.Loader.
type Sprite struct {
	Name    string
	World   Rect
	Texture *assets.Texture
}

// Target is anything sprites can be drawn onto. *ebiten.Image satisfies it.
type Target interface {
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// DrawSprite projects s through cam and draws its texture stretched over the
// resulting screen rectangle. It returns the rectangle it drew into.
func DrawSprite(dst Target, cam *Camera, s Sprite) Rect {
	r := cam.Project(s.World)
	if s.Texture == nil || s.Texture.Image == nil || s.Texture.Width == 0 || s.Texture.Height == 0 {
		return r
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(s.Texture.Width), r.H/float64(s.Texture.Height))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterNearest
	if cam.Zoom() < 1 {
		op.Filter = ebiten.FilterLinear
	}
	dst.DrawImage(s.Texture.Image, op)
	return r
}

// DrawSprites draws every sprite in slice order; later sprites cover earlier ones.
func DrawSprites(dst Target, cam *Camera, sprites []Sprite) {
	for _, s := range sprites {
		DrawSprite(dst, cam, s)
	}
}
