package canvas

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pan-zoom/assets"
)

type drawCall struct {
	img *ebiten.Image
	op  ebiten.DrawImageOptions
}

type recordingTarget struct {
	calls []drawCall
}

func (r *recordingTarget) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	r.calls = append(r.calls, drawCall{img: img, op: *op})
}

func TestDrawSpriteScalesTextureToProjection(t *testing.T) {
	tex := &assets.Texture{Image: ebiten.NewImage(4, 2), Width: 4, Height: 2, Channels: 4}
	cam := NewCamera(Vec2{-10, -10}, 2, DefaultMinZoom, DefaultMaxZoom)
	s := Sprite{Name: "box", World: Rect{0, 0, 40, 10}, Texture: tex}

	var target recordingTarget
	r := DrawSprite(&target, cam, s)
	if r != (Rect{20, 20, 80, 20}) {
		t.Errorf("DrawSprite rect = %v, want (20,20,80,20)", r)
	}
	if len(target.calls) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(target.calls))
	}

	geo := target.calls[0].op.GeoM
	x0, y0 := geo.Apply(0, 0)
	x1, y1 := geo.Apply(4, 2)
	if !approxEqual(x0, 20, epsilon) || !approxEqual(y0, 20, epsilon) {
		t.Errorf("top-left = (%f,%f), want (20,20)", x0, y0)
	}
	if !approxEqual(x1, 100, epsilon) || !approxEqual(y1, 40, epsilon) {
		t.Errorf("bottom-right = (%f,%f), want (100,40)", x1, y1)
	}
}

func TestDrawSpriteWithoutTextureSkipsDraw(t *testing.T) {
	var target recordingTarget
	DrawSprite(&target, NewDefaultCamera(), Sprite{World: Rect{0, 0, 1, 1}})
	if len(target.calls) != 0 {
		t.Errorf("draw calls = %d, want 0", len(target.calls))
	}
}

func TestDrawSpritesKeepsOrder(t *testing.T) {
	a := &assets.Texture{Image: ebiten.NewImage(1, 1), Width: 1, Height: 1}
	b := &assets.Texture{Image: ebiten.NewImage(1, 1), Width: 1, Height: 1}
	sprites := []Sprite{
		{Name: "a", World: Rect{0, 0, 1, 1}, Texture: a},
		{Name: "b", World: Rect{0, 0, 1, 1}, Texture: b},
		{Name: "a2", World: Rect{5, 5, 1, 1}, Texture: a},
	}

	var target recordingTarget
	DrawSprites(&target, NewDefaultCamera(), sprites)
	if len(target.calls) != 3 {
		t.Fatalf("draw calls = %d, want 3", len(target.calls))
	}
	want := []*ebiten.Image{a.Image, b.Image, a.Image}
	for i, c := range target.calls {
		if c.img != want[i] {
			t.Errorf("call %d drew the wrong texture", i)
		}
	}
}
