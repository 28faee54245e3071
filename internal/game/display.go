package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageDisplay is the window's image widget: it copies each rendered
// bitmap into a GPU image that Draw puts on screen.
type imageDisplay struct {
	img    *ebiten.Image
	latest *image.RGBA
}

// SetImage implements clockface.Display.
func (d *imageDisplay) SetImage(img *image.RGBA) {
	d.latest = img

	b := img.Bounds()
	if b.Empty() {
		if d.img != nil {
			d.img.Deallocate()
			d.img = nil
		}
		return
	}
	if d.img == nil || d.img.Bounds().Size() != b.Size() {
		if d.img != nil {
			d.img.Deallocate()
		}
		d.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	// Both sides are premultiplied RGBA with a tight stride.
	d.img.WritePixels(img.Pix)
}
