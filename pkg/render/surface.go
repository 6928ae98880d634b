// pkg/render/surface.go
package render

import "image/color"

// Surface is a 2D raster the star field paints into. Coordinates are
// device pixels. Colours are straight (non-premultiplied) alpha.
type Surface interface {
	// Resize reallocates the backing store; contents are discarded.
	Resize(width, height int)
	Clear()
	FillCircle(x, y, radius float32, c color.NRGBA)
	// Glow paints a soft halo of the given blur radius around a disc.
	Glow(x, y, radius, blur float32, c color.NRGBA)
	// Release frees the backing store. The surface may be resized again.
	Release()
}

// Framer is implemented by surfaces that need a begin/end pair around each
// frame, such as raylib render textures.
type Framer interface {
	BeginFrame()
	EndFrame()
}
