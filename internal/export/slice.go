package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"voxmesh/internal/volume"
)

const sliceCellPx = 8

// WriteSlicePNG renders one horizontal XZ cross-section of the volume as a
// PNG: grayscale by density, solid cells (>= surface level, the culled-face
// convention) tinted green, labeled with the slice height.
func WriteSlicePNG(w io.Writer, vol *volume.Volume, y int) error {
	if y < 0 || y >= vol.Height {
		return fmt.Errorf("slice height %d out of range 0..%d", y, vol.Height-1)
	}

	img := image.NewRGBA(image.Rect(0, 0, vol.Width*sliceCellPx, vol.Depth*sliceCellPx+16))
	for x := 0; x < vol.Width; x++ {
		for z := 0; z < vol.Depth; z++ {
			d := vol.At(x, y, z)
			c := cellColor(d, vol.SurfaceLevel)
			for px := 0; px < sliceCellPx; px++ {
				for pz := 0; pz < sliceCellPx; pz++ {
					img.Set(x*sliceCellPx+px, z*sliceCellPx+pz, c)
				}
			}
		}
	}

	label := fmt.Sprintf("y=%d level=%g", y, vol.SurfaceLevel)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, vol.Depth*sliceCellPx+12),
	}
	drawer.DrawString(label)

	return png.Encode(w, img)
}

// cellColor maps density to gray, clamped to [level-1, level+1], with solid
// cells tinted.
func cellColor(d, level float64) color.RGBA {
	t := (d - level + 1) / 2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	g := uint8(t * 255)
	if d >= level {
		return color.RGBA{R: g / 2, G: g, B: g / 2, A: 255}
	}
	return color.RGBA{R: g, G: g, B: g, A: 255}
}
