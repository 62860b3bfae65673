package plot

import (
	"image"

	"golang.org/x/image/draw"

	"gamemath/internal/mathutil"
)

// Downsample shrinks img by factor with premultiplied-alpha-aware CatmullRom filtering.
// This prevents dark halo artifacts around lines drawn on a transparent background.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	b := img.Bounds()
	if factor <= 1 {
		return img
	}
	w, h := mathutil.Max(b.Dx()/factor, 1), mathutil.Max(b.Dy()/factor, 1)

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float32(img.Pix[si+3]) / 255
			premul.Pix[di] = mathutil.RoundAs[uint8](float32(img.Pix[si]) * a)
			premul.Pix[di+1] = mathutil.RoundAs[uint8](float32(img.Pix[si+1]) * a)
			premul.Pix[di+2] = mathutil.RoundAs[uint8](float32(img.Pix[si+2]) * a)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float32(dst.Pix[si+3])
			if a > 1 {
				inv := 255 / a
				result.Pix[di] = clamp8(float32(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float32(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float32(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}

func clamp8(v float32) uint8 {
	return mathutil.RoundAs[uint8](mathutil.Clamp(v, 0, 255))
}
