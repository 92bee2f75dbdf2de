package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail shrinks img so its longer side is at most maxSize, keeping the
// aspect ratio. Scaling runs on premultiplied pixels so transparent edges
// don't pick up dark halos. maxSize <= 0 or a smaller image returns img.
func Thumbnail(img *image.NRGBA, maxSize int) *image.NRGBA {
	b := img.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return img
	}

	w, h := maxSize, maxSize
	if b.Dx() > b.Dy() {
		h = max(1, b.Dy()*maxSize/b.Dx())
	} else {
		w = max(1, b.Dx()*maxSize/b.Dy())
	}

	src := premultiplied(img)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return straight(dst)
}

// premultiplied scales each color channel by its pixel's alpha.
func premultiplied(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):][:4*b.Dx()]
		dst := out.Pix[out.PixOffset(b.Min.X, y):][:4*b.Dx()]
		for i := 0; i < len(src); i += 4 {
			a := float64(src[i+3]) / 255
			for c := 0; c < 3; c++ {
				dst[i+c] = uint8(float64(src[i+c])*a + 0.5)
			}
			dst[i+3] = src[i+3]
		}
	}
	return out
}

// straight undoes premultiplied. Nearly transparent pixels stay black.
func straight(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):][:4*b.Dx()]
		dst := out.Pix[out.PixOffset(b.Min.X, y):][:4*b.Dx()]
		for i := 0; i < len(src); i += 4 {
			dst[i+3] = src[i+3]
			if src[i+3] <= 1 {
				continue
			}
			scale := 255 / float64(src[i+3])
			for c := 0; c < 3; c++ {
				dst[i+c] = clamp8(float64(src[i+c]) * scale)
			}
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
