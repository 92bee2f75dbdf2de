package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Info describes an embedded image without decoding its pixels.
type Info struct {
	Format string
	Width  int
	Height int
}

func (i Info) String() string {
	return fmt.Sprintf("%s %dx%d", i.Format, i.Width, i.Height)
}

type codec struct {
	name         string
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}

var (
	pngCodec  = codec{"png", png.Decode, png.DecodeConfig}
	jpegCodec = codec{"jpeg", jpeg.Decode, jpeg.DecodeConfig}
	bmpCodec  = codec{"bmp", bmp.Decode, bmp.DecodeConfig}
	webpCodec = codec{"webp", webp.Decode, webp.DecodeConfig}
	tgaCodec  = codec{"tga", tga.Decode, tga.DecodeConfig}
)

// detect picks a codec by signature. TGA has no signature, so it is the
// fallback for anything unrecognized.
func detect(data []byte) codec {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return pngCodec
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return jpegCodec
	case bytes.HasPrefix(data, []byte("BM")):
		return bmpCodec
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return webpCodec
	default:
		return tgaCodec
	}
}

// Sniff reads only the image header of an embedded texture.
func Sniff(data []byte) (Info, error) {
	c := detect(data)
	cfg, err := c.decodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("texture: %s header: %w", c.name, err)
	}
	return Info{Format: c.name, Width: cfg.Width, Height: cfg.Height}, nil
}

// Decode decodes an embedded texture and returns an NRGBA image.
func Decode(data []byte) (*image.NRGBA, string, error) {
	c := detect(data)
	img, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, c.name, fmt.Errorf("texture: decode %s: %w", c.name, err)
	}
	return toNRGBA(img), c.name, nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel, draw straight across.
		draw.Draw(dst, b, src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}
