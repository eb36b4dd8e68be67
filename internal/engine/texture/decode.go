// Package texture provides image decoding and the tag-addressed texture
// registry that feeds texture units to the scene shader.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxTextureSize bounds either image dimension. Headers declaring more are
// rejected before any pixel buffer is allocated.
const MaxTextureSize = 16384

// ErrImageSize is returned for images whose header declares a zero or
// oversized dimension.
var ErrImageSize = errors.New("texture: image size out of range")

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxTextureSize || h > MaxTextureSize {
		return fmt.Errorf("%w: %dx%d (max %d)", ErrImageSize, w, h, MaxTextureSize)
	}
	return nil
}

// Image is decoded pixel data ready for upload: rows are tightly packed,
// Channels bytes per pixel, non-premultiplied.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// FlipVertically stores the bottom image row first, matching GL's
	// texture coordinate origin.
	FlipVertically bool
	// Format forces a decoder ("tga"). Empty means sniff the data.
	Format string
}

// FormatFromPath returns the Format hint for formats that cannot be sniffed
// from their header.
func FormatFromPath(p string) string {
	if strings.EqualFold(path.Ext(p), ".tga") {
		return "tga"
	}
	return ""
}

// Decode decodes image bytes. The channel count follows the source image:
// 1 for grayscale, 3 for opaque color, 4 for color with alpha.
func Decode(data []byte, opts DecodeOptions) (*Image, error) {
	if opts.Format == "tga" {
		return decodeTGA(data, opts.FlipVertically)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromImage(img, opts.FlipVertically), nil
}

// FromImage converts an image.Image into packed pixels.
func FromImage(img image.Image, flip bool) *Image {
	channels := channelCount(img)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := &Image{
		Pixels:   make([]byte, w*h*channels),
		Width:    w,
		Height:   h,
		Channels: channels,
	}

	for y := 0; y < h; y++ {
		row := y
		if flip {
			row = h - 1 - y
		}
		offset := row * w * channels
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			px := out.Pixels[offset+x*channels:]
			switch channels {
			case 1:
				px[0] = c.R
			case 3:
				px[0], px[1], px[2] = c.R, c.G, c.B
			default:
				px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			}
		}
	}
	return out
}

func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// decodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA
// data, the two variants texture tools commonly write.
func decodeTGA(data []byte, flip bool) (*Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("tga: data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("tga: data truncated")
	}

	channels := bpp / 8
	src := data[offset:]
	if imageType == tgaTypeRLE {
		var err error
		if src, err = expandTGARLE(src, width*height, channels); err != nil {
			return nil, err
		}
	}
	if len(src) < width*height*channels {
		return nil, fmt.Errorf("tga: pixel data truncated")
	}

	// Stored rows run bottom-up unless descriptor bit 5 is set. GL wants
	// bottom-up, so a flipped decode keeps bottom-up storage.
	bottomUp := descriptor&0x20 == 0
	out := &Image{
		Pixels:   make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
	for y := 0; y < height; y++ {
		dst := y
		if bottomUp != flip {
			dst = height - 1 - y
		}
		for x := 0; x < width; x++ {
			i := (y*width + x) * channels
			o := (dst*width + x) * channels
			// BGR(A) -> RGB(A)
			out.Pixels[o] = src[i+2]
			out.Pixels[o+1] = src[i+1]
			out.Pixels[o+2] = src[i]
			if channels == 4 {
				out.Pixels[o+3] = src[i+3]
			}
		}
	}
	return out, nil
}

// expandTGARLE unpacks RLE packets into raw BGR(A) pixels.
func expandTGARLE(src []byte, pixelCount, channels int) ([]byte, error) {
	out := make([]byte, 0, pixelCount*channels)
	i := 0
	for len(out) < pixelCount*channels {
		if i >= len(src) {
			return nil, fmt.Errorf("tga: rle data truncated")
		}
		packet := src[i]
		i++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+channels > len(src) {
				return nil, fmt.Errorf("tga: rle data truncated")
			}
			for n := 0; n < count; n++ {
				out = append(out, src[i:i+channels]...)
			}
			i += channels
		} else {
			if i+count*channels > len(src) {
				return nil, fmt.Errorf("tga: rle data truncated")
			}
			out = append(out, src[i:i+count*channels]...)
			i += count * channels
		}
	}
	return out[:pixelCount*channels], nil
}

// TGA image type constants.
const (
	tgaTypeUncompressed = 2
	tgaTypeRLE          = 10
)
