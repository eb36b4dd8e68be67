package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/Faultbox/gym-scene/internal/engine/texture"
)

// placeholderSource serves a 2x2 checker PNG for files the wrapped source
// cannot find, so a dump exercises the textured path without assets.
type placeholderSource struct {
	next texture.Source
}

func (p placeholderSource) Load(name string) ([]byte, error) {
	if data, err := p.next.Load(name); err == nil {
		return data, nil
	}
	return checkerPNG()
}

func checkerPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	light := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	img.Set(0, 0, light)
	img.Set(1, 1, light)
	img.Set(1, 0, dark)
	img.Set(0, 1, dark)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
