package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice implements Device with OpenGL 4.1. All calls must happen on the
// thread owning the GL context.
type GLDevice struct{}

// Upload creates a repeat-wrapped, linearly filtered, mipmapped 2D texture.
func (GLDevice) Upload(img *Image) (uint32, error) {
	var internal int32
	var format uint32
	switch img.Channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("cannot upload %d-channel image", img.Channels)
	}
	if len(img.Pixels) == 0 {
		return 0, fmt.Errorf("empty image")
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for most widths
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID, nil
}

// Bind binds handle to the given texture unit.
func (GLDevice) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete frees the texture object.
func (GLDevice) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
