// Package texture decodes image files and uploads them as GL textures.
package texture

import "github.com/go-gl/gl/v3.3-core/gl"

// Options controls how an image file becomes a texture.
type Options struct {
	// FlipVertically reorders the rows so the image is right side up under
	// GL's bottom-left texture origin.
	FlipVertically bool
}

// Texture owns one GL texture object. The zero value binds texture zero,
// which samples black; demos keep rendering with it when decoding fails.
type Texture struct {
	id     uint32
	width  int
	height int
}

// Load decodes a PNG or JPEG file and uploads it with repeat wrapping,
// linear filtering and mipmaps. On a decode failure the returned Texture is
// the usable zero texture alongside the error, so callers can log and keep
// going.
func Load(path string, opts Options) (*Texture, error) {
	img, err := decode(path, opts.FlipVertically)
	if err != nil {
		return &Texture{}, err
	}

	t := &Texture{width: img.Bounds().Dx(), height: img.Bounds().Dy()}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(t.width), int32(t.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Unbind clears the 2D texture binding on the active unit.
func Unbind() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Close releases the GL texture.
func (t *Texture) Close() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
