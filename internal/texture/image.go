package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// decode reads a PNG or JPEG file into tightly packed NRGBA pixels,
// optionally flipping the rows so the first row is the bottom of the image
// (GL's texture origin).
func decode(path string, flip bool) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	nrgba := image.NewNRGBA(src.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), src, src.Bounds().Min, draw.Src)

	if flip {
		flipVertically(nrgba)
	}
	return nrgba, nil
}

func flipVertically(img *image.NRGBA) {
	h := img.Bounds().Dy()
	tmp := make([]byte, img.Stride)

	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
