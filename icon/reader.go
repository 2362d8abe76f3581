package icon

import (
	"errors"
	"image"
)

var (
	errBadPixels  = errors.New("icon: wrong amount of pixel data")
	errBadPalette = errors.New("icon: wrong palette size")
)

func lowerNibble(b byte) byte {
	return b & 0x0f
}

func upperNibble(b byte) byte {
	return b >> 4 & 0x0f
}

// Translate expands one frame of packed 4-bit pixel data into a flat RGBA
// buffer of numPixels * 4 bytes using the given palette. Each 5-bit channel
// is scaled to 8 bits by multiplying by 8, which is what the console
// firmware does, and the alpha channel is always fully opaque.
func Translate(pixels []byte, palette []uint16) ([]byte, error) {
	if len(pixels) != PixelBytes {
		return nil, errBadPixels
	}
	if len(palette) != PaletteColors {
		return nil, errBadPalette
	}

	rgba := make([]byte, 0, numPixels*4)
	for _, b := range pixels {
		// Low nibble is the leftmost pixel of the pair
		for _, i := range []byte{lowerNibble(b), upperNibble(b)} {
			c := palette[i]
			rgba = append(rgba,
				byte(c&0x1f)*8,
				byte(c>>5&0x1f)*8,
				byte(c>>10&0x1f)*8,
				0xff)
		}
	}

	return rgba, nil
}

// Decode translates one frame of packed pixel data and returns it as an
// image.Image.
func Decode(pixels []byte, palette []uint16) (image.Image, error) {
	rgba, err := Translate(pixels, palette)
	if err != nil {
		return nil, err
	}

	m := image.NewRGBA(image.Rect(0, 0, Width, Height))
	copy(m.Pix, rgba)

	return m, nil
}
