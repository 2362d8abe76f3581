/*
Package icon implements a decoder for PSX memory card save icons.

An icon is a single 16 by 16 image stored in one 128 byte frame; each byte
holds two 4-bit indices into a 16 color palette kept in the owning title
frame, low nibble first. Each palette entry is a packed 15-bit color with
bits 0-4 red, 5-9 green and 10-14 blue; the top bit is unused.
*/
package icon

const (
	// Width and Height of every icon in pixels.
	Width  = 16
	Height = Width

	// PaletteColors is the number of entries in an icon palette.
	PaletteColors = 16

	numPixels = Width * Height

	// PixelBytes is the size of the packed pixel data for one icon.
	PixelBytes = numPixels >> 1
)
