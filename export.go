package psxmc

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/psxtools/psxmc/icon"
)

// IconImages translates every icon frame of the save through its palette
// and returns them in display order.
func (b *DataBlock) IconImages() ([]image.Image, error) {
	images := make([]image.Image, 0, len(b.IconFrames))
	for i, f := range b.IconFrames {
		m, err := icon.Decode(f.Data[:], b.TitleFrame.IconPalette[:])
		if err != nil {
			return nil, fmt.Errorf("icon frame %d: %w", i, err)
		}
		images = append(images, m)
	}
	return images, nil
}

// ExportImages writes each icon frame to dir as a separate .png named after
// the decoded title. A save with more than one frame is additionally
// written as an infinitely looping .gif.
func (b *DataBlock) ExportImages(dir string) error {
	images, err := b.IconImages()
	if err != nil {
		return err
	}

	title := b.TitleFrame.DecodeTitle()

	for i, m := range images {
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("%s_frame%d.png", title, i)), m); err != nil {
			return err
		}
	}

	if len(images) > 1 {
		return writeGIF(filepath.Join(dir, title+".gif"), images)
	}

	return nil
}

func writePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, m)
}

func writeGIF(name string, images []image.Image) error {
	anim := &gif.GIF{
		LoopCount: 0, // loop forever
	}

	q := quantize.MedianCutQuantizer{}
	bounds := image.Rect(0, 0, icon.Width, icon.Height)

	for _, m := range images {
		pm := image.NewPaletted(bounds, q.Quantize(make(color.Palette, 0, icon.PaletteColors), m))
		draw.Draw(pm, bounds, m, bounds.Min, draw.Src)

		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, 0)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, anim)
}
