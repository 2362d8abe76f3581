package psxmc

import (
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psxtools/psxmc/icon"
)

func TestIconImages(t *testing.T) {
	block := newDataBlock("WILD ARMS", 2)

	images, err := block.IconImages()
	require.NoError(t, err)
	require.Len(t, images, 2)

	for _, m := range images {
		assert.Equal(t, image.Rect(0, 0, icon.Width, icon.Height), m.Bounds())
	}
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()

	block := newDataBlock("WILD ARMS", 2)
	require.NoError(t, block.ExportImages(dir))

	for _, name := range []string{"WILD ARMS_frame0.png", "WILD ARMS_frame1.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)

		m, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, icon.Width, icon.Height), m.Bounds())
	}

	f, err := os.Open(filepath.Join(dir, "WILD ARMS.gif"))
	require.NoError(t, err)
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 2)
	assert.Equal(t, 0, anim.LoopCount, "animation loops forever")
}

func TestExportImagesSingleFrame(t *testing.T) {
	dir := t.TempDir()

	block := newDataBlock("TEST", 1)
	require.NoError(t, block.ExportImages(dir))

	_, err := os.Stat(filepath.Join(dir, "TEST_frame0.png"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "TEST.gif"))
	assert.True(t, os.IsNotExist(err), "no animation for a single frame")
}
