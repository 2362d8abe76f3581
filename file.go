package psxmc

import (
	"bufio"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// OpenFile opens and parses the memory card image at name. Gzip compressed
// dumps are detected by their magic bytes and decompressed transparently.
func OpenFile(name string) (*MemCard, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	if magic, err := r.Peek(len(gzipMagic)); err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()

		return Load(z)
	}

	return Load(r)
}

// WriteFile serializes the card to the file at name.
func (m *MemCard) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
