package xorsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, byte(0x00), Checksum(nil))
	assert.Equal(t, byte(0x07), Checksum([]byte{0x01, 0x02, 0x04}))
	assert.Equal(t, byte(0x00), Checksum([]byte{0xaa, 0xaa}))
}

func TestUpdate(t *testing.T) {
	assert.Equal(t, byte(0xff), Update(0xf0, []byte{0x0f}))
	assert.Equal(t, Checksum([]byte{0x01, 0x02}), Update(Update(0, []byte{0x01}), []byte{0x02}))
}

func TestHash(t *testing.T) {
	h := New()

	assert.Equal(t, Size, h.Size())
	assert.Equal(t, 1, h.BlockSize())

	n, err := h.Write([]byte{0x01, 0x02, 0x04})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x07}, h.Sum(nil))

	h.Reset()
	assert.Equal(t, []byte{0x00}, h.Sum(nil))
}
