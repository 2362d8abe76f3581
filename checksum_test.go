package psxmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcChecksum(t *testing.T) {
	frame := make([]byte, FrameSize)
	assert.Equal(t, byte(0x00), calcChecksum(frame))

	frame[0] = 0xab
	assert.Equal(t, byte(0xab), calcChecksum(frame))

	// The checksum byte itself is never part of the computation
	frame[FrameSize-1] = 0xff
	assert.Equal(t, byte(0xab), calcChecksum(frame))
}

func TestValidateChecksum(t *testing.T) {
	frame := make([]byte, FrameSize)
	frame[0] = 0xab
	frame[FrameSize-1] = 0xab

	assert.NoError(t, validateChecksum(frame))

	frame[FrameSize-1] ^= 0x01
	assert.ErrorIs(t, validateChecksum(frame), ErrBadChecksum)
}

func TestUpdateChecksum(t *testing.T) {
	frame := make([]byte, FrameSize)
	for i := range frame {
		frame[i] = byte(i * 7)
	}

	require.NoError(t, updateChecksum(frame))
	assert.NoError(t, validateChecksum(frame))
	assert.Equal(t, calcChecksum(frame), frame[FrameSize-1])
}
