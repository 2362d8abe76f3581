package psxmc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// FrameSize is the size of a frame, the smallest addressable unit of
	// the card layout.
	FrameSize = 0x80

	// BlockSize is the size of a block, 64 frames. A card is 16 blocks;
	// the first holds the directory, the rest hold one save slot each.
	BlockSize = 0x2000

	numBlocks       = 16
	numSlots        = 15
	numBrokenFrames = 20
	numUnusedFrames = 27
)

// Frame is 128 bytes of data. Typically the final byte is a checksum, but
// several frame types do not follow that convention.
type Frame struct {
	Data [FrameSize]byte
}

// Header identifies the card. The same shape appears again as the trailing
// write-test frame of the info block.
type Header struct {
	ID       [2]byte
	Pad      [125]byte
	Checksum uint8
}

// DirectoryFrame holds the metadata for one save slot: its allocation
// state, size, chain link and filename. There are 15, one per slot.
type DirectoryFrame struct {
	State     uint32
	Filesize  uint32
	NextBlock uint16
	Filename  [21]byte
	Pad       [96]byte
	Checksum  uint8
}

// BrokenFrame marks one known-bad block by number. There are 20.
type BrokenFrame struct {
	BrokenFrame uint32
	Pad         [123]byte
	Checksum    uint8
}

// TitleFrame is the first frame of every save block. It carries the save's
// display name, how many icon frames follow it, and the icon palette. The
// final bytes are palette data so there is no checksum.
type TitleFrame struct {
	ID          [2]byte
	Display     uint8
	BlockNum    uint8
	Title       [64]byte
	Reserved    [28]byte
	IconPalette [16]uint16
}

// IconFrameCount returns the number of icon frames that follow the title
// frame. Only the bottom two bits of the display byte are significant,
// which means out of range raw values fall back to zero rather than being
// rejected.
func (t *TitleFrame) IconFrameCount() int {
	return int(t.Display & 0x03)
}

func decodeRecord(b []byte, v interface{}) error {
	return binary.Read(bytes.NewReader(b[:FrameSize]), binary.LittleEndian, v)
}

func encodeRecord(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := binary.Write(b, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func loadDirectoryFrames(b []byte, n int) ([]DirectoryFrame, error) {
	frames := make([]DirectoryFrame, n)
	for i := 0; i < n; i++ {
		rec := b[i*FrameSize:]
		if err := validateChecksum(rec); err != nil {
			return nil, fmt.Errorf("directory frame %d: %w", i, err)
		}
		if err := decodeRecord(rec, &frames[i]); err != nil {
			return nil, fmt.Errorf("directory frame %d: %w", i, err)
		}
	}
	return frames, nil
}

func loadBrokenFrames(b []byte, n int) ([]BrokenFrame, error) {
	frames := make([]BrokenFrame, n)
	for i := 0; i < n; i++ {
		rec := b[i*FrameSize:]
		if err := validateChecksum(rec); err != nil {
			return nil, fmt.Errorf("broken frame %d: %w", i, err)
		}
		if err := decodeRecord(rec, &frames[i]); err != nil {
			return nil, fmt.Errorf("broken frame %d: %w", i, err)
		}
	}
	return frames, nil
}

// loadFrames reads n consecutive raw frames, validating the checksum of
// each one before advancing. The first mismatch aborts the whole read.
func loadFrames(b []byte, n int) ([]Frame, error) {
	frames := make([]Frame, n)
	for i := 0; i < n; i++ {
		rec := b[i*FrameSize:]
		if err := validateChecksum(rec); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		copy(frames[i].Data[:], rec)
	}
	return frames, nil
}

// readFrames reads n consecutive raw frames without validating checksums.
// Save data frames carry arbitrary payload in all 128 bytes.
func readFrames(b []byte, n int) []Frame {
	frames := make([]Frame, n)
	for i := 0; i < n; i++ {
		copy(frames[i].Data[:], b[i*FrameSize:])
	}
	return frames
}
