package psxmc

import (
	"fmt"
	"io"
)

// DataBlock is one save slot's block: a title frame, one to three icon
// frames and the remaining frames of save payload. The slot metadata lives
// in the corresponding directory frame of the info block, not here.
type DataBlock struct {
	TitleFrame TitleFrame
	IconFrames []Frame
	DataFrames []Frame
}

// parseDataBlock decodes one block of bytes into a DataBlock. The title
// frame ends in palette data rather than a checksum and the payload frames
// are arbitrary save data, so nothing here is checksum validated. The icon
// frame count comes from the display byte already decoded from the same
// block; whatever remains is payload.
func parseDataBlock(b []byte) (*DataBlock, error) {
	var block DataBlock

	if err := decodeRecord(b, &block.TitleFrame); err != nil {
		return nil, fmt.Errorf("title frame: %w", err)
	}

	n := block.TitleFrame.IconFrameCount()
	block.IconFrames = readFrames(b[FrameSize:], n)

	next := FrameSize + n*FrameSize
	block.DataFrames = readFrames(b[next:], (BlockSize-next)/FrameSize)

	return &block, nil
}

// Write serializes the DataBlock to out. The frames are emitted verbatim;
// a block that does not serialize to exactly BlockSize bytes was built with
// the wrong frame counts.
func (b *DataBlock) Write(out io.Writer) error {
	rec, err := encodeRecord(&b.TitleFrame)
	if err != nil {
		return fmt.Errorf("title frame: %w", err)
	}
	if _, err := out.Write(rec); err != nil {
		return err
	}

	total := len(rec)
	for _, f := range b.IconFrames {
		if _, err := out.Write(f.Data[:]); err != nil {
			return err
		}
		total += FrameSize
	}

	for _, f := range b.DataFrames {
		if _, err := out.Write(f.Data[:]); err != nil {
			return err
		}
		total += FrameSize
	}

	if total != BlockSize {
		return fmt.Errorf("data block: serialized to %d bytes, want %d", total, BlockSize)
	}

	return nil
}
