package psxmc

import (
	"fmt"
	"io"
)

// InfoBlock is the first block of the card. It holds the card header, the
// directory table describing every save slot, the bad-block table, unused
// padding frames and a trailing write-test frame with the same shape as the
// header.
type InfoBlock struct {
	Header       Header
	DirFrames    []DirectoryFrame
	BrokenFrames []BrokenFrame
	UnusedFrames []Frame
	WriteTest    Header
}

// parseInfoBlock decodes one block of bytes into an InfoBlock, validating
// the checksum of every frame. Offsets accumulate from the frames consumed
// at each stage; any single failure aborts the whole parse.
func parseInfoBlock(b []byte) (*InfoBlock, error) {
	var info InfoBlock

	if err := validateChecksum(b); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if err := decodeRecord(b, &info.Header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	offset := FrameSize
	var err error
	if info.DirFrames, err = loadDirectoryFrames(b[offset:], numSlots); err != nil {
		return nil, err
	}

	offset += len(info.DirFrames) * FrameSize
	if info.BrokenFrames, err = loadBrokenFrames(b[offset:], numBrokenFrames); err != nil {
		return nil, err
	}

	offset += len(info.BrokenFrames) * FrameSize
	if info.UnusedFrames, err = loadFrames(b[offset:], numUnusedFrames); err != nil {
		return nil, fmt.Errorf("unused %w", err)
	}

	offset += len(info.UnusedFrames) * FrameSize
	if err := validateChecksum(b[offset:]); err != nil {
		return nil, fmt.Errorf("write test frame: %w", err)
	}
	if err := decodeRecord(b[offset:], &info.WriteTest); err != nil {
		return nil, fmt.Errorf("write test frame: %w", err)
	}

	return &info, nil
}

// Write serializes the InfoBlock to out, stamping a fresh checksum into
// every frame so field edits made since loading are accounted for. Exactly
// one block of bytes is written.
func (b *InfoBlock) Write(out io.Writer) error {
	write := func(v interface{}) error {
		rec, err := encodeRecord(v)
		if err != nil {
			return err
		}
		if err := updateChecksum(rec); err != nil {
			return err
		}
		_, err = out.Write(rec)
		return err
	}

	if err := write(&b.Header); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	for i := range b.DirFrames {
		if err := write(&b.DirFrames[i]); err != nil {
			return fmt.Errorf("directory frame %d: %w", i, err)
		}
	}

	for i := range b.BrokenFrames {
		if err := write(&b.BrokenFrames[i]); err != nil {
			return fmt.Errorf("broken frame %d: %w", i, err)
		}
	}

	for i := range b.UnusedFrames {
		if err := write(&b.UnusedFrames[i]); err != nil {
			return fmt.Errorf("unused frame %d: %w", i, err)
		}
	}

	if err := write(&b.WriteTest); err != nil {
		return fmt.Errorf("write test frame: %w", err)
	}

	return nil
}
