package psxmc

import (
	"errors"
	"fmt"

	"github.com/psxtools/psxmc/xorsum"
)

// ErrBadChecksum is returned when a frame's trailing checksum byte does not
// match the checksum computed over the rest of the frame.
var ErrBadChecksum = errors.New("bad checksum")

func calcChecksum(d []byte) byte {
	return xorsum.Checksum(d[:FrameSize-1])
}

func validateChecksum(d []byte) error {
	if c := calcChecksum(d); c != d[FrameSize-1] {
		return fmt.Errorf("computed %#02x, stored %#02x: %w", c, d[FrameSize-1], ErrBadChecksum)
	}
	return nil
}

// updateChecksum stamps the checksum into the final byte of the frame and
// verifies the result. It is invoked on every serialize path so callers
// never manage checksums after editing fields.
func updateChecksum(d []byte) error {
	d[FrameSize-1] = calcChecksum(d)
	return validateChecksum(d)
}
