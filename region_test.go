package psxmc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionInfo(t *testing.T) {
	tests := []struct {
		filename string
		region   Region
		license  License
		name     string
	}{
		{"BASCUS-94163WILDARMS", America, Sony, "WILDARMS"},
		{"BISLPS-01330SUIKODEN", Japan, Licensed, "SUIKODEN"},
		{"BESLES-00527RESIDENT", Europe, Licensed, "RESIDENT"},
		{"XXXXXX-00000UNKNOWNS", RegionUnknown, LicenseUnknown, "UNKNOWNS"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			var frame DirectoryFrame
			copy(frame.Filename[:], tt.filename)

			info, err := frame.RegionInfo()
			require.NoError(t, err)
			assert.Equal(t, tt.region, info.Region)
			assert.Equal(t, tt.license, info.License)
			assert.Equal(t, tt.name, strings.TrimRight(info.Name, "\x00"))
		})
	}
}

func TestRegionInfoInvalidText(t *testing.T) {
	var frame DirectoryFrame
	copy(frame.Filename[:], "BASCUS-94163WILDARMS")
	frame.Filename[12] = 0xff

	_, err := frame.RegionInfo()
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestAllocState(t *testing.T) {
	var frame DirectoryFrame

	frame.State = 0x51
	assert.Equal(t, AllocFirst, frame.AllocState())

	frame.State = 0xa0
	assert.Equal(t, Free, frame.AllocState())

	frame.State = 0x99
	assert.Equal(t, AllocUnknown, frame.AllocState())
	assert.Equal(t, "Unknown", frame.AllocState().String())
}

func TestIconDisplay(t *testing.T) {
	var frame TitleFrame

	frame.Display = 0x11
	assert.Equal(t, IconOneFrame, frame.IconDisplay())

	frame.Display = 0x13
	assert.Equal(t, IconThreeFrames, frame.IconDisplay())

	frame.Display = 0x14
	assert.Equal(t, IconUnknown, frame.IconDisplay())
}
