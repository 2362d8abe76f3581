package psxmc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidText is returned when a text field does not hold valid UTF-8.
var ErrInvalidText = errors.New("invalid text")

// AllocState is the allocation state of a save slot.
type AllocState uint32

const (
	AllocUnknown AllocState = 0
	AllocFirst   AllocState = 0x51
	AllocMid     AllocState = 0x52
	AllocLast    AllocState = 0x53
	Free         AllocState = 0xa0
	FreeFirst    AllocState = 0xa1
	FreeMid      AllocState = 0xa2
	FreeLast     AllocState = 0xa3
)

var allocStateNames = map[AllocState]string{
	AllocFirst: "AllocFirst",
	AllocMid:   "AllocMid",
	AllocLast:  "AllocLast",
	Free:       "Free",
	FreeFirst:  "FreeFirst",
	FreeMid:    "FreeMid",
	FreeLast:   "FreeLast",
}

func (s AllocState) String() string {
	if name, ok := allocStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// AllocState decodes the raw state field into an AllocState.
func (f *DirectoryFrame) AllocState() AllocState {
	switch s := AllocState(f.State); s {
	case AllocFirst, AllocMid, AllocLast, Free, FreeFirst, FreeMid, FreeLast:
		return s
	default:
		return AllocUnknown
	}
}

// Region is the sales region a save's game was released in.
type Region int

const (
	RegionUnknown Region = iota
	Japan
	America
	Europe
)

func (r Region) String() string {
	switch r {
	case Japan:
		return "Japan"
	case America:
		return "America"
	case Europe:
		return "Europe"
	default:
		return "Unknown"
	}
}

// License identifies the publisher class encoded in a save's filename.
type License int

const (
	LicenseUnknown License = iota
	Sony
	Licensed
)

func (l License) String() string {
	switch l {
	case Sony:
		return "Sony"
	case Licensed:
		return "Licensed"
	default:
		return "Unknown"
	}
}

// RegionInfo is derived from a directory frame's filename; it is never
// stored on the card.
type RegionInfo struct {
	Region  Region
	License License
	Name    string
}

// RegionInfo decodes the region, license and product id embedded in the
// slot's filename. The product id must be valid UTF-8.
func (f *DirectoryFrame) RegionInfo() (RegionInfo, error) {
	var info RegionInfo

	switch f.Filename[1] {
	case 'I':
		info.Region = Japan
	case 'A':
		info.Region = America
	case 'E':
		info.Region = Europe
	}

	switch f.Filename[3] {
	case 'C':
		info.License = Sony
	case 'L':
		info.License = Licensed
	}

	name := f.Filename[12:]
	if !utf8.Valid(name) {
		return RegionInfo{}, fmt.Errorf("product id: %w", ErrInvalidText)
	}
	info.Name = string(name)

	return info, nil
}

func (f DirectoryFrame) String() string {
	region := "Unknown"
	if info, err := f.RegionInfo(); err == nil {
		region = fmt.Sprintf("%s %s %q", info.Region, info.License, info.Name)
	}
	return fmt.Sprintf("\n State: %s\n Filesize: %d\n Next block: %d\n Region info: %s\n Checksum: %d",
		f.AllocState(), f.Filesize, f.NextBlock, region, f.Checksum)
}

// IconDisplay classifies the display byte of a title frame.
type IconDisplay int

const (
	IconUnknown IconDisplay = iota
	IconOneFrame
	IconTwoFrames
	IconThreeFrames
)

func (d IconDisplay) String() string {
	switch d {
	case IconOneFrame:
		return "OneFrame"
	case IconTwoFrames:
		return "TwoFrames"
	case IconThreeFrames:
		return "ThreeFrames"
	default:
		return "Unknown"
	}
}

// IconDisplay classifies the raw display byte. Only 0x11, 0x12 and 0x13
// are defined by the format; everything else is unknown, although parsing
// still derives a frame count from the bottom two bits.
func (t *TitleFrame) IconDisplay() IconDisplay {
	switch t.Display {
	case 0x11:
		return IconOneFrame
	case 0x12:
		return IconTwoFrames
	case 0x13:
		return IconThreeFrames
	default:
		return IconUnknown
	}
}

func (t TitleFrame) String() string {
	return fmt.Sprintf("\n Title: %s\n Icon: %s\n Block number: %d",
		t.DecodeTitle(), t.IconDisplay(), t.BlockNum)
}
