package psxmc

import "strings"

// DecodeTitle decodes the title field from its Shift-JIS encoding into an
// ASCII string.
//
// Only the full-width space, digit and letter ranges are decoded.
// Punctuation marks (lead byte 0x81, trail 0x43-0x97) are not translated;
// unrecognised pairs are skipped rather than substituted so that existing
// titles keep decoding to the same strings.
func (t *TitleFrame) DecodeTitle() string {
	var s strings.Builder

	for p := 0; p < len(t.Title); p += 2 {
		switch t.Title[p] {
		case 0x81:
			if t.Title[p+1] == 0x40 {
				s.WriteByte(' ')
			}
		case 0x82:
			switch c := t.Title[p+1]; {
			case c >= 0x4f && c <= 0x58, c >= 0x60 && c <= 0x79:
				// Translate 0..9 and A..Z
				s.WriteByte(c - 0x1f)
			case c >= 0x81 && c <= 0x9a:
				// Translate a..z
				s.WriteByte(c - 0x20)
			}
		case 0x00:
			return s.String()
		}
	}

	return s.String()
}
