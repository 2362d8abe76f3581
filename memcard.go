package psxmc

import (
	"fmt"
	"io"
	"strings"
)

// MemCard is the entire contents of one memory card: the info block and the
// fifteen save blocks, positionally aligned with the directory slots. Once
// loaded the fields can be edited freely; Save restamps every checksum.
type MemCard struct {
	Info InfoBlock
	Data []DataBlock
}

// Load reads exactly 16 blocks from r and parses them into a MemCard. A
// source that ends early or a block that fails checksum validation aborts
// the whole load; no partial card is ever returned.
func Load(r io.Reader) (*MemCard, error) {
	buf := make([]byte, BlockSize)

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("info block: %w", err)
	}
	info, err := parseInfoBlock(buf)
	if err != nil {
		return nil, fmt.Errorf("info block: %w", err)
	}

	data := make([]DataBlock, 0, numBlocks-1)
	for i := 1; i < numBlocks; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		block, err := parseDataBlock(buf)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		data = append(data, *block)
	}

	return &MemCard{Info: *info, Data: data}, nil
}

// Save serializes the card to w in slot order, writing exactly 16 blocks.
// Checksums are recomputed from the current field values so any edits made
// since loading come out consistent.
func (m *MemCard) Save(w io.Writer) error {
	if err := m.Info.Write(w); err != nil {
		return fmt.Errorf("info block: %w", err)
	}

	for i := range m.Data {
		if err := m.Data[i].Write(w); err != nil {
			return fmt.Errorf("block %d: %w", i+1, err)
		}
	}

	return nil
}

// FindGame returns every save block whose decoded title contains search,
// compared case-insensitively. Order is preserved and two slots sharing a
// title both match.
func (m *MemCard) FindGame(search string) []DataBlock {
	needle := strings.ToLower(search)

	var found []DataBlock
	for _, block := range m.Data {
		if strings.Contains(strings.ToLower(block.TitleFrame.DecodeTitle()), needle) {
			found = append(found, block)
		}
	}

	return found
}
