package dat

// PagedMap maps BMP code points (0..65535) to dense alphabet IDs.
// It's a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Hiragana and katakana share the high byte 0x30, so a kana-only table
// allocates a single page (512 bytes). Latin letters, when present as
// keys, add page 0x00.
type PagedMap struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a code unit, or 0 if absent.
func (m *PagedMap) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> 8 }

// Set maps bmp to dense. Setting dense 0 clears an existing mapping and
// never allocates a page.
func (m *PagedMap) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(m.NumPages())
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = dense
}
