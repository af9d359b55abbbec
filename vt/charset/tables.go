// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charset

// asciiTable is the common base every 7-bit set derives from: index i
// below 0x20 and the DEL at 0x7f hold the control code point itself
// (callers never print these; they are filled in only so Table is total),
// 0x20-0x7e hold the printable ASCII glyph at that code point.
func asciiTable() Table {
	var t Table
	for i := 0; i < 128; i++ {
		t[i] = rune(i)
	}
	return t
}

// withOverrides returns a copy of base with replacements applied at the
// given indices. This is how the national-replacement variants are built:
// each only swaps a handful of ASCII positions for an accented or
// currency glyph.
func withOverrides(base Table, overrides map[int]rune) Table {
	t := base
	for idx, r := range overrides {
		t[idx&0x7f] = r
	}
	return t
}

func init() {
	ascii := asciiTable()
	tables[US] = ascii

	tables[UK] = withOverrides(ascii, map[int]rune{
		0x23: '£',
	})

	tables[DECSpecialGraphics] = decSpecialGraphicsTable(ascii)
	tables[VT52Graphics] = decSpecialGraphicsTable(ascii)

	tables[DECSupplemental] = decSupplementalTable()
	tables[DECSupplementalGraphics] = decSupplementalGraphicsTable()

	tables[NRCFinnish] = withOverrides(ascii, map[int]rune{
		0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
	})
	tables[NRCFrench] = withOverrides(ascii, map[int]rune{
		0x23: '£', 0x40: 'à', 0x5b: '°', 0x5c: 'ç', 0x5d: '§',
		0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: '¨',
	})
	tables[NRCFrenchCanadian] = withOverrides(ascii, map[int]rune{
		0x40: 'à', 0x5b: 'â', 0x5c: 'ç', 0x5d: 'ê', 0x5e: 'î',
		0x60: 'ô', 0x7b: 'é', 0x7c: 'ù', 0x7d: 'è', 0x7e: 'û',
	})
	tables[NRCGerman] = withOverrides(ascii, map[int]rune{
		0x40: '§', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Ü', 0x7b: 'ä',
		0x7c: 'ö', 0x7d: 'ü', 0x7e: 'ß',
	})
	tables[NRCItalian] = withOverrides(ascii, map[int]rune{
		0x23: '£', 0x40: '§', 0x5b: '°', 0x5c: 'ç', 0x5d: 'é',
		0x60: 'ù', 0x7b: 'à', 0x7c: 'ò', 0x7d: 'è', 0x7e: 'ì',
	})
	tables[NRCNorwegianDanish] = withOverrides(ascii, map[int]rune{
		0x40: 'Ä', 0x5b: 'Æ', 0x5c: 'Ø', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'ä', 0x7b: 'æ', 0x7c: 'ø', 0x7d: 'å', 0x7e: 'ü',
	})
	tables[NRCSpanish] = withOverrides(ascii, map[int]rune{
		0x23: '£', 0x40: '§', 0x5b: '¡', 0x5c: 'Ñ', 0x5d: '¿',
		0x7b: '°', 0x7c: 'ñ', 0x7d: 'ç',
	})
	tables[NRCSwedish] = withOverrides(ascii, map[int]rune{
		0x40: 'É', 0x5b: 'Ä', 0x5c: 'Ö', 0x5d: 'Å', 0x5e: 'Ü',
		0x60: 'é', 0x7b: 'ä', 0x7c: 'ö', 0x7d: 'å', 0x7e: 'ü',
	})
	tables[NRCSwiss] = withOverrides(ascii, map[int]rune{
		0x23: 'ù', 0x40: 'à', 0x5b: 'é', 0x5c: 'ç', 0x5d: 'ê',
		0x5e: 'î', 0x5f: 'è', 0x60: 'ô', 0x7b: 'ä', 0x7c: 'ö',
		0x7d: 'ü', 0x7e: 'û',
	})

	// ROM and ROM2 are the two alternate firmware character ROMs some
	// VT100 family hardware could be ordered with; absent a physical
	// ROM image the catalogue falls back to the same glyphs as US,
	// which is the documented behaviour for an out-of-range ROM variant.
	tables[ROM] = ascii
	tables[ROM2] = ascii
}

// decSpecialGraphicsTable overlays the DEC Special Graphics / line-drawing
// glyphs onto the 0x5f-0x7e range, leaving the rest of the set identical
// to ASCII (digits and upper-case letters below 0x5f still print
// normally; the lower-case letters fall inside the remapped range).
func decSpecialGraphicsTable(base Table) Table {
	return withOverrides(base, map[int]rune{
		0x5f: ' ', // blank (non-breaking space)
		0x60: '◆', // diamond
		0x61: '▒', // checkerboard
		0x62: '␉', // HT symbol
		0x63: '␌', // FF symbol
		0x64: '␍', // CR symbol
		0x65: '␊', // LF symbol
		0x66: '°', // degree
		0x67: '±', // plus/minus
		0x68: '␤', // NL symbol
		0x69: '␋', // VT symbol
		0x6a: '┘', // lower right corner
		0x6b: '┐', // upper right corner
		0x6c: '┌', // upper left corner
		0x6d: '└', // lower left corner
		0x6e: '┼', // crossing lines
		0x6f: '⎺', // scan line 1
		0x70: '⎻', // scan line 3
		0x71: '─', // horizontal line
		0x72: '⎼', // scan line 7
		0x73: '⎽', // scan line 9
		0x74: '├', // left tee
		0x75: '┤', // right tee
		0x76: '┴', // bottom tee
		0x77: '┬', // top tee
		0x78: '│', // vertical line
		0x79: '≤', // less than or equal
		0x7a: '≥', // greater than or equal
		0x7b: 'π', // pi
		0x7c: '≠', // not equal
		0x7d: '£', // pound sterling
		0x7e: '·', // centered dot
	})
}

// decSupplementalTable mirrors ISO 8859-1's upper half (0xa0-0xff, here
// addressed via the 7-bit 0x20-0x7f GL window once GR has stripped the
// top bit) with the handful of DEC-specific substitutions (no broken
// bar/currency glyphs; the DEC set omits a few Latin-1 symbols).
func decSupplementalTable() Table {
	var t Table
	for i := 0; i < 0x20; i++ {
		t[i] = rune(i)
	}
	latin1 := []rune{
		/* 0x20 */ ' ', '¡', '¢', '£', '$', '¥', '|', '§',
		'¤', '©', 'ª', '«', ' ', ' ', ' ', ' ',
		/* 0x30 */ '°', '±', '²', '³', ' ', 'µ', '¶', '·',
		' ', '¹', 'º', '»', '¼', '½', ' ', '¿',
		/* 0x40 */ 'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç',
		'È', 'É', 'Ê', 'Ë', 'Ì', 'Í', 'Î', 'Ï',
		/* 0x50 */ 'Ð', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', 'Œ',
		'Ø', 'Ù', 'Ú', 'Û', 'Ü', 'Ý', 'Þ', 'ß',
		/* 0x60 */ 'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç',
		'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï',
		/* 0x70 */ 'ð', 'ñ', 'ò', 'ó', 'ô', 'õ', 'ö', 'œ',
		'ø', 'ù', 'ú', 'û', 'ü', 'ý', 'þ', 'ÿ',
	}
	copy(t[0x20:], latin1)
	return t
}

// decSupplementalGraphicsTable is the distinct "%5" designated set: the
// same Latin-1-derived repertoire as DEC Supplemental except that 0x7c
// holds the trademark sign (U+2122), kept here as a separate table entry
// so the two never alias the same Set value.
func decSupplementalGraphicsTable() Table {
	return withOverrides(decSupplementalTable(), map[int]rune{
		0x7c: '™', // trademark, DEC Supplemental Graphics addition
	})
}
