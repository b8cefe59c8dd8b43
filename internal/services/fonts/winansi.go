package fonts

// winAnsiSpecials covers codes 0x80 through 0x9F of the WinAnsi code page,
// the only range where it differs from Latin-1. Zero entries are codes the
// code page leaves undefined.
var winAnsiSpecials = [32]rune{
	0x00: '€', // euro sign
	0x02: '‚',
	0x03: 'ƒ',
	0x04: '„',
	0x05: '…',
	0x06: '†',
	0x07: '‡',
	0x08: 'ˆ',
	0x09: '‰',
	0x0A: 'Š',
	0x0B: '‹',
	0x0C: 'Œ',
	0x0E: 'Ž',
	0x11: '‘',
	0x12: '’',
	0x13: '“',
	0x14: '”',
	0x15: '•',
	0x16: '–',
	0x17: '—',
	0x18: '˜',
	0x19: '™',
	0x1A: 'š',
	0x1B: '›',
	0x1C: 'œ',
	0x1E: 'ž',
	0x1F: 'Ÿ',
}

var winAnsiReverse map[rune]byte

func init() {
	winAnsiReverse = make(map[rune]byte, len(winAnsiSpecials))
	for i, r := range winAnsiSpecials {
		if r != 0 {
			winAnsiReverse[r] = byte(0x80 + i)
		}
	}
}

// Encode maps text onto the WinAnsi code page, the encoding the embedded
// watermark font is declared with. Characters outside the code page are
// replaced by '?'.
func Encode(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		out = append(out, encodeRune(r))
	}
	return out
}

func encodeRune(r rune) byte {
	switch {
	case r < 0x80:
		return byte(r)
	case r >= 0xA0 && r <= 0xFF:
		return byte(r)
	default:
		if b, ok := winAnsiReverse[r]; ok {
			return b
		}
		return '?'
	}
}

// runeForCode returns the character a WinAnsi code stands for. The second
// result is false for the five codes the code page leaves undefined.
func runeForCode(c byte) (rune, bool) {
	if c >= 0x80 && c <= 0x9F {
		r := winAnsiSpecials[c-0x80]
		if r == 0 {
			return 0, false
		}
		return r, true
	}
	return rune(c), true
}
