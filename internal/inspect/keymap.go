package inspect

import (
	"fmt"
	"strings"
)

// dubeolsikTable maps the standard two-set (dubeolsik) key positions to HCJ
// letters. Shifted keys without a distinct letter fall back to the unshifted
// one.
var dubeolsikTable = map[rune]rune{
	'q': 'ㅂ', 'Q': 'ㅃ',
	'w': 'ㅈ', 'W': 'ㅉ',
	'e': 'ㄷ', 'E': 'ㄸ',
	'r': 'ㄱ', 'R': 'ㄲ',
	't': 'ㅅ', 'T': 'ㅆ',
	'y': 'ㅛ', 'Y': 'ㅛ',
	'u': 'ㅕ', 'U': 'ㅕ',
	'i': 'ㅑ', 'I': 'ㅑ',
	'o': 'ㅐ', 'O': 'ㅒ',
	'p': 'ㅔ', 'P': 'ㅖ',
	'a': 'ㅁ', 'A': 'ㅁ',
	's': 'ㄴ', 'S': 'ㄴ',
	'd': 'ㅇ', 'D': 'ㅇ',
	'f': 'ㄹ', 'F': 'ㄹ',
	'g': 'ㅎ', 'G': 'ㅎ',
	'h': 'ㅗ', 'H': 'ㅗ',
	'j': 'ㅓ', 'J': 'ㅓ',
	'k': 'ㅏ', 'K': 'ㅏ',
	'l': 'ㅣ', 'L': 'ㅣ',
	'z': 'ㅋ', 'Z': 'ㅋ',
	'x': 'ㅌ', 'X': 'ㅌ',
	'c': 'ㅊ', 'C': 'ㅊ',
	'v': 'ㅍ', 'V': 'ㅍ',
	'b': 'ㅠ', 'B': 'ㅠ',
	'n': 'ㅜ', 'N': 'ㅜ',
	'm': 'ㅡ', 'M': 'ㅡ',
}

// Keymap translates a typed key into the rune fed to the composer.
type Keymap func(r rune) rune

func dubeolsik(r rune) rune {
	if hcj, ok := dubeolsikTable[r]; ok {
		return hcj
	}
	return r
}

func passthrough(r rune) rune { return r }

// ResolveKeymap converts a user-provided layout name into a Keymap. "none"
// keeps typed characters untouched, for terminals with their own Hangul
// input.
func ResolveKeymap(name string) (Keymap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "dubeolsik", "2beolsik":
		return dubeolsik, nil
	case "none", "raw":
		return passthrough, nil
	default:
		return nil, fmt.Errorf("unknown layout %q (available: dubeolsik, none)", name)
	}
}
