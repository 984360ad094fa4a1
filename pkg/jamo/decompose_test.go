package jamo

import "testing"

func TestSplitSyllable(t *testing.T) {
	tests := []struct {
		in                rune
		lead, vowel, tail rune
	}{
		{'자', 0x110C, 0x1161, 0},
		{'모', 0x1106, 0x1169, 0},
		{'한', 0x1112, 0x1161, 0x11AB},
		{'글', 0x1100, 0x1173, 0x11AF},
		{'서', 0x1109, 0x1165, 0},
		{'울', 0x110B, 0x116E, 0x11AF},
		{'평', 0x1111, 0x1167, 0x11BC},
		{'양', 0x110B, 0x1163, 0x11BC},
		{'가', 0x1100, 0x1161, 0},
		{'힣', 0x1112, 0x1175, 0x11C2},
	}
	for _, tc := range tests {
		lead, vowel, tail, ok := SplitSyllable(tc.in)
		if !ok {
			t.Errorf("SplitSyllable(%#U) not ok, want syllable", tc.in)
			continue
		}
		if lead != tc.lead || vowel != tc.vowel || tail != tc.tail {
			t.Errorf("SplitSyllable(%#U) = (%#U, %#U, %#U), want (%#U, %#U, %#U)",
				tc.in, lead, vowel, tail, tc.lead, tc.vowel, tc.tail)
		}
	}
}

func TestSplitSyllableRejectsNonSyllables(t *testing.T) {
	for _, r := range []rune{0xABFF, 0xD7A4, 'ㄱ', 'ㅏ', 0x1100, 'a', '字'} {
		if _, _, _, ok := SplitSyllable(r); ok {
			t.Errorf("SplitSyllable(%#U) ok, want pass-through rejection", r)
		}
	}
}

// Every syllable in the block must survive a decompose/compose round trip.
func TestSyllableRoundTrip(t *testing.T) {
	for r := SyllableBase; r <= SyllableEnd; r++ {
		lead, vowel, tail, ok := SplitSyllable(r)
		if !ok {
			t.Fatalf("SplitSyllable(%#U) not ok", r)
		}
		back, err := Compose(lead, vowel, tail)
		if err != nil {
			t.Fatalf("Compose(%#U, %#U, %#U) returned error: %v", lead, vowel, tail, err)
		}
		if back != r {
			t.Fatalf("round trip %#U -> %#U, want original", r, back)
		}
	}
}
