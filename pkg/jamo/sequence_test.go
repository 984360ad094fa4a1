package jamo

import (
	"slices"
	"testing"
)

func collect(s string) []rune {
	return slices.Collect(DecomposeAll(s))
}

func TestDecomposeAll(t *testing.T) {
	tests := []struct {
		in   string
		want []rune
	}{
		{"자", []rune{0x110C, 0x1161}},
		{"한", []rune{0x1112, 0x1161, 0x11AB}},
		{"글", []rune{0x1100, 0x1173, 0x11AF}},
		{"한굴", []rune{0x1112, 0x1161, 0x11AB, 0x1100, 0x116E, 0x11AF}},
		{"자모=字母", []rune{0x110C, 0x1161, 0x1106, 0x1169, '=', '字', '母'}},
	}
	for _, tc := range tests {
		got := collect(tc.in)
		if !slices.Equal(got, tc.want) {
			t.Errorf("DecomposeAll(%q) = %U, want %U", tc.in, got, tc.want)
		}
	}
}

func TestDecomposeAllInterleavesPassthrough(t *testing.T) {
	want := append([]rune("Do you speak "),
		0x1112, 0x1161, 0x11AB, 0x1100, 0x116E, 0x11A8, 0x110B, 0x1165, '?')
	got := collect("Do you speak 한국어?")
	if !slices.Equal(got, want) {
		t.Errorf("DecomposeAll interleaved = %U, want %U", got, want)
	}
}

func TestDecomposeAllRestartable(t *testing.T) {
	seq := DecomposeAll("한글")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second traversal = %U, want %U", second, first)
	}
}

func TestDecomposeAllEarlyStop(t *testing.T) {
	var got []rune
	for r := range DecomposeAll("한글") {
		got = append(got, r)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []rune{0x1112, 0x1161}) {
		t.Errorf("partial traversal = %U, want lead and vowel of 한", got)
	}
}

func TestDecomposeStringIdempotentWithoutSyllables(t *testing.T) {
	fixed := []string{"", "test123~", "ㄱㄲㄴㄷㆆㅿ", "한", "汉語 abc"}
	for _, s := range fixed {
		if got := DecomposeString(s); got != s {
			t.Errorf("DecomposeString(%q) = %q, want input unchanged", s, got)
		}
	}
}

func TestToHCJAllElementwise(t *testing.T) {
	got := slices.Collect(ToHCJAll("한글!"))
	want := []rune{'ㅎ', 'ㅏ', 'ㄴ', '글', '!'}
	if !slices.Equal(got, want) {
		t.Errorf("ToHCJAll = %U, want %U", got, want)
	}
}

func TestDecomposeThenConvertToHCJ(t *testing.T) {
	if got := ToHCJString(DecomposeString("한글")); got != "ㅎㅏㄴㄱㅡㄹ" {
		t.Errorf("h2j then j2hcj = %q, want %q", got, "ㅎㅏㄴㄱㅡㄹ")
	}
}
