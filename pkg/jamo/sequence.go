package jamo

import (
	"iter"
	"strings"
)

// DecomposeAll yields the runes of s with every Hangul syllable split into
// its 2-3 conjoining jamo; all other runes pass through in place. The
// sequence is lazy and finite, and ranging over it again restarts the same
// computation from the beginning.
func DecomposeAll(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			lead, vowel, tail, ok := SplitSyllable(r)
			if !ok {
				if !yield(r) {
					return
				}
				continue
			}
			if !yield(lead) || !yield(vowel) {
				return
			}
			if tail != 0 && !yield(tail) {
				return
			}
		}
	}
}

// DecomposeString is DecomposeAll collected into a string. Text containing
// no Hangul syllables is returned unchanged.
func DecomposeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for r := range DecomposeAll(s) {
		b.WriteRune(r)
	}
	return b.String()
}

// ToHCJAll yields the runes of s with every convertible conjoining jamo
// replaced by its HCJ letter; everything else passes through in place. The
// sequence is lazy, finite and restartable.
func ToHCJAll(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(ToHCJ(r)) {
				return
			}
		}
	}
}

// ToHCJString is ToHCJAll collected into a string. Text containing no
// conjoining jamo is a fixed point.
func ToHCJString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for r := range ToHCJAll(s) {
		b.WriteRune(r)
	}
	return b.String()
}
