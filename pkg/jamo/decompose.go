package jamo

// SplitSyllable decomposes a precomposed syllable into its conjoining jamo
// using the Unicode Hangul syllable arithmetic. tail is zero for an open
// syllable. ok is false when r is not a Hangul syllable.
func SplitSyllable(r rune) (lead, vowel, tail rune, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	index := r - SyllableBase
	lead = leadBase + index/(vowelCount*tailCount)
	vowel = vowelBase + (index/tailCount)%vowelCount
	if t := index % tailCount; t != 0 {
		tail = tailBase + t - 1
	}
	return lead, vowel, tail, true
}
