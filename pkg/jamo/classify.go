package jamo

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SyllableBase && r <= SyllableEnd
}

// IsJamo reports whether r is a Hangul letter: a conjoining jamo (including
// the extension blocks), or an HCJ letter. Unassigned code points inside the
// blocks are rejected.
func IsJamo(r rune) bool {
	switch {
	case r >= leadBase && r <= jamoEnd:
		return true
	case IsHCJ(r):
		return true
	case r >= extLeadBase && r <= extLeadEnd:
		return true
	case r >= extVowelBase && r <= extVowelEnd:
		return true
	case r >= extTailBase && r <= extTailEnd:
		return true
	}
	return false
}

// IsJamoModern reports whether r is one of the jamo used in modern Hangul:
// the 19 leads, 21 vowels and 27 tails of the conjoining block, or a modern
// HCJ letter.
func IsJamoModern(r rune) bool {
	switch {
	case r >= leadBase && r <= leadModernEnd:
		return true
	case r >= vowelBase && r <= vowelModernEnd:
		return true
	case r >= tailBase && r <= tailModernEnd:
		return true
	}
	return IsHCJModern(r)
}

// IsHCJ reports whether r is a Hangul Compatibility Jamo letter. The
// unassigned U+3130 and U+318F and the Hangul filler U+3164 are excluded.
func IsHCJ(r rune) bool {
	return (r >= hcjBase && r <= hcjModernEnd) ||
		(r >= hcjArchaicBase && r <= hcjEnd)
}

// IsHCJModern reports whether r is an HCJ letter with a modern conjoining
// counterpart, i.e. U+3131 ㄱ through U+3163 ㅣ.
func IsHCJModern(r rune) bool {
	return r >= hcjBase && r <= hcjModernEnd
}

// ClassOf returns the positional class of a conjoining jamo. Fillers are
// classed by their block position: U+115F is a lead, U+1160 a vowel. HCJ
// input fails because a compatibility letter can stand for either a lead or
// a tail; callers must supply the intended class themselves (see FromHCJ).
func ClassOf(r rune) (Class, error) {
	switch {
	case r >= leadBase && r < VowelFiller:
		return ClassLead, nil
	case r >= VowelFiller && r < tailBase:
		return ClassVowel, nil
	case r >= tailBase && r <= jamoEnd:
		return ClassTail, nil
	case r >= extLeadBase && r <= extLeadEnd:
		return ClassLead, nil
	case r >= extVowelBase && r <= extVowelEnd:
		return ClassVowel, nil
	case r >= extTailBase && r <= extTailEnd:
		return ClassTail, nil
	}
	return ClassNone, &InvalidJamoError{Rune: r}
}
