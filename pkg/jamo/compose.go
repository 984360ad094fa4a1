package jamo

// Compose builds a precomposed syllable from a lead, a vowel and an optional
// tail. A zero tail means an open syllable. Each argument may independently
// be a conjoining jamo or an HCJ letter; HCJ arguments are resolved through
// the class-scoped lookup for their position. Only modern jamo compose:
// archaic letters and the fillers are classifiable but have no syllable
// index, so they fail with *InvalidJamoError.
func Compose(lead, vowel, tail rune) (rune, error) {
	leadIdx, err := composeIndex(ClassLead, lead, leadBase, leadModernEnd)
	if err != nil {
		return 0, err
	}
	vowelIdx, err := composeIndex(ClassVowel, vowel, vowelBase, vowelModernEnd)
	if err != nil {
		return 0, err
	}
	tailIdx := 0
	if tail != 0 {
		idx, err := composeIndex(ClassTail, tail, tailBase, tailModernEnd)
		if err != nil {
			return 0, err
		}
		tailIdx = idx + 1
	}
	return SyllableBase + rune((leadIdx*vowelCount+vowelIdx)*tailCount+tailIdx), nil
}

// composeIndex resolves r to a modern conjoining jamo of the given class and
// returns its offset within the class range.
func composeIndex(class Class, r rune, base, end rune) (int, error) {
	j := r
	if IsHCJ(r) {
		resolved, err := FromHCJ(class, r)
		if err != nil {
			return 0, err
		}
		j = resolved
	}
	if j < base || j > end {
		return 0, &InvalidJamoError{Rune: r, Class: class}
	}
	return int(j - base), nil
}
