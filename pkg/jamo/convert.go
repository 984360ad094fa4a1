package jamo

// ToHCJ converts a conjoining jamo to its compatibility (HCJ) letter. Jamo
// without an HCJ counterpart and any non-jamo rune are returned unchanged,
// which makes the conversion idempotent on arbitrary text.
func ToHCJ(r rune) rune {
	if hcj, ok := jamoToHCJ[r]; ok {
		return hcj
	}
	return r
}

// FromHCJ resolves an HCJ letter to the conjoining jamo of the requested
// class. The lookup is class-scoped: the same letter resolves to different
// code points as a lead and as a tail. A conjoining jamo already of the
// requested class passes through unchanged. Anything else fails with
// *InvalidJamoError.
func FromHCJ(class Class, r rune) (rune, error) {
	var table map[rune]rune
	switch class {
	case ClassLead:
		table = hcjToLead
	case ClassVowel:
		table = hcjToVowel
	case ClassTail:
		table = hcjToTail
	default:
		return 0, &InvalidJamoError{Rune: r, Class: class}
	}
	if j, ok := table[r]; ok {
		return j, nil
	}
	if got, err := ClassOf(r); err == nil && got == class {
		return r, nil
	}
	return 0, &InvalidJamoError{Rune: r, Class: class}
}
