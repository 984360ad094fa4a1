// Package jamo converts between the three Unicode representations of the
// Korean script: precomposed Hangul syllables (U+AC00..U+D7A3), conjoining
// jamo (U+1100..U+11FF plus the extension blocks), and Hangul Compatibility
// Jamo (U+3131..U+318E).
//
// Every operation is pure and works over read-only package tables, so the
// package is safe for concurrent use without locking.
package jamo

import "fmt"

// Class is the positional role a jamo plays inside a syllable.
type Class int

const (
	ClassNone Class = iota
	ClassLead
	ClassVowel
	ClassTail
)

func (c Class) String() string {
	switch c {
	case ClassLead:
		return "lead"
	case ClassVowel:
		return "vowel"
	case ClassTail:
		return "tail"
	default:
		return "none"
	}
}

// InvalidJamoError reports a rune that could not be resolved to the role an
// operation required. Class is ClassNone when no particular role was asked
// for.
type InvalidJamoError struct {
	Rune  rune
	Class Class
}

func (e *InvalidJamoError) Error() string {
	if e.Class == ClassNone {
		return fmt.Sprintf("jamo: %#U is not a valid jamo", e.Rune)
	}
	return fmt.Sprintf("jamo: %#U is not a valid %s", e.Rune, e.Class)
}
