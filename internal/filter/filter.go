// Package filter exposes the jamo conversions as transform.Transformer
// values, so whole files can be converted through transform.Reader with
// constant memory.
package filter

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"hanjamo/pkg/jamo"
)

// Decompose returns a transformer that splits every Hangul syllable into
// its conjoining jamo and leaves everything else alone.
func Decompose() transform.Transformer {
	return runeMapper{fn: splitRunes}
}

// ToHCJ returns a transformer that rewrites conjoining jamo as their HCJ
// letters and leaves everything else alone.
func ToHCJ() transform.Transformer {
	return runeMapper{fn: func(r rune, buf []rune) []rune {
		return append(buf, jamo.ToHCJ(r))
	}}
}

func splitRunes(r rune, buf []rune) []rune {
	lead, vowel, tail, ok := jamo.SplitSyllable(r)
	if !ok {
		return append(buf, r)
	}
	buf = append(buf, lead, vowel)
	if tail != 0 {
		buf = append(buf, tail)
	}
	return buf
}

// runeMapper applies a per-rune expansion to a UTF-8 stream. Invalid bytes
// are copied through unchanged.
type runeMapper struct {
	transform.NopResetter
	fn func(r rune, buf []rune) []rune
}

func (m runeMapper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var buf [3]rune
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}

		out := m.fn(r, buf[:0])
		need := 0
		for _, o := range out {
			need += utf8.RuneLen(o)
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		for _, o := range out {
			nDst += utf8.EncodeRune(dst[nDst:], o)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
