package filter

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"hanjamo/internal/automata"
)

// Compose returns a transformer that rebuilds precomposed syllables from
// runs of jamo and HCJ letters. It is stateful: letters may be held across
// Transform calls until the syllable boundary is known.
func Compose() transform.Transformer {
	return &composer{auto: automata.NewComposer()}
}

type composer struct {
	auto *automata.Composer
	// out holds committed bytes that did not fit into dst yet.
	out []byte
}

func (c *composer) Reset() {
	c.auto = automata.NewComposer()
	c.out = c.out[:0]
}

func (c *composer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if nDst = c.drain(dst); len(c.out) > 0 {
		return nDst, 0, transform.ErrShortDst
	}

	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			// An invalid byte is a syllable boundary; flush and copy it.
			c.push(c.auto.Flush())
			c.out = append(c.out, src[nSrc])
			nSrc++
		} else {
			c.push(c.auto.Feed(r))
			nSrc += size
		}
		if nDst += c.drainAt(dst, nDst); len(c.out) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
	}

	if atEOF {
		c.push(c.auto.Flush())
		if nDst += c.drainAt(dst, nDst); len(c.out) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

func (c *composer) push(runes []rune) {
	for _, r := range runes {
		c.out = utf8.AppendRune(c.out, r)
	}
}

func (c *composer) drain(dst []byte) int {
	return c.drainAt(dst, 0)
}

func (c *composer) drainAt(dst []byte, at int) int {
	n := copy(dst[at:], c.out)
	c.out = c.out[:copy(c.out, c.out[n:])]
	return n
}
