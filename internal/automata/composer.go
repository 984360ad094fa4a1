// Package automata provides an incremental composer that turns a stream of
// jamo and HCJ letters into precomposed syllables. It resolves the class
// ambiguity of compatibility letters greedily, handing a tentative tail over
// to the next syllable when a vowel follows, and combines letter pairs the
// way Korean keyboards type them (ㄱ+ㄱ→ㄲ, ㅗ+ㅏ→ㅘ, ㅂ+ㅅ→ㅄ).
package automata

import "hanjamo/pkg/jamo"

// slot keeps both the rune as it appeared in the input and its HCJ form, so
// letters that never compose are emitted exactly as they arrived.
type slot struct {
	orig rune
	hcj  rune
}

func (s slot) empty() bool { return s.orig == 0 }

// Composer accumulates at most one pending syllable. The zero value is not
// ready to use; call NewComposer.
type Composer struct {
	lead  slot
	vowel slot
	tail  slot
	// tentative marks a tail taken from an ambiguous HCJ consonant. Such a
	// tail is re-read as the next syllable's lead when a vowel follows. A
	// tail given as an explicit conjoining jongseong is never stolen.
	tentative bool
}

func NewComposer() *Composer {
	return &Composer{}
}

// Feed advances the automaton by one rune and returns the runes committed by
// this step. Runes that cannot take part in composition flush the pending
// syllable and pass through unchanged.
func (c *Composer) Feed(r rune) []rune {
	switch {
	case isComposableVowel(r):
		return c.feedVowel(r)
	case isComposableConsonant(r):
		return c.feedConsonant(r)
	default:
		return append(c.Flush(), r)
	}
}

// Flush commits whatever is pending and resets the automaton.
func (c *Composer) Flush() []rune {
	out := c.pendingRunes()
	c.lead, c.vowel, c.tail = slot{}, slot{}, slot{}
	c.tentative = false
	return out
}

// Preedit returns the pending letters as they would be committed right now.
func (c *Composer) Preedit() []rune {
	return c.pendingRunes()
}

// Backspace removes the most recent pending letter, unwinding combined
// letters one step at a time. It reports whether anything was pending.
func (c *Composer) Backspace() bool {
	switch {
	case !c.tail.empty():
		if pair, ok := doubleFinalSplit[c.tail.hcj]; ok {
			c.tail = slot{orig: pair[0], hcj: pair[0]}
		} else {
			c.tail = slot{}
			c.tentative = false
		}
	case !c.vowel.empty():
		if pair, ok := doubleMedialSplit[c.vowel.hcj]; ok {
			c.vowel = slot{orig: pair[0], hcj: pair[0]}
		} else {
			c.vowel = slot{}
		}
	case !c.lead.empty():
		if pair, ok := doubleInitialSplit[c.lead.hcj]; ok {
			c.lead = slot{orig: pair[0], hcj: pair[0]}
		} else {
			c.lead = slot{}
		}
	default:
		return false
	}
	return true
}

func (c *Composer) feedVowel(r rune) []rune {
	hcj := jamo.ToHCJ(r)

	if c.vowel.empty() {
		if c.lead.empty() {
			// A vowel cannot open a syllable; pass it through.
			return []rune{r}
		}
		c.vowel = slot{orig: r, hcj: hcj}
		return nil
	}

	if c.tail.empty() {
		if combined, ok := doubleMedial[[2]rune{c.vowel.hcj, hcj}]; ok {
			c.vowel = slot{orig: combined, hcj: combined}
			return nil
		}
		out := c.Flush()
		return append(out, r)
	}

	if !c.tentative {
		// Explicit tails close the syllable; the vowel stands alone.
		out := c.Flush()
		return append(out, r)
	}

	// The tentative tail becomes the next syllable's lead. Cluster tails
	// split: the first letter stays behind, the second moves on.
	stolen := c.tail.hcj
	c.tail = slot{}
	if pair, ok := doubleFinalSplit[stolen]; ok {
		c.tail = slot{orig: pair[0], hcj: pair[0]}
		stolen = pair[1]
	}
	if _, err := jamo.FromHCJ(jamo.ClassLead, stolen); err != nil {
		// No lead form exists for the stolen letter; keep the syllable
		// closed and emit the vowel on its own.
		c.tail = slot{orig: stolen, hcj: stolen}
		out := c.Flush()
		return append(out, r)
	}
	out := c.commitSyllable()
	c.lead = slot{orig: stolen, hcj: stolen}
	c.vowel = slot{orig: r, hcj: jamo.ToHCJ(r)}
	c.tentative = false
	return out
}

func (c *Composer) feedConsonant(r rune) []rune {
	hcj := jamo.ToHCJ(r)
	class := consonantClass(r)

	if c.lead.empty() && c.vowel.empty() {
		if class == jamo.ClassTail {
			// A stray explicit tail has nothing to attach to.
			return []rune{r}
		}
		c.lead = slot{orig: r, hcj: hcj}
		return nil
	}

	if c.vowel.empty() {
		if class != jamo.ClassTail {
			if combined, ok := doubleInitial[[2]rune{c.lead.hcj, hcj}]; ok && class == jamo.ClassNone {
				c.lead = slot{orig: combined, hcj: combined}
				return nil
			}
		}
		out := c.Flush()
		if class == jamo.ClassTail {
			return append(out, r)
		}
		c.lead = slot{orig: r, hcj: hcj}
		return out
	}

	if class == jamo.ClassLead {
		out := c.commitSyllable()
		c.lead = slot{orig: r, hcj: hcj}
		return out
	}

	if c.tail.empty() {
		if _, err := jamo.FromHCJ(jamo.ClassTail, hcj); err != nil {
			// ㄸ, ㅃ and ㅉ never close a syllable.
			out := c.commitSyllable()
			c.lead = slot{orig: r, hcj: hcj}
			return out
		}
		c.tail = slot{orig: r, hcj: hcj}
		c.tentative = class == jamo.ClassNone
		return nil
	}

	if c.tentative && class == jamo.ClassNone {
		if combined, ok := doubleFinal[[2]rune{c.tail.hcj, hcj}]; ok {
			c.tail = slot{orig: combined, hcj: combined}
			return nil
		}
	}
	out := c.commitSyllable()
	if class == jamo.ClassTail {
		return append(out, r)
	}
	c.lead = slot{orig: r, hcj: hcj}
	return out
}

// commitSyllable composes and resets the pending slots. It must only be
// called when a lead and a vowel are present.
func (c *Composer) commitSyllable() []rune {
	out := c.pendingRunes()
	c.lead, c.vowel, c.tail = slot{}, slot{}, slot{}
	c.tentative = false
	return out
}

func (c *Composer) pendingRunes() []rune {
	if c.lead.empty() && c.vowel.empty() {
		return nil
	}
	if !c.lead.empty() && !c.vowel.empty() {
		var tail rune
		if !c.tail.empty() {
			tail = c.tail.hcj
		}
		if s, err := jamo.Compose(c.lead.hcj, c.vowel.hcj, tail); err == nil {
			return []rune{s}
		}
	}
	var out []rune
	for _, s := range []slot{c.lead, c.vowel, c.tail} {
		if !s.empty() {
			out = append(out, s.orig)
		}
	}
	return out
}

// isComposableVowel accepts modern vowels in either representation.
func isComposableVowel(r rune) bool {
	if r >= 0x1161 && r <= 0x1175 {
		return true
	}
	return r >= 0x314F && r <= 0x3163
}

// isComposableConsonant accepts modern consonant letters: HCJ consonants and
// conjoining modern leads and tails.
func isComposableConsonant(r rune) bool {
	if r >= 0x1100 && r <= 0x1112 {
		return true
	}
	if r >= 0x11A8 && r <= 0x11C2 {
		return true
	}
	return r >= 0x3131 && r <= 0x314E
}

// consonantClass reports how strongly the input binds to a position:
// conjoining choseong and jongseong are explicit, HCJ consonants are
// ambiguous (ClassNone).
func consonantClass(r rune) jamo.Class {
	switch {
	case r >= 0x1100 && r <= 0x1112:
		return jamo.ClassLead
	case r >= 0x11A8 && r <= 0x11C2:
		return jamo.ClassTail
	default:
		return jamo.ClassNone
	}
}
