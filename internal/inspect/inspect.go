// Package inspect implements the interactive terminal composer: keys are
// translated through a keymap, fed to the composition automaton, and the
// current line is redrawn with the pending syllable appended.
package inspect

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"

	"hanjamo/internal/automata"
)

// Run reads keys until Esc or Ctrl-C and echoes composed text to w.
func Run(w io.Writer, layoutName string) error {
	keymap, err := ResolveKeymap(layoutName)
	if err != nil {
		return err
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintln(w, "hanjamo interactive composer (Esc to quit)")

	session := &session{w: w, composer: automata.NewComposer()}
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			session.finish()
			return nil
		case keyboard.KeyEnter:
			session.enter()
		case keyboard.KeySpace:
			session.literal(' ')
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			session.backspace()
		default:
			if char != 0 {
				session.typeKey(keymap(char))
			}
		}
	}
}

type session struct {
	w        io.Writer
	composer *automata.Composer
	line     []rune
}

func (s *session) typeKey(r rune) {
	s.line = append(s.line, s.composer.Feed(r)...)
	s.redraw()
}

func (s *session) literal(r rune) {
	s.line = append(s.line, s.composer.Flush()...)
	s.line = append(s.line, r)
	s.redraw()
}

func (s *session) backspace() {
	if s.composer.Backspace() {
		s.redraw()
		return
	}
	if len(s.line) > 0 {
		s.line = s.line[:len(s.line)-1]
		s.redraw()
	}
}

func (s *session) enter() {
	s.line = append(s.line, s.composer.Flush()...)
	fmt.Fprintf(s.w, "\r\x1b[K%s\r\n", string(s.line))
	s.line = s.line[:0]
}

func (s *session) finish() {
	s.line = append(s.line, s.composer.Flush()...)
	fmt.Fprintf(s.w, "\r\x1b[K%s\r\n", string(s.line))
}

// redraw repaints the current line with the pending syllable appended.
func (s *session) redraw() {
	fmt.Fprintf(s.w, "\r\x1b[K%s%s", string(s.line), string(s.composer.Preedit()))
}
