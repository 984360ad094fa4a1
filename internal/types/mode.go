package types

import "fmt"

// Mode selects the conversion a hanjamo invocation performs.
type Mode int

const (
	// ModeDecompose splits precomposed syllables into conjoining jamo.
	ModeDecompose Mode = iota
	// ModeCompose rebuilds syllables from runs of jamo or HCJ letters.
	ModeCompose
	// ModeHCJ rewrites conjoining jamo as compatibility letters.
	ModeHCJ
)

func (m Mode) String() string {
	switch m {
	case ModeDecompose:
		return "decompose"
	case ModeCompose:
		return "compose"
	case ModeHCJ:
		return "hcj"
	default:
		return "unknown"
	}
}

func ParseMode(name string) (Mode, error) {
	switch name {
	case "decompose", "h2j":
		return ModeDecompose, nil
	case "compose", "j2h":
		return ModeCompose, nil
	case "hcj", "j2hcj":
		return ModeHCJ, nil
	}
	return 0, fmt.Errorf("unknown mode %q (available: decompose, compose, hcj)", name)
}
