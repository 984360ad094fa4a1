package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp    bool
	Interactive bool
	Mode        string
	ConfigPath  string
	Layout      string
}

func Parse(args []string) (Options, error) {
	var opts Options
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--interactive" || arg == "-i":
			opts.Interactive = true
		case strings.HasPrefix(arg, "--mode") || arg == "-m":
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Mode = value
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--layout"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Layout = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `hanjamo - Hangul syllable/jamo converter
Usage: hanjamo [options] < input > output

Converts text between precomposed Hangul syllables, conjoining jamo and
Hangul Compatibility Jamo. Reads stdin and writes stdout unless running
interactively.

Options:
  -m, --mode NAME    Conversion to apply: decompose (h2j), compose (j2h)
                     or hcj (j2hcj) (default: decompose)
  --config PATH      Path to an ini configuration file
  -i, --interactive  Compose syllables live from keyboard input
  --layout NAME      Interactive keymap: dubeolsik or none (default: dubeolsik)
  -h, --help         Show this help message`
}
