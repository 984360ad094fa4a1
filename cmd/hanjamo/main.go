package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"hanjamo/internal/cli"
	"hanjamo/internal/filter"
	"hanjamo/internal/inspect"
	"hanjamo/internal/types"
	"hanjamo/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hanjamo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	if opts.Layout != "" {
		cfg.Layout = opts.Layout
	}

	if opts.Interactive {
		return inspect.Run(os.Stdout, cfg.Layout)
	}

	mode, err := types.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	var tr transform.Transformer
	switch mode {
	case types.ModeCompose:
		tr = filter.Compose()
	case types.ModeHCJ:
		tr = filter.ToHCJ()
	default:
		tr = filter.Decompose()
	}

	in := transform.NewReader(bufio.NewReader(os.Stdin), tr)
	out := bufio.NewWriter(os.Stdout)
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Flush()
}
