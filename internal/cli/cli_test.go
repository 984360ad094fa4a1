package cli

import "testing"

func TestParseDefaults(t *testing.T) {
	opts, err := Parse([]string{"hanjamo"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if opts.ShowHelp || opts.Interactive || opts.Mode != "" || opts.ConfigPath != "" {
		t.Fatalf("expected zero options, got %+v", opts)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{"hanjamo", "--mode", "compose", "--config=/tmp/h.ini", "-i", "--layout", "none"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if opts.Mode != "compose" {
		t.Errorf("Mode = %q, want compose", opts.Mode)
	}
	if opts.ConfigPath != "/tmp/h.ini" {
		t.Errorf("ConfigPath = %q, want /tmp/h.ini", opts.ConfigPath)
	}
	if !opts.Interactive {
		t.Errorf("Interactive = false, want true")
	}
	if opts.Layout != "none" {
		t.Errorf("Layout = %q, want none", opts.Layout)
	}
}

func TestParseShortMode(t *testing.T) {
	opts, err := Parse([]string{"hanjamo", "-m", "hcj"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if opts.Mode != "hcj" {
		t.Errorf("Mode = %q, want hcj", opts.Mode)
	}
}

func TestParseHelp(t *testing.T) {
	opts, err := Parse([]string{"hanjamo", "-h"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !opts.ShowHelp {
		t.Errorf("ShowHelp = false, want true")
	}
}

func TestParseRejectsUnknownOption(t *testing.T) {
	if _, err := Parse([]string{"hanjamo", "--bogus"}); err == nil {
		t.Fatalf("expected error for unknown option")
	}
}

func TestParseRejectsMissingValue(t *testing.T) {
	if _, err := Parse([]string{"hanjamo", "--mode"}); err == nil {
		t.Fatalf("expected error for missing value")
	}
}
