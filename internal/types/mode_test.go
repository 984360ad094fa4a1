package types

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"decompose", ModeDecompose},
		{"h2j", ModeDecompose},
		{"compose", ModeCompose},
		{"j2h", ModeCompose},
		{"hcj", ModeHCJ},
		{"j2hcj", ModeHCJ},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.name)
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	if _, err := ParseMode("romanize"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestModeString(t *testing.T) {
	if ModeDecompose.String() != "decompose" || ModeCompose.String() != "compose" || ModeHCJ.String() != "hcj" {
		t.Fatalf("unexpected Mode.String values: %v %v %v", ModeDecompose, ModeCompose, ModeHCJ)
	}
}
