package styles

import (
	"testing"

	"charm.land/lipgloss/v2"
)

// Init mutates package state, so these tests do not run in parallel.

func TestInit_DefaultTheme(t *testing.T) {
	Init("")
	t.Cleanup(func() { Init("") })

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestInit_PresetTheme(t *testing.T) {
	t.Cleanup(func() { Init("") })

	tests := []struct {
		preset string
		want   any
	}{
		{"nord", lipgloss.Color("#88c0d0")},
		{"dracula", lipgloss.Color("#bd93f9")},
		{"default", lipgloss.Color("62")},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			Init(tt.preset)
			if got := Current().Primary; got != tt.want {
				t.Errorf("Init(%q) primary = %v, want %v", tt.preset, got, tt.want)
			}
			if Primary != Current().Primary {
				t.Error("package Primary not updated by Init")
			}
		})
	}
}

func TestInit_UnknownFallsBack(t *testing.T) {
	Init("solarized")
	t.Cleanup(func() { Init("") })

	if Current() != DefaultTheme {
		t.Errorf("unknown theme should select DefaultTheme, got %+v", Current())
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("none") == nil {
		t.Error("GetPreset(none) = nil")
	}
	if GetPreset("missing") != nil {
		t.Error("GetPreset(missing) should be nil")
	}
}
