package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGold, "220"},
		{ColorIce, "159"},
		{Color(250), ""},
	}
	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}

func TestColorDim(t *testing.T) {
	tests := []struct {
		color    Color
		expected Color
	}{
		{ColorBrightCyan, ColorCyan},
		{ColorBrightRed, ColorRed},
		{ColorGold, ColorYellow},
		{ColorGray, ColorGray},
		{ColorDefault, ColorDefault},
		{Color(250), ColorDefault},
	}
	for _, tc := range tests {
		if got := tc.color.Dim(); got != tc.expected {
			t.Errorf("Color(%d).Dim() = %d, expected %d", tc.color, got, tc.expected)
		}
	}
}

func TestEveryColorHasCode(t *testing.T) {
	for _, c := range Colors() {
		if c != ColorDefault && c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
		// Repeated dimming must settle instead of cycling
		d := c
		for i := 0; i < 4; i++ {
			d = d.Dim()
		}
		if d.Dim() != d {
			t.Errorf("Color(%d) never settles when dimmed", c)
		}
	}
}
