package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "GK", expected: POS_GK},
		{input: "gk", expected: POS_GK},
		{input: "Goalkeeper", expected: POS_GK},
		{input: "DF", expected: POS_DF},
		{input: "cb", expected: POS_DF},
		{input: "MF", expected: POS_MF},
		{input: "midfielder", expected: POS_MF},
		{input: "FW", expected: POS_FW},
		{input: " st ", expected: POS_FW},
		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "QB", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}
