package model

import (
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		input    string
		expected Side
		wantErr  bool
	}{
		{input: "home", expected: SideHome},
		{input: "HOME", expected: SideHome},
		{input: "away", expected: SideAway},
		{input: "Away", expected: SideAway},
		{input: "draw", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		a, err := ParseSide(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("input %q: expected an error", tc.input)
				continue
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("input %q: expected a ParseError, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", tc.input, err)
			continue
		}
		if a != tc.expected {
			t.Errorf("input %q: expected %s, got %s", tc.input, tc.expected, a)
		}
	}
}
