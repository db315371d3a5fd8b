package utils

import (
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "whitespace only", content: "   \t\n  ", want: 0},
		{name: "single word", content: "hello", want: 1},
		{name: "three words", content: "one two three", want: 3},
		{name: "leading and trailing space", content: "  one two  ", want: 2},
		{name: "multiple spaces between words", content: "one    two", want: 2},
		{name: "newlines and tabs", content: "one\ntwo\tthree\n\nfour", want: 4},
		{name: "unicode words", content: "café niño 東京", want: 3},
		{name: "punctuation sticks to words", content: "hello, world!", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.content); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.want)
			}
		})
	}
}
