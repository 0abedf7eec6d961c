package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ąćęłńóśźż", "acelnoszz"},
		{"ĄĆĘŁŃÓŚŹŻ", "ACELNOSZZ"},
		{"Gżegżółka", "Gzegzolka"},
		{"plain ascii 123", "plain ascii 123"},
		{"", ""},
		// Characters outside the table pass through untouched.
		{"café über 日本", "café über 日本"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.input), "input %q", tt.input)
	}
}
