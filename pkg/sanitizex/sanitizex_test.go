package sanitizex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims ends", "  student@kku.ac.kr  ", "student@kku.ac.kr"},
		{"collapses runs of spaces", "홍    길동", "홍 길동"},
		{"newline becomes space", "홍\n길동", "홍 길동"},
		{"tab becomes space", "2023\t1234", "2023 1234"},
		{"control characters stripped", "123\x00456", "123 456"},
		{"nfc composes decomposed hangul", "\u1112\u1161\u11ab", "\ud55c"},
		{"empty", "", ""},
		{"plain code untouched", "483920", "483920"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanSingleLine(tt.input))
		})
	}
}
