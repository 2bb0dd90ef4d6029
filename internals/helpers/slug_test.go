package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"diacritics stripped", "Guaíra", 0, "guaira"},
		{"spaces become hyphens", "São Paulo", 0, "sao-paulo"},
		{"cedilla and tilde", "Conceição do Araguaia", 0, "conceicao-do-araguaia"},
		{"punctuation compressed", "Guarda  Civil -- Municipal!", 0, "guarda-civil-municipal"},
		{"already clean", "guaira", 0, "guaira"},
		{"empty falls back", "", 0, "item"},
		{"symbols only fall back", "!!!", 0, "item"},
		{"truncated to max", "abcdefghij", 5, "abcde"},
		{"truncation trims trailing hyphen", "abcd efgh", 5, "abcd"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, tc.maxLen))
		})
	}
}
