package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Test One", "test-one"},
		{"already lowercase", "portfolio", "portfolio"},
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"mixed separators", "Go -- The  Language", "go-the-language"},
		{"leading and trailing junk", "  ...Spaced Out...  ", "spaced-out"},
		{"digits survive", "Top 10 Projects", "top-10-projects"},
		{"apostrophes", "Don't Panic", "don-t-panic"},
		{"empty", "", ""},
		{"only punctuation", "?!-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}
