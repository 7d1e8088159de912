package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resignly/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []slug.Option
		want string
	}{
		{"simple", "Hello World", nil, "hello-world"},
		{"punctuation", "Hello, World!", nil, "hello-world"},
		{"numbers", "Top 10 Tips", nil, "top-10-tips"},
		{"spaces", "  Too    Many  ", nil, "too-many"},
		{"decimal", "Price: $99.99", nil, "price-99-99"},
		{"empty", "", nil, ""},
		{"only symbols", "!@#$%", nil, ""},
		{"diacritics", "Café résumé naïve", nil, "cafe-resume-naive"},
		{"eszett", "Straße", nil, "strasse"},
		{"non latin", "Привет world", nil, "world"},
		{"separator", "Two Weeks Notice", []slug.Option{slug.Separator("_")}, "two_weeks_notice"},
		{"max length", "This is a very long title that should be truncated", []slug.Option{slug.MaxLength(20)}, "this-is-a-very-long"},
		{"max length mid word", "How to Resign Gracefully", []slug.Option{slug.MaxLength(12)}, "how-to-resig"},
		{"max length larger", "short", []slug.Option{slug.MaxLength(50)}, "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}
