package slug

import (
	"strings"
	"unicode/utf8"
)

// Option configures Make.
type Option func(*options)

type options struct {
	separator string
	maxLength int
}

// Separator sets the string placed between words. Default "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// MaxLength truncates the slug to n runes. Zero or less means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

var folds = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a", 'æ': "ae",
	'ç': "c", 'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'œ': "oe",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ý': "y", 'ÿ': "y", 'ß': "ss",
}

// Make returns the slug of s.
func Make(s string, opts ...Option) string {
	o := options{separator: "-"}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		var part string
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			part = string(r)
		default:
			part = folds[r]
		}
		if part == "" {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteString(o.separator)
			pending = false
		}
		b.WriteString(part)
	}

	out := b.String()
	if o.maxLength > 0 && utf8.RuneCountInString(out) > o.maxLength {
		out = string([]rune(out)[:o.maxLength])
		if o.separator != "" {
			out = strings.TrimRight(out, o.separator)
		}
	}
	return out
}
