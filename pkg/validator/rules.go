package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Translation keys used by the built-in rules.
const (
	KeyRequired  = "validation.required"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
	KeyLength    = "validation.exact_length"
	KeyPattern   = "validation.pattern"
	KeyEmail     = "validation.email"
	KeyDate      = "validation.date"
)

// DateLayout is the calendar date format accepted by Date.
const DateLayout = time.DateOnly

var (
	patternCache sync.Map // map[string]*regexp.Regexp
)

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:             field,
			Message:           "is required",
			TranslationKey:    KeyRequired,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// MinLenString fails when value has fewer than min runes. An empty value
// passes; combine with RequiredString to reject it.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return value == "" || utf8.RuneCountInString(value) >= min },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters", min),
			TranslationKey:    KeyMinLength,
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

// MaxLenString fails when value has more than max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters", max),
			TranslationKey:    KeyMaxLength,
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

// LenString fails when value does not have exactly length runes.
func LenString(field, value string, length int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) == length },
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be exactly %d characters", length),
			TranslationKey:    KeyLength,
			TranslationValues: map[string]any{"field": field, "length": length},
		},
	}
}

// MatchesRegex fails when a non-empty value does not match pattern.
// Compiled patterns are cached. An invalid pattern panics, as with
// regexp.MustCompile.
func MatchesRegex(field, value, pattern, description string) Rule {
	return Rule{
		Check: func() bool { return value == "" || compiled(pattern).MatchString(value) },
		Error: ValidationError{
			Field:             field,
			Message:           "must be " + description,
			TranslationKey:    KeyPattern,
			TranslationValues: map[string]any{"field": field, "pattern": description},
		},
	}
}

// Email fails when a non-empty value is not a bare email address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    KeyEmail,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Date fails when a non-empty value is not a YYYY-MM-DD calendar date.
func Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			_, err := time.Parse(DateLayout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid date",
			TranslationKey:    KeyDate,
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func compiled(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
}
