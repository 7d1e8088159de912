package sanitizer

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"
)

// ErrInvalidTarget is returned by SanitizeStruct for anything but a pointer
// to a struct.
var ErrInvalidTarget = errors.New("sanitizer: must pass a pointer to struct")

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        strings.TrimSpace,
		"lower":       strings.ToLower,
		"strip_html":  StripHTML,
		"html":        SanitizeHTML,
		"single_line": SingleLine,
		"no_control":  RemoveControlChars,
		"email": func(s string) string {
			return strings.ToLower(strings.TrimSpace(s))
		},
		// text is plain user input: no markup, no control characters.
		"text": func(s string) string {
			return RemoveControlChars(StripHTML(s))
		},
	}
)

// Register adds or replaces a named sanitizer usable in `sanitize` tags.
func Register(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct rewrites the string fields of the struct v points to,
// applying the comma-separated sanitizers named in each `sanitize` tag from
// left to right. Nested structs are walked; unknown names are ignored.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	sanitizeStruct(rv.Elem())
	return nil
}

func sanitizeStruct(rv reflect.Value) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(apply(field.String(), tag))
			}
		case reflect.Struct:
			sanitizeStruct(field)
		case reflect.Pointer:
			if !field.IsNil() && field.Elem().Kind() == reflect.Struct {
				sanitizeStruct(field.Elem())
			}
		}
	}
}

func apply(s, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for name := range strings.SplitSeq(tag, ",") {
		if fn, ok := registry[strings.TrimSpace(name)]; ok {
			s = fn(s)
		}
	}
	return s
}

// SingleLine joins lines with single spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops control characters except newline and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
