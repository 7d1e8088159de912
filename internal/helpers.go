package internal

import "strconv"

// ContextValue returns the value stored under key, or the zero value of T
// when the key is missing or holds another type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// QueryDefault retrieves a typed query parameter with a default value.
// Returns defaultValue if the parameter is empty or cannot be parsed.
func QueryDefault[T string | int | bool](c Context, name string, defaultValue T) T {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, ok := convertParam[T](raw)
	if !ok {
		return defaultValue
	}
	return v
}

func convertParam[T string | int | bool](raw string) (T, bool) {
	var zero T
	var v any
	switch any(zero).(type) {
	case string:
		v = raw
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return zero, false
		}
		v = n
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, false
		}
		v = b
	default:
		return zero, false
	}
	return v.(T), true
}
