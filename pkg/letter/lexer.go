package letter

import "strings"

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenVar
	tokenIf
	tokenEndIf
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
	ifPrefix   = "#if "
	endIfTag   = "/if"
)

// token is a lexed piece of a template. raw always holds the exact source text
// so that any token can fall back to a literal.
type token struct {
	raw  string
	name Field
	kind tokenKind
}

// lex splits a template body into text and tag tokens. Anything between
// delimiters that is not a valid tag is emitted as text.
func lex(src string) []token {
	var (
		tokens []token
		text   strings.Builder
	)

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{kind: tokenText, raw: text.String()})
			text.Reset()
		}
	}

	for len(src) > 0 {
		start := strings.Index(src, openDelim)
		if start < 0 {
			text.WriteString(src)
			break
		}
		text.WriteString(src[:start])
		src = src[start:]

		end := strings.Index(src[len(openDelim):], closeDelim)
		if end < 0 {
			text.WriteString(src)
			break
		}
		inner := src[len(openDelim) : len(openDelim)+end]
		raw := src[:len(openDelim)+end+len(closeDelim)]

		tok, ok := classify(inner, raw)
		if !ok {
			// Re-scan from the next byte so "{{{{name}}" still yields a tag.
			text.WriteByte(src[0])
			src = src[1:]
			continue
		}

		flush()
		tokens = append(tokens, tok)
		src = src[len(raw):]
	}
	flush()

	return tokens
}

func classify(inner, raw string) (token, bool) {
	switch {
	case inner == endIfTag:
		return token{kind: tokenEndIf, raw: raw}, true
	case strings.HasPrefix(inner, ifPrefix):
		name := inner[len(ifPrefix):]
		if !isIdentifier(name) {
			return token{}, false
		}
		return token{kind: tokenIf, raw: raw, name: Field(name)}, true
	case isIdentifier(inner):
		return token{kind: tokenVar, raw: raw, name: Field(inner)}, true
	}
	return token{}, false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
