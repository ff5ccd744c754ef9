package strs

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeIdentifierName rewrites identifier so that every rune is legal in
// a Go identifier, except that dots survive so dotted property paths can be
// split and camelized later.
//
// Leading underscores and digits are skipped, not replaced, since they can't
// start an identifier. The "[]" array marker becomes the word "Array" to keep
// the hint readable. Every other illegal rune becomes an underscore. If the
// whole string is underscores and digits only the array substitution applies.
func SanitizeIdentifierName(identifier string) string {
	if identifier == "" {
		return identifier
	}
	start := 0
	for start < len(identifier) {
		ch, size := utf8.DecodeRuneInString(identifier[start:])
		if ch != '_' && !unicode.IsDigit(ch) {
			break
		}
		start += size
	}
	if start == len(identifier) {
		return strings.ReplaceAll(identifier, "[]", "Array")
	}

	s := strings.ReplaceAll(identifier[start:], "[]", "Array")
	sb := &strings.Builder{}
	sb.Grow(len(s))
	for _, ch := range s {
		switch {
		case unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.':
			sb.WriteRune(ch)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// SafeVariableName returns a variable name derived from name that's not a Go
// keyword and doesn't collide with any name already bound in the same scope.
//
// The name is sanitized, decapitalized, and camelized on dots, so
// "address.street" becomes "addressStreet". On a collision the first free
// numeric suffix wins, separated by an underscore only when the candidate
// already ends in a digit. Deterministic for identical inputs.
func SafeVariableName(name string, existing ...string) string {
	name = Decapitalize(SanitizeIdentifierName(name))
	name = JoinAndCamelize(strings.Split(name, "."))

	conflicts := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		conflicts[e] = struct{}{}
	}
	taken := func(s string) bool {
		if token.IsKeyword(s) {
			return true
		}
		_, ok := conflicts[s]
		return ok
	}

	if !taken(name) {
		return name
	}
	sep := ""
	if last, _ := utf8.DecodeLastRuneInString(name); unicode.IsDigit(last) {
		sep = "_"
	}
	for c := 1; ; c++ {
		if candidate := name + sep + strconv.Itoa(c); !taken(candidate) {
			return candidate
		}
	}
}
