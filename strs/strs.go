// Package strs normalizes arbitrary property and field names into legal,
// non-colliding Go identifiers for generated mapping code.
package strs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize returns s with its first rune mapped to upper case and the rest
// unchanged. Returns s unchanged if it's empty.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Decapitalize returns s with its first rune mapped to lower case and the
// rest unchanged. Returns s unchanged if it's empty.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(first)) + s[size:]
}

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one character.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// Join renders each element of elems in its default string form, separated
// by sep with no leading or trailing separator.
func Join[T any](elems []T, sep string) string {
	sb := &strings.Builder{}
	for i, elem := range elems {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprintf(sb, "%v", elem)
	}
	return sb.String()
}

// JoinFunc is like Join except each element is rendered by extract instead
// of its default string form.
func JoinFunc[T any](elems []T, sep string, extract func(T) string) string {
	sb := &strings.Builder{}
	for i, elem := range elems {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(extract(elem))
	}
	return sb.String()
}

// JoinAndCamelize concatenates segs into a single camelCase identifier: the
// first segment verbatim, every later segment with its first rune
// capitalized, no separator. So ["foo", "bar", "baz"] becomes "fooBarBaz".
func JoinAndCamelize(segs []string) string {
	sb := &strings.Builder{}
	for i, seg := range segs {
		if i == 0 {
			sb.WriteString(seg)
			continue
		}
		sb.WriteString(Capitalize(seg))
	}
	return sb.String()
}

// StubPropertyName strips everything up to the last dot from a qualified
// name and decapitalizes what remains, like "fooBar" for
// "github.com/acme/shop.FooBar".
func StubPropertyName(qualifiedName string) string {
	if idx := strings.LastIndexByte(qualifiedName, '.'); idx >= 0 {
		qualifiedName = qualifiedName[idx+1:]
	}
	return Decapitalize(qualifiedName)
}
