// Package gotype models the Go value types attached to resolved property
// steps. The naming core stores and renders these types; it never resolves
// them against a real type system.
package gotype

import (
	"regexp"
	"strings"
)

// Type is a Go type.
type Type interface {
	// QualifyRel qualifies the type relative to another pkgPath. If this type's
	// package path is the same, return the BaseName. Otherwise, qualify the
	// type with Package.
	QualifyRel(pkgPath string) string
	// Import returns the full package path, like "github.com/acme/shop".
	// Empty for builtin types.
	Import() string
	// Package returns the last part of the package path like "shop" for the
	// package "github.com/acme/shop". Empty for builtin types.
	Package() string
	// BaseName returns the base name of the type, like the "Foo" in:
	//   type Foo int
	BaseName() string
}

type (
	// OpaqueType is a type where only the name is known, like a builtin or a
	// caller-provided named type.
	OpaqueType struct {
		PkgPath string // fully qualified package path, like "github.com/acme/shop"
		Pkg     string // last part of the package path, empty for builtin types
		Name    string // type name, possibly with a leading "[]"
	}

	// ArrayType is a Go slice type.
	ArrayType struct {
		PkgPath string
		Pkg     string
		Name    string // slice name with leading brackets, like "[]Foo"
		Elem    Type   // element type of the slice, like int for []int
	}
)

func (o OpaqueType) QualifyRel(pkgPath string) string { return qualifyRel(o, pkgPath) }
func (o OpaqueType) Import() string                   { return o.PkgPath }
func (o OpaqueType) Package() string                  { return o.Pkg }
func (o OpaqueType) BaseName() string                 { return o.Name }

func (a ArrayType) QualifyRel(pkgPath string) string { return qualifyRel(a, pkgPath) }
func (a ArrayType) Import() string                   { return a.PkgPath }
func (a ArrayType) Package() string                  { return a.Pkg }
func (a ArrayType) BaseName() string                 { return a.Name }

func qualifyRel(typ Type, otherPkgPath string) string {
	if typ.Import() == otherPkgPath || typ.Import() == "" || typ.Package() == "" {
		return typ.BaseName()
	}
	if !strings.ContainsRune(otherPkgPath, '.') && typ.Package() == otherPkgPath {
		// If the otherPkgPath is unqualified and matches the package path,
		// assume the same package.
		return typ.BaseName()
	}
	sb := strings.Builder{}
	sb.Grow(len(typ.Package()) + 1 + len(typ.BaseName()))
	sb.WriteString(typ.Package())
	sb.WriteRune('.')
	sb.WriteString(typ.BaseName())
	return sb.String()
}

// NewOpaqueType creates an OpaqueType by parsing a fully qualified Go type
// like "github.com/acme/shop.Address", or a builtin type like "string".
// A leading "[]" marks a slice of the qualified type.
func NewOpaqueType(qualType string) OpaqueType {
	if !strings.ContainsRune(qualType, '.') {
		return OpaqueType{Name: qualType} // builtin type like "string"
	}
	isArr := strings.HasPrefix(qualType, "[]")
	if isArr {
		qualType = qualType[2:]
	}
	idx := strings.LastIndexByte(qualType, '.')
	name := qualType[idx+1:]
	if isArr {
		name = "[]" + name
	}
	pkgPath := qualType[:idx]
	return OpaqueType{
		PkgPath: pkgPath,
		Pkg:     ExtractShortPackage(pkgPath),
		Name:    name,
	}
}

// NewArrayType creates the slice type of elem.
func NewArrayType(elem Type) ArrayType {
	return ArrayType{
		PkgPath: elem.Import(),
		Pkg:     elem.Package(),
		Name:    "[]" + elem.BaseName(),
		Elem:    elem,
	}
}

var majorVersionRegexp = regexp.MustCompile(`^v[0-9]+$`)

// ExtractShortPackage gets the last part of a package path like "shop" in
// "github.com/acme/shop", skipping major version suffixes like "v2".
func ExtractShortPackage(pkgPath string) string {
	parts := strings.Split(pkgPath, "/")
	shortPkg := parts[len(parts)-1]
	if len(parts) > 1 && majorVersionRegexp.MatchString(shortPkg) {
		shortPkg = parts[len(parts)-2]
	}
	return shortPkg
}
