// Package property models a single resolved step of a dotted property path,
// like the "street" in "address.street", together with the capabilities
// needed to read it.
package property

import (
	"github.com/structmap/mapgen/accessor"
	"github.com/structmap/mapgen/gotype"
	"github.com/structmap/mapgen/strs"
)

// Entry is one resolved property access step: the dotted name path of the
// property, its read accessor, an optional presence checker, and its value
// type. An Entry is immutable after construction.
//
// Two entries are equal exactly when their paths are equal; the accessors
// and the type deliberately stay out of the comparison so that the same
// path resolved through different routes collapses to one entry. Entry
// holds a slice and can't be a map key itself; use FullName as the key
// form.
type Entry struct {
	fullName        []string
	readAccessor    accessor.ReadAccessor
	presenceChecker accessor.PresenceChecker
	typ             gotype.Type
}

// ForSourceReference creates an entry for a property step resolved from a
// source reference. fullName must not be empty and must not be mutated by
// the caller afterwards; the entry keeps its own copy. presenceChecker may
// be nil when the property has no presence-check concept.
func ForSourceReference(
	fullName []string,
	readAccessor accessor.ReadAccessor,
	presenceChecker accessor.PresenceChecker,
	typ gotype.Type,
) Entry {
	name := make([]string, len(fullName))
	copy(name, fullName)
	return Entry{
		fullName:        name,
		readAccessor:    readAccessor,
		presenceChecker: presenceChecker,
		typ:             typ,
	}
}

// Name returns the last segment of the path.
func (e Entry) Name() string {
	return e.fullName[len(e.fullName)-1]
}

// ReadAccessor returns the capability that reads this property.
func (e Entry) ReadAccessor() accessor.ReadAccessor {
	return e.readAccessor
}

// PresenceChecker returns the capability that tests whether this property
// is set, or nil when the property has none.
func (e Entry) PresenceChecker() accessor.PresenceChecker {
	return e.presenceChecker
}

// Type returns the value type of this property step.
func (e Entry) Type() gotype.Type {
	return e.typ
}

// FullName renders the path segments joined by dots, like "address.street".
// Equal entries render equal full names, so FullName serves as the map key
// form of an entry.
func (e Entry) FullName() string {
	return strs.Join(e.fullName, ".")
}

// Path returns a copy of the path segments.
func (e Entry) Path() []string {
	path := make([]string, len(e.fullName))
	copy(path, e.fullName)
	return path
}

// Equal reports whether both entries address the same property path,
// regardless of how each was resolved.
func (e Entry) Equal(o Entry) bool {
	if len(e.fullName) != len(o.fullName) {
		return false
	}
	for i, seg := range e.fullName {
		if o.fullName[i] != seg {
			return false
		}
	}
	return true
}

func (e Entry) String() string {
	typ := ""
	if e.typ != nil {
		typ = e.typ.BaseName()
	}
	return typ + " " + e.FullName()
}
