// Package flags adds flag types missing from the standard flag package.
package flags

import (
	"flag"
	"strings"
)

// Strings returns a repeated string flag that accumulates every occurrence
// into a slice.
func Strings(fset *flag.FlagSet, name string, value []string, usage string) *[]string {
	rv := &repeatedValue{values: &value}
	fset.Var(rv, name, usage)
	return rv.values
}

type repeatedValue struct {
	values *[]string
}

// String implements flag.Value and fmt.Stringer.
func (rv *repeatedValue) String() string {
	if rv.values == nil {
		return ""
	}
	return strings.Join(*rv.values, ",")
}

// Get implements flag.Getter.
func (rv *repeatedValue) Get() interface{} {
	return *rv.values
}

// Set implements flag.Value.
func (rv *repeatedValue) Set(value string) error {
	*rv.values = append(*rv.values, value)
	return nil
}
