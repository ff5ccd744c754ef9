// Package difftest compares values in tests with go-cmp so that types with
// an Equal method, like property.Entry, compare by their own contract.
package difftest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertSame fails the test with a readable diff when want and got differ.
func AssertSame(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	allOpts := append([]cmp.Option{
		cmpopts.EquateEmpty(), // nil compares same as a 0-sized slice
	}, opts...)
	if diff := cmp.Diff(want, got, allOpts...); diff != "" {
		t.Errorf("mismatch (-want +got)\n%s", diff)
	}
}
