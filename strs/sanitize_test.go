package strs

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentifierName(t *testing.T) {
	tests := []struct {
		str  string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"123abc", "abc"},
		{"_abc", "abc"},
		{"__1_abc", "abc"},
		{"123", "123"},
		{"___", "___"},
		{"_1_", "_1_"},
		{"foo[]", "fooArray"},
		{"1foo[]", "fooArray"},
		{"[]", "Array"},
		{"address.street", "address.street"},
		{"foo@bar", "foo_bar"},
		{"foo bar!", "foo_bar_"},
		{"foo-bar.baz", "foo_bar.baz"},
		{"T食", "T食"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeIdentifierName(tt.str))
		})
	}
}

func TestSafeVariableName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"foo", nil, "foo"},
		{"Foo", nil, "foo"},
		{"type", nil, "type1"},
		{"func", nil, "func1"},
		{"fooBar", []string{"fooBar"}, "fooBar1"},
		{"fooBar", []string{"fooBar", "fooBar1"}, "fooBar2"},
		{"foo1", []string{"foo1"}, "foo1_1"},
		{"address.street", nil, "addressStreet"},
		{"props.font", nil, "propsFont"},
		{"123abc", nil, "abc"},
		{"foo[]", nil, "fooArray"},
		{"foo bar", nil, "foo_bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"="+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeVariableName(tt.name, tt.existing...))
		})
	}
}

func TestSafeVariableName_NeverConflicts(t *testing.T) {
	existing := []string{"name", "name1", "name2", "name3"}
	got := SafeVariableName("name", existing...)
	assert.NotContains(t, existing, got)
	assert.False(t, token.IsKeyword(got))
	assert.Equal(t, "name4", got)
}

func TestSafeVariableName_Deterministic(t *testing.T) {
	existing := []string{"fooBar", "fooBar1"}
	first := SafeVariableName("foo.bar", existing...)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SafeVariableName("foo.bar", existing...))
	}
}
