package strs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		str  string
		want string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Abc", "Abc"},
		{"aBC", "ABC"},
		{"1abc", "1abc"},
		{"ě", "Ě"},
		{"食foo", "食foo"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.str))
		})
	}
}

func TestCapitalize_Idempotent(t *testing.T) {
	for _, s := range []string{"foo", "Foo", "étage", "x1", "_x"} {
		once := Capitalize(s)
		assert.Equal(t, once, Capitalize(once), "capitalize twice for %q", s)
	}
}

func TestDecapitalize(t *testing.T) {
	tests := []struct {
		str  string
		want string
	}{
		{"", ""},
		{"A", "a"},
		{"Abc", "abc"},
		{"abc", "abc"},
		{"ABC", "aBC"},
		{"Ě", "ě"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.want, Decapitalize(tt.str))
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join([]string{}, ", "))
	assert.Equal(t, "foo", Join([]string{"foo"}, ", "))
	assert.Equal(t, "foo, bar", Join([]string{"foo", "bar"}, ", "))
	assert.Equal(t, "1-2-3", Join([]int{1, 2, 3}, "-"))
}

func TestJoinFunc(t *testing.T) {
	type part struct{ name string }
	parts := []part{{"address"}, {"street"}}
	got := JoinFunc(parts, ".", func(p part) string { return p.name })
	assert.Equal(t, "address.street", got)
	assert.Equal(t, "", JoinFunc(nil, ".", func(p part) string { return p.name }))
}

func TestJoinAndCamelize(t *testing.T) {
	tests := []struct {
		segs []string
		want string
	}{
		{nil, ""},
		{[]string{"foo"}, "foo"},
		{[]string{"foo", "bar", "baz"}, "fooBarBaz"},
		{[]string{"address", "street"}, "addressStreet"},
		{[]string{"Foo", "bar"}, "FooBar"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinAndCamelize(tt.segs))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" "))
	assert.False(t, IsNotEmpty(""))
	assert.True(t, IsNotEmpty("x"))
}

func TestStubPropertyName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"github.com/acme/shop.FooBar", "fooBar"},
		{"com.foo.bar.baz.FooBar", "fooBar"},
		{"FooBar", "fooBar"},
		{"foo", "foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StubPropertyName(tt.name))
		})
	}
}
