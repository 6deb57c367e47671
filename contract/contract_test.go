package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/paramspec/rule"
)

func printed(t *testing.T, d *Definition, name string) string {
	t.Helper()
	r, ok := d.Rule(name)
	require.True(t, ok, "rule %s should exist", name)
	return r.String()
}

func TestDefineBuildsRulesInDeclarationOrder(t *testing.T) {
	d := Define("UserContract", func(s *Builder) {
		s.Required("name").Filled(String)
		s.Required("age").Filled(Integer)
		s.Optional("email").Maybe(String)
		s.Required("tags").Array(String)
		s.Required("items").ArrayOf(func(i *Builder) {
			i.Required("sku").Filled(String)
		})
		s.Optional("meta").Hash(nil)
		s.Required("token")
		s.Optional("note")
		s.Required("score").Value(Float)
		s.Required("custom").Rule(rule.Pred("uuid?"))
		s.Required("present").Filled()
	})

	assert.Equal(t, "UserContract", d.Name())

	names := make([]string, 0)
	for _, nr := range d.Rules() {
		names = append(names, nr.Name)
	}
	assert.Equal(t, []string{"name", "age", "email", "tags", "items", "meta", "token", "note", "score", "custom", "present"}, names)

	assert.Equal(t, "key?(:name) AND key[name](str? AND filled?)", printed(t, d, "name"))
	assert.Equal(t, "key?(:email) THEN key[email](nil? OR str?)", printed(t, d, "email"))
	assert.Equal(t, "key?(:tags) AND key[tags](array? AND each(str?))", printed(t, d, "tags"))
	assert.Equal(t, "key?(:items) AND key[items](array? AND each(hash? AND set(key?(:sku) AND key[sku](str? AND filled?))))", printed(t, d, "items"))
	assert.Equal(t, "key?(:meta) THEN key[meta](hash?)", printed(t, d, "meta"))
	assert.Equal(t, "key?(:token)", printed(t, d, "token"))
	assert.Equal(t, "key?(:note) THEN key[note](any?)", printed(t, d, "note"))
	assert.Equal(t, "key?(:score) AND key[score](float?)", printed(t, d, "score"))
	assert.Equal(t, "key?(:custom) AND key[custom](uuid?)", printed(t, d, "custom"))
	assert.Equal(t, "key?(:present) AND key[present](filled?)", printed(t, d, "present"))

	_, ok := d.Rule("missing")
	assert.False(t, ok)
}

func TestDefineRedeclarationKeepsPosition(t *testing.T) {
	d := Define("C", func(s *Builder) {
		s.Required("a").Filled(String)
		s.Required("b").Filled(String)
		s.Optional("a").Maybe(Integer)
	})

	rules := d.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Name)
	assert.Equal(t, "key?(:a) THEN key[a](nil? OR int?)", rules[0].Rule.String())
}

func TestRulesReturnsCopy(t *testing.T) {
	d := Define("C", func(s *Builder) { s.Required("a").Filled(String) })

	rules := d.Rules()
	rules[0].Name = "changed"

	assert.Equal(t, "a", d.Rules()[0].Name)
	assert.Empty(t, Define("Empty", nil).Rules())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
		known    bool
	}{
		{":string", String, true},
		{"str", String, true},
		{":int", Integer, true},
		{":integer", Integer, true},
		{":bool", Bool, true},
		{":boolean", Bool, true},
		{":date_time", DateTime, true},
		{" :hash ", Hash, true},
		{":uuid", Type("uuid"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, known := ParseType(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.known, known)
		})
	}

	assert.Equal(t, "uuid?", Type("uuid").Predicate().String())
	assert.Equal(t, "date_time?", DateTime.Predicate().String())
}

func TestRegistry(t *testing.T) {
	a := Define("B::Second", nil)
	b := Define("A::First", nil)

	reg := NewRegistry(a, b)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"B::Second", "A::First"}, reg.Names())
	assert.Equal(t, []string{"A::First", "B::Second"}, reg.SortedNames())

	got, err := reg.Lookup("A::First")
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = reg.Lookup("Nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContractNotFound))
	assert.Contains(t, err.Error(), "Nope")

	err = reg.Register(Define("A::First", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContract))

	assert.Panics(t, func() { NewRegistry(a, a) })
}
