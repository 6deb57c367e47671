package reflection

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sampleType struct{}

func TestIndirect(t *testing.T) {
	var pp **sampleType
	assert.Equal(t, reflect.TypeOf(sampleType{}), Indirect(reflect.TypeOf(pp)))
	assert.Nil(t, Indirect(nil))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    reflect.Type
		expected string
	}{
		{name: "local_struct", input: reflect.TypeOf(sampleType{}), expected: "reflection.sampleType"},
		{name: "pointer", input: reflect.TypeOf(&sampleType{}), expected: "reflection.sampleType"},
		{name: "stdlib", input: reflect.TypeOf(time.Time{}), expected: "time.Time"},
		{name: "builtin", input: reflect.TypeOf(0), expected: "int"},
		{name: "unnamed", input: reflect.TypeOf(struct{}{}), expected: ""},
		{name: "nil", input: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeName(tt.input))
		})
	}
}

func TestIsNamed(t *testing.T) {
	assert.True(t, IsNamed(reflect.TypeOf(&time.Time{}), "time", "Time"))
	assert.False(t, IsNamed(reflect.TypeOf(time.Duration(0)), "time", "Time"))
	assert.False(t, IsNamed(nil, "time", "Time"))
}
