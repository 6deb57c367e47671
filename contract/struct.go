package contract

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/gaborage/paramspec/internal/reflection"
	"github.com/gaborage/paramspec/rule"
	"github.com/gaborage/paramspec/validation"
)

var timeType = reflect.TypeOf(time.Time{})

// FromStruct derives a contract from the exported fields of a struct value
// or type. Keys come from json tags, falling back to the snake_cased field
// name. A key is required when its validate tag says "required" without
// "omitempty"; every other key is optional. When name is empty the
// package-qualified type name is used.
func FromStruct(name string, v any) (*Definition, error) {
	t := reflect.TypeOf(v)
	if rt, ok := v.(reflect.Type); ok {
		t = rt
	}
	if reflection.Indirect(t) == nil || reflection.Indirect(t).Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a struct", ErrInvalidContract, v)
	}
	if name == "" {
		name = reflection.TypeName(t)
	}

	def := &Definition{name: name, descriptions: make(map[string]string)}
	for _, tag := range validation.ParseValidationTags(t) {
		if tag.Ignored() {
			continue
		}
		key := tag.WireName()
		if key == "" {
			key = strcase.ToSnake(tag.Name)
		}

		def.rules = append(def.rules, NamedRule{Name: key, Rule: structFieldRule(key, &tag)})
		if tag.Description != "" {
			def.descriptions[key] = tag.Description
		}
	}

	return def, nil
}

func structFieldRule(key string, tag *validation.TagInfo) rule.Rule {
	presence := rule.HasKey(key)
	check := typeRule(tag.Type)
	if _, ok := tag.DateLayout(); ok {
		check = Date.Predicate()
	}

	if tag.Required {
		return rule.Conj(presence, rule.Key{Name: key, Rule: rule.Conj(check, rule.Pred("filled?"))})
	}
	if tag.Nullable {
		check = rule.Disj(Nil.Predicate(), check)
	}
	return rule.Implication{Left: presence, Right: rule.Key{Name: key, Rule: check}}
}

// typeRule maps a Go type onto the type-check predicate a contract would
// declare for it.
func typeRule(t reflect.Type) rule.Rule {
	t = reflection.Indirect(t)
	if t == timeType {
		return Time.Predicate()
	}
	if strings.HasSuffix(t.Name(), "Decimal") {
		return Decimal.Predicate()
	}

	switch t.Kind() {
	case reflect.String:
		return String.Predicate()
	case reflect.Bool:
		return Bool.Predicate()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer.Predicate()
	case reflect.Float32, reflect.Float64:
		return Float.Predicate()
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return String.Predicate()
		}
		return rule.Conj(Array.Predicate(), rule.Each{Rule: typeRule(t.Elem())})
	case reflect.Map, reflect.Struct:
		return Hash.Predicate()
	default:
		return Any.Predicate()
	}
}
