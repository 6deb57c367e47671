// Package validation parses the validation tags of Go structs so that a
// struct can serve as a parameter contract. It extracts the metadata that
// contract building needs: the wire name, the Go type, whether the field is
// required or nullable, and any constraints or documentation tags.
package validation

import (
	"reflect"
	"strconv"
	"strings"
)

const (
	trueValue = "true"
)

// TagInfo represents parsed validation tag information from a struct field
type TagInfo struct {
	Name        string            // Go field name
	JSONName    string            // JSON field name (from json tag)
	Type        reflect.Type      // Field type with pointers removed
	Nullable    bool              // Field is declared through a pointer
	Required    bool              // Whether field is required
	Constraints map[string]string // Validation constraints from validate tag
	Description string            // Documentation from doc tag
	Tags        map[string]string // All struct tags for reference
}

// ParseValidationTags extracts validation metadata from a struct type.
// Non-struct types yield no tags.
func ParseValidationTags(t reflect.Type) []TagInfo {
	var tags []TagInfo

	if t == nil {
		return tags
	}

	// Handle pointer types
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		tagInfo := TagInfo{
			Name:        field.Name,
			Type:        field.Type,
			Constraints: make(map[string]string),
			Tags:        make(map[string]string),
		}

		for tagInfo.Type.Kind() == reflect.Pointer {
			tagInfo.Type = tagInfo.Type.Elem()
			tagInfo.Nullable = true
		}

		parseAllStructTags(field.Tag, tagInfo.Tags)

		if json := field.Tag.Get("json"); json != "" {
			parts := strings.Split(json, ",")
			if parts[0] == "-" {
				tagInfo.JSONName = "-"
			} else if parts[0] != "" {
				tagInfo.JSONName = parts[0]
			}
			for _, part := range parts[1:] {
				if strings.TrimSpace(part) == "omitempty" {
					tagInfo.Tags["omitempty"] = trueValue
				}
			}
		}

		if validate := field.Tag.Get("validate"); validate != "" {
			parseValidateTag(validate, tagInfo.Constraints)
		}

		tagInfo.Required = isFieldRequired(tagInfo.Constraints)

		if doc := field.Tag.Get("doc"); doc != "" {
			tagInfo.Description = doc
		} else if description := field.Tag.Get("description"); description != "" {
			tagInfo.Description = description
		}

		tags = append(tags, tagInfo)
	}

	return tags
}

// parseAllStructTags parses all struct tags into a map
func parseAllStructTags(tag reflect.StructTag, tags map[string]string) {
	for _, k := range []string{"json", "validate", "doc", "description"} {
		if v := tag.Get(k); v != "" {
			tags[k] = v
		}
	}
}

// parseValidateTag parses a validate tag into constraint map
func parseValidateTag(validate string, constraints map[string]string) {
	parts := strings.Split(validate, ",")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Simple flags like "required"
		if !strings.Contains(part, "=") {
			constraints[part] = trueValue
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		constraints[key] = strings.Trim(value, `"`)
	}
}

// isFieldRequired mirrors go-playground/validator: a field is required only
// when it carries the required constraint and is not marked omitempty.
func isFieldRequired(constraints map[string]string) bool {
	if _, skip := constraints["omitempty"]; skip {
		return false
	}
	_, required := constraints["required"]
	return required
}

// WireName returns the JSON name of the field, or "" when the json tag does
// not set one.
func (t *TagInfo) WireName() string {
	if t.JSONName == "-" {
		return ""
	}
	return t.JSONName
}

// Ignored reports whether the field is excluded from the wire format.
func (t *TagInfo) Ignored() bool {
	return t.JSONName == "-"
}

// Min returns the minimum value constraint if present
func (t *TagInfo) Min() (int, bool) {
	return t.intConstraint("min")
}

// Max returns the maximum value constraint if present
func (t *TagInfo) Max() (int, bool) {
	return t.intConstraint("max")
}

func (t *TagInfo) intConstraint(key string) (int, bool) {
	raw, ok := t.Constraints[key]
	if !ok {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}

// Enum returns enum values if present
func (t *TagInfo) Enum() ([]string, bool) {
	if enum, ok := t.Constraints["oneof"]; ok {
		values := strings.Fields(enum)
		if len(values) > 0 {
			return values, true
		}
	}
	return nil, false
}

// DateLayout returns the layout of a datetime constraint, e.g. "2006-01-02".
func (t *TagInfo) DateLayout() (string, bool) {
	layout, ok := t.Constraints["datetime"]
	if !ok || layout == "" || layout == trueValue {
		return "", false
	}
	return layout, true
}

// HasFormat returns true if the field has a specific format constraint
func (t *TagInfo) HasFormat(format string) bool {
	constraint, exists := t.Constraints[format]
	return exists && constraint == trueValue
}
