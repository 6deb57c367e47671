package contract

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaborage/paramspec/rule"
)

const bytesSource = "<bytes>"

var (
	declarationPattern = regexp.MustCompile(`^\s*(required|optional)\(:(\w+)\)(.*)$`)
	macroPattern       = regexp.MustCompile(`^\.(\w+\??)(?:\(([^()]*)\))?`)
)

// document is the YAML layout of a contract file:
//
//	contract: Api::V1::UserCreateContract
//	params:
//	  # @name = The user's full name
//	  - required(:name).filled(:string)
//	  - optional(:email).maybe(:string)
//	  - required(:items).value(:array).each(:hash)
type document struct {
	Contract string      `yaml:"contract"`
	Params   []yaml.Node `yaml:"params"`
}

// LoadFile reads a YAML contract file.
func LoadFile(path string) (*Definition, error) {
	// #nosec G304 - contract paths are supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse reads a YAML contract document.
func Parse(data []byte) (*Definition, error) {
	return parse(bytesSource, data)
}

// LoadDir loads every .yaml and .yml contract file under dir into a registry,
// in lexical path order.
func LoadDir(dir string) (*Registry, error) {
	reg := NewRegistry()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		def, err := LoadFile(path)
		if err != nil {
			return err
		}
		return reg.Register(def)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load contracts from %s: %w", dir, err)
	}
	return reg, nil
}

func parse(source string, data []byte) (*Definition, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Source: source, Reason: err.Error()}
	}
	if strings.TrimSpace(doc.Contract) == "" {
		return nil, &ParseError{Source: source, Reason: "missing contract name"}
	}

	b := &Builder{}
	for i := range doc.Params {
		node := &doc.Params[i]
		if node.Kind != yaml.ScalarNode {
			return nil, &ParseError{Source: source, Line: node.Line, Reason: "declaration must be a string"}
		}
		if err := declare(b, node.Value); err != nil {
			return nil, &ParseError{Source: source, Line: node.Line, Text: node.Value, Reason: err.Error()}
		}
	}

	return &Definition{name: strings.TrimSpace(doc.Contract), rules: b.build()}, nil
}

// declare applies one `required(:name).macro(args)...` declaration to b.
// Every macro of the chain must parse; leftover text is an error.
func declare(b *Builder, text string) error {
	m := declarationPattern.FindStringSubmatch(text)
	if m == nil {
		return fmt.Errorf("expected required(:name) or optional(:name)")
	}

	var kb *KeyBuilder
	if m[1] == "required" {
		kb = b.Required(m[2])
	} else {
		kb = b.Optional(m[2])
	}

	rest := strings.TrimSpace(m[3])
	for first := true; rest != ""; first = false {
		macro := macroPattern.FindStringSubmatch(rest)
		if macro == nil {
			if first {
				return fmt.Errorf("malformed macro %q", rest)
			}
			return fmt.Errorf("unexpected %q after macro chain", rest)
		}
		text := strings.TrimPrefix(macro[0], ".")
		if first {
			applyMacro(kb, macro[1], splitArgs(macro[2]), text)
		} else {
			chainMacro(kb, macro[1], splitArgs(macro[2]), text)
		}
		rest = strings.TrimSpace(rest[len(macro[0]):])
	}
	return nil
}

// applyMacro maps the first macro of a declaration onto the builder. Macros
// or type symbols outside the built-in vocabulary keep their text as an
// opaque value check so it can still be classified.
func applyMacro(kb *KeyBuilder, name string, args []string, text string) {
	t, typed := macroType(args)
	opaque := rule.Opaque{Text: "key[" + kb.name + "](" + text + ")"}

	switch {
	case name == "filled" && len(args) == 0:
		kb.Filled()
	case name == "hash" || name == "schema":
		kb.Hash(nil)
	case !typed:
		kb.Rule(opaque)
	case name == "filled":
		kb.Filled(t)
	case name == "maybe":
		kb.Maybe(t)
	case name == "value":
		kb.Value(t)
	case name == "array" || name == "each":
		kb.Array(t)
	default:
		kb.Rule(opaque)
	}
}

// chainMacro conjoins a macro following the first one, so
// value(:array).each(:hash) reads as array? AND each(hash?).
func chainMacro(kb *KeyBuilder, name string, args []string, text string) {
	t, typed := macroType(args)

	var next rule.Rule
	switch {
	case name == "each" && typed:
		next = rule.Each{Rule: t.Predicate()}
	case name == "filled" && len(args) == 0:
		next = rule.Pred("filled?")
	default:
		next = rule.Opaque{Text: text}
	}

	if kb.body == nil {
		kb.body = next
		return
	}
	kb.body = rule.Conj(kb.body, next)
}

func macroType(args []string) (Type, bool) {
	if len(args) == 0 || !strings.HasPrefix(args[0], ":") {
		return "", false
	}
	return ParseType(args[0])
}

func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
