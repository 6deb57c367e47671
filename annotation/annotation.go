// Package annotation mines field descriptions from contract source files.
//
// A description is a comment of the form
//
//	# @field_name = Description text
//
// (or `// @field_name = ...` in Go sources) written on the line immediately
// above the declaration of that field. Comments separated from the
// declaration by a blank line, or spread over several lines, are not picked up.
package annotation

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/gaborage/paramspec/logger"
)

// DefaultPatterns are the candidate locations probed for a contract source,
// relative to the source root. Each holds one %s for the underscored name.
var DefaultPatterns = []string{
	"contracts/%s.yaml",
	"api/contracts/%s.yaml",
	"models/%s.yaml",
	"internal/contracts/%s.go",
}

var (
	fieldPattern      = regexp.MustCompile(`(?:(?:optional|required)\(:(\w+)\)|(?:Optional|Required)\("(\w+)"\))`)
	annotationPattern = regexp.MustCompile(`^\s*(?:#|//)\s*@(\w+)\s*=\s*(.+)`)

	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// FileSource looks up contract source files under a root directory.
type FileSource struct {
	fsys     fs.FS
	patterns []string
	log      logger.Logger
}

// NewFileSource creates a source rooted at root. An empty root means there is
// no file-backed resolution context and every lookup yields no descriptions.
// A nil or empty patterns slice selects DefaultPatterns.
func NewFileSource(root string, patterns []string, log logger.Logger) *FileSource {
	var fsys fs.FS
	if root != "" {
		fsys = os.DirFS(root)
	}
	return NewFSSource(fsys, patterns, log)
}

// NewFSSource creates a source over an arbitrary file system.
func NewFSSource(fsys fs.FS, patterns []string, log logger.Logger) *FileSource {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	if log == nil {
		log = logger.Nop()
	}
	cp := make([]string, len(patterns))
	copy(cp, patterns)
	return &FileSource{fsys: fsys, patterns: cp, log: log.Component("annotation")}
}

// Descriptions returns the annotated descriptions for the named contract.
// It never fails: a missing or unreadable source yields an empty map.
func (s *FileSource) Descriptions(contractName string) map[string]string {
	path, ok := s.Find(contractName)
	if !ok {
		return map[string]string{}
	}

	data, err := fs.ReadFile(s.fsys, path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Could not read contract source")
		return map[string]string{}
	}

	descriptions := Parse(splitLines(data))
	s.log.Debug().
		Str("contract", contractName).
		Str("path", path).
		Int("descriptions", len(descriptions)).
		Msg("Annotations extracted")
	return descriptions
}

// Find returns the first candidate path that exists for the named contract.
func (s *FileSource) Find(contractName string) (string, bool) {
	if s.fsys == nil || contractName == "" {
		return "", false
	}

	rel := Underscore(contractName)
	for _, pattern := range s.patterns {
		candidate := fmt.Sprintf(pattern, rel)
		info, err := fs.Stat(s.fsys, candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Underscore converts a qualified contract name into a relative path:
// "Api::V1::UserCreateContract" becomes "api/v1/user_create_contract".
// "::", "." and "/" all separate path segments.
func Underscore(name string) string {
	s := strings.ReplaceAll(name, "::", "/")
	s = strings.ReplaceAll(s, ".", "/")
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// Parse scans source lines for annotated field declarations. Only the line
// directly above a declaration is consulted, and its annotation must name
// the declared field.
//
// Annotation text is trimmed, so a whitespace-only annotation is recorded as
// "". Downstream an empty description counts as absent: the Grape adapter
// humanizes the field name rather than emitting an empty desc.
func Parse(lines []string) map[string]string {
	descriptions := make(map[string]string)

	for i, line := range lines {
		m := fieldPattern.FindStringSubmatch(line)
		if m == nil || i == 0 {
			continue
		}
		field := m[1]
		if field == "" {
			field = m[2]
		}

		a := annotationPattern.FindStringSubmatch(lines[i-1])
		if a != nil && a[1] == field {
			descriptions[field] = strings.TrimSpace(a[2])
		}
	}

	return descriptions
}

func splitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
