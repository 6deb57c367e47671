// Package reflection provides internal helpers for naming Go types used as contracts.
package reflection

import (
	"reflect"
	"strings"
)

// Indirect strips any number of pointer levels from t.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// TypeName returns the package-qualified type name using the last element of
// the package path, e.g. "contracts.UserCreate". Builtin and unnamed types
// return their bare name, which may be empty.
func TypeName(t reflect.Type) string {
	t = Indirect(t)
	if t == nil {
		return ""
	}

	pkg := t.PkgPath()
	if pkg == "" {
		return t.Name()
	}

	if lastSlash := strings.LastIndex(pkg, "/"); lastSlash >= 0 {
		pkg = pkg[lastSlash+1:]
	}

	return pkg + "." + t.Name()
}

// IsNamed reports whether t, with pointers removed, is the named type
// pkgPath.name.
func IsNamed(t reflect.Type, pkgPath, name string) bool {
	t = Indirect(t)
	return t != nil && t.PkgPath() == pkgPath && t.Name() == name
}
