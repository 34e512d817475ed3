// Package css models declarative style output as structured values.
// Resolution logic builds declaration lists and component values here and
// leaves final stylesheet syntax to whoever consumes them, so geometry
// and default-resolution code stays testable independent of formatting.
package css

import (
	"strconv"
	"strings"
)

// Declaration is a single property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// PropertySet is an ordered collection of declarations. Setting a
// property that is already present overwrites its value in place, so
// declaration order stays stable under repeated updates.
type PropertySet struct {
	decls []Declaration
}

// Set stores value under property, overwriting an earlier declaration
// for the same property.
func (ps *PropertySet) Set(property, value string) {
	for i := range ps.decls {
		if ps.decls[i].Property == property {
			ps.decls[i].Value = value
			return
		}
	}
	ps.decls = append(ps.decls, Declaration{Property: property, Value: value})
}

// Get returns the current value for property.
func (ps *PropertySet) Get(property string) (string, bool) {
	for _, d := range ps.decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Decls returns the declarations in insertion order. The returned slice
// is owned by the set and must not be modified.
func (ps *PropertySet) Decls() []Declaration {
	return ps.decls
}

// Empty reports whether the set holds no declarations.
func (ps *PropertySet) Empty() bool {
	return len(ps.decls) == 0
}

// String serializes the set as "property: value; ..." inline-style text.
func (ps *PropertySet) String() string {
	var b strings.Builder
	for i, d := range ps.decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";")
	}
	return b.String()
}

// FormatFloat renders v with at most three decimal places, trailing
// zeros trimmed. "1.5", "0.333", "2".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// FormatInt renders v in decimal.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// Px renders v as a pixel dimension.
func Px(v float64) string {
	return FormatFloat(v) + "px"
}

// Deg renders v as a degree dimension.
func Deg(v float64) string {
	return FormatFloat(v) + "deg"
}

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func escapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// genericFamilies are CSS-defined family keywords that must not be quoted.
var genericFamilies = map[string]bool{
	"serif":      true,
	"sans-serif": true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
}

// FontFamilyList renders a font-family value from a list of family
// names. Concrete names are double-quoted and escaped; generic family
// keywords are emitted bare.
func FontFamilyList(families []string) string {
	var b strings.Builder
	for i, f := range families {
		if i > 0 {
			b.WriteString(", ")
		}
		if genericFamilies[f] {
			b.WriteString(f)
		} else {
			b.WriteString(`"`)
			b.WriteString(escapeDoubleQuoted(f))
			b.WriteString(`"`)
		}
	}
	return b.String()
}
