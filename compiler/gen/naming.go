package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

// Entity holds the canonical name forms of one scaffolded entity.
// All three derived forms are computed exactly once per invocation;
// every artifact substitutes from this value and never re-derives a
// name form on its own.
type Entity struct {
	// Raw is the name as supplied by the caller.
	Raw string
	// Singular is the capitalized singular form, e.g. "Order".
	Singular string
	// Plural is the capitalized plural form, e.g. "Orders".
	Plural string
	// Camel is Singular with its first letter lowered, e.g. "order".
	Camel string
}

// ResolveEntity normalizes a raw entity name into its canonical forms.
// The plural is derived by a single deliberate suffix rule: a base
// already ending in "s" is treated as plural and its singular is the
// base minus the trailing "s"; otherwise the plural is the base plus
// "s". The rule is naive on words like "status" (singular "Statu") and
// that behavior is contractual; callers wanting linguistic pluralization
// must pre-singularize the input.
func ResolveEntity(raw string) (Entity, error) {
	if raw == "" {
		return Entity{}, NewNameError(raw, "name is empty")
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if !unicode.IsLetter(r) {
		return Entity{}, NewNameError(raw, "name must start with a letter")
	}
	base := inflect.Capitalize(raw)
	e := Entity{Raw: raw}
	if strings.HasSuffix(base, "s") && len(base) > 1 {
		e.Plural = base
		e.Singular = base[:len(base)-1]
	} else {
		e.Singular = base
		e.Plural = base + "s"
	}
	e.Camel = lowerFirst(e.Singular)
	return e, nil
}

// lowerFirst lowers the first letter of a string. Counterpart of
// inflect.Capitalize for the camel form.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
