package mask

import (
	"maps"
	"net/url"
	"slices"
)

// Canonical element identifiers rendered by server-side form libraries.
const (
	FieldPhone      = "id_phone"
	FieldCPF        = "id_cpf"
	FieldCNPJ       = "id_cnpj"
	FieldPostalCode = "id_postal_code"
	FieldState      = "id_state"
)

// Fields maps element identifiers to the kind formatting them.
// A Fields value is read-only once shared and safe for concurrent use.
type Fields map[string]Kind

// DefaultFields returns a fresh copy of the canonical field set.
func DefaultFields() Fields {
	return Fields{
		FieldPhone:      KindPhone,
		FieldCPF:        KindCPF,
		FieldCNPJ:       KindCNPJ,
		FieldPostalCode: KindCEP,
		FieldState:      KindState,
	}
}

// Kind returns the kind bound to id.
func (f Fields) Kind(id string) (Kind, bool) {
	k, ok := f[id]
	return k, ok
}

// IDs returns the bound identifiers in sorted order.
func (f Fields) IDs() []string {
	return slices.Sorted(maps.Keys(f))
}

// Merge returns a new Fields with other's bindings layered over f.
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	maps.Copy(out, f)
	maps.Copy(out, other)
	return out
}

// Attach binds a formatter to every registered identifier found in present.
// Identifiers missing from the document are skipped without error.
func (f Fields) Attach(present ...string) Bindings {
	b := make(Bindings, len(present))
	for _, id := range present {
		kind, ok := f[id]
		if !ok {
			continue
		}
		if fn, err := Formatter(kind); err == nil {
			b[id] = fn
		}
	}
	return b
}

// Format formats value with the kind bound to id.
// The bool is false when id is not registered.
func (f Fields) Format(id, value string) (string, bool) {
	kind, ok := f[id]
	if !ok || !kind.Valid() {
		return "", false
	}
	return Format(value, kind), true
}

// FormatValues reformats, in place, every value whose key is a registered id.
// Unregistered keys are left untouched.
func (f Fields) FormatValues(values url.Values) {
	for id, vs := range values {
		kind, ok := f[id]
		if !ok || !kind.Valid() {
			continue
		}
		for i, v := range vs {
			vs[i] = Format(v, kind)
		}
	}
}

// FormatMap formats the registered keys of values and returns only those.
func (f Fields) FormatMap(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for id, v := range values {
		if formatted, ok := f.Format(id, v); ok {
			out[id] = formatted
		}
	}
	return out
}

// Bindings holds the formatters attached to the identifiers of one document.
type Bindings map[string]func(string) string

// Apply runs the formatter attached to id.
// The bool is false when id was not attached.
func (b Bindings) Apply(id, value string) (string, bool) {
	fn, ok := b[id]
	if !ok {
		return "", false
	}
	return fn(value), true
}

// IDs returns the attached identifiers in sorted order.
func (b Bindings) IDs() []string {
	return slices.Sorted(maps.Keys(b))
}
