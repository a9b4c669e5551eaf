package mask

import (
	"fmt"
	"strings"
)

// Kind identifies a formatting rule.
type Kind string

const (
	KindPhone Kind = "phone"
	KindCPF   Kind = "cpf"
	KindCNPJ  Kind = "cnpj"
	KindCEP   Kind = "cep"
	KindState Kind = "state"
)

// kindAliases maps alternative names used by form libraries to kinds.
var kindAliases = map[string]Kind{
	"postal_code": KindCEP,
	"uf":          KindState,
}

// Kinds returns every supported kind in table order.
func Kinds() []Kind {
	return []Kind{KindPhone, KindCPF, KindCNPJ, KindCEP, KindState}
}

// ParseKind resolves a kind name case-insensitively, accepting aliases.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	k := Kind(n)
	if _, ok := rules[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Valid reports whether k has a rule.
func (k Kind) Valid() bool {
	_, ok := rules[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// MaxLen returns the maximum number of characters kept for k, or 0 for unknown kinds.
func (k Kind) MaxLen() int {
	r, _ := RuleFor(k)
	return r.MaxLen
}
