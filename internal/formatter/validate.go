package formatter

import (
	"net/url"

	"github.com/dmitrymomot/brmask/pkg/mask"
	"github.com/dmitrymomot/brmask/pkg/validator"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 13
)

var kindMessages = map[mask.Kind]string{
	mask.KindPhone: "Telefone inválido. Use o formato: 55 54 99999-9999",
	mask.KindCPF:   "CPF deve conter 11 dígitos.",
	mask.KindCNPJ:  "CNPJ deve conter 14 dígitos.",
	mask.KindCEP:   "CEP deve conter 8 dígitos.",
	mask.KindState: "Estado deve ser a sigla com 2 letras (ex: RS).",
}

// validate checks the formatted values of every registered id. Empty values
// are accepted; checksums are not verified.
func (s *Service) validate(values url.Values) error {
	ids := s.fields.IDs()
	rules := make([]validator.Rule, 0, len(ids))
	for _, id := range ids {
		kind, _ := s.fields.Kind(id)
		if !kind.Valid() {
			continue
		}
		value := values.Get(id)
		rules = append(rules, validator.Optional(value, kindRule(id, kind, value)))
	}
	return validator.Apply(rules...)
}

func kindRule(id string, kind mask.Kind, value string) validator.Rule {
	var rule validator.Rule
	switch kind {
	case mask.KindState:
		rule = validator.Len(id, value, kind.MaxLen())
	case mask.KindPhone:
		rule = validator.LenBetween(id, mask.Digits(value), phoneMinDigits, phoneMaxDigits)
	default:
		rule = validator.Len(id, mask.Digits(value), kind.MaxLen())
	}
	return rule.WithMessage(kindMessages[kind])
}
