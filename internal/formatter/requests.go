package formatter

import (
	"github.com/dmitrymomot/brmask/pkg/mask"
)

// Client selects which hypermedia attributes the rendered inputs carry.
type Client string

const (
	ClientDataStar Client = "datastar"
	ClientHTMX     Client = "htmx"
)

func parseClient(s string) Client {
	if Client(s) == ClientHTMX {
		return ClientHTMX
	}
	return ClientDataStar
}

// PageRequest is bound from the query string of the form page.
type PageRequest struct {
	Client string `form:"client"`
}

// Signals holds DataStar signals keyed by element id.
type Signals map[string]string

// Profile is the submitted form. Values are normalized through their mask tags.
type Profile struct {
	Name       string `form:"name"`
	Phone      string `form:"id_phone" mask:"phone"`
	CPF        string `form:"id_cpf" mask:"cpf"`
	CNPJ       string `form:"id_cnpj" mask:"cnpj"`
	PostalCode string `form:"id_postal_code" mask:"cep"`
	State      string `form:"id_state" mask:"state"`
	Client     string `form:"client"`
}

// Values maps the masked fields to their canonical element ids.
func (p Profile) Values() map[string]string {
	return map[string]string{
		mask.FieldPhone:      p.Phone,
		mask.FieldCPF:        p.CPF,
		mask.FieldCNPJ:       p.CNPJ,
		mask.FieldPostalCode: p.PostalCode,
		mask.FieldState:      p.State,
	}
}
