// Package mask formats Brazilian form input (phone, CPF, CNPJ, CEP and state)
// into the display pattern users expect while they type.
//
// Each field kind is described by a Rule: a maximum length and an ordered list
// of digit segments, each preceded by a literal separator. One generic routine
// consumes the rule table, so there is no per-kind formatting code:
//
//	mask.Format("11954999999", mask.KindPhone)  // "11 95 49999-9999"
//	mask.Format("12345678901", mask.KindCPF)    // "123.456.789-01"
//	mask.Format("12345678000199", mask.KindCNPJ) // "12.345.678/0001-99"
//	mask.Format("01310100", mask.KindCEP)       // "01310-100"
//	mask.Format("sp", mask.KindState)           // "SP"
//
// A separator is only written when at least one digit falls into the segment
// after it, so partial input never ends with a dangling separator. Input is
// cleaned and truncated before it is formatted, which makes every rule
// idempotent: formatting an already formatted value returns it unchanged.
//
// # Fields
//
// Fields binds HTML element identifiers to kinds. DefaultFields returns the
// canonical set (id_phone, id_cpf, id_cnpj, id_postal_code, id_state).
// Identifiers missing from a document are skipped silently:
//
//	b := mask.DefaultFields().Attach("id_cpf", "id_email")
//	v, ok := b.Apply("id_cpf", "12345678901") // "123.456.789-01", true
//	_, ok = b.Apply("id_phone", "119")        // "", false
//
// # Structs
//
// Struct formats tagged string fields of a struct in place:
//
//	type Profile struct {
//		CPF   string `mask:"cpf"`
//		State string `mask:"state"`
//	}
//
// No checksum validation is performed; a well-shaped but invalid CPF is
// formatted like any other.
package mask
