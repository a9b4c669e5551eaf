// Package validator collects rule violations for form input.
//
// A Rule pairs a check with the error reported when it fails. Apply runs
// every rule and returns all failures at once as ValidationErrors, so a form
// can show one message per field:
//
//	err := validator.Apply(
//		validator.Optional(cpf, validator.Len("id_cpf", mask.Digits(cpf), 11).
//			WithMessage("CPF deve conter 11 dígitos.")),
//		validator.Optional(uf, validator.Len("id_state", uf, 2)),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		messages := errs.Messages() // field -> messages
//	}
//
// ValidationErrors matches ErrValidationFailed with errors.Is.
package validator
