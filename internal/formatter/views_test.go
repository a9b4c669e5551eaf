package formatter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brmask/internal/formatter"
	"github.com/dmitrymomot/brmask/pkg/mask"
)

func TestNewInputParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind        mask.Kind
		label       string
		placeholder string
		maxLength   int
	}{
		{mask.KindPhone, "Telefone", "00 00 00000-0000", 0},
		{mask.KindCPF, "CPF", "000.000.000-00", 0},
		{mask.KindCNPJ, "CNPJ", "00.000.000/0000-00", 0},
		{mask.KindCEP, "CEP", "00000-000", 0},
		{mask.KindState, "UF", "RS", 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			p := formatter.NewInputParams("id_x", tt.kind, "", formatter.ClientDataStar)
			assert.Equal(t, tt.label, p.Label)
			assert.Equal(t, tt.placeholder, p.Placeholder)
			assert.Equal(t, tt.maxLength, p.MaxLength)
		})
	}
}

func TestInput(t *testing.T) {
	t.Parallel()

	t.Run("escapes the value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := formatter.NewInputParams(mask.FieldCPF, mask.KindCPF, `"><script>`, formatter.ClientHTMX)
		require.NoError(t, formatter.Input(p).Render(context.Background(), &buf))

		assert.NotContains(t, buf.String(), "<script>")
		assert.Contains(t, buf.String(), `inputmode="numeric"`)
	})

	t.Run("state input", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := formatter.NewInputParams(mask.FieldState, mask.KindState, "SP", formatter.ClientDataStar)
		require.NoError(t, formatter.Input(p).Render(context.Background(), &buf))

		assert.Contains(t, buf.String(), `autocapitalize="characters"`)
		assert.Contains(t, buf.String(), `maxlength="2"`)
		assert.Contains(t, buf.String(), `data-bind="id_state"`)
	})

	t.Run("digit kinds render no maxlength", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []mask.Kind{mask.KindPhone, mask.KindCPF, mask.KindCNPJ, mask.KindCEP} {
			var buf bytes.Buffer
			p := formatter.NewInputParams("id_x", kind, "+55 (54) 99999-9999", formatter.ClientHTMX)
			require.NoError(t, formatter.Input(p).Render(context.Background(), &buf))

			assert.NotContains(t, buf.String(), "maxlength", "kind %s", kind)
		}
	})

	t.Run("error messages mark the input", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := formatter.NewInputParams(mask.FieldCPF, mask.KindCPF, "123", formatter.ClientHTMX)
		p.Errors = []string{"CPF deve conter 11 dígitos."}
		require.NoError(t, formatter.Input(p).Render(context.Background(), &buf))

		assert.Contains(t, buf.String(), `aria-invalid="true"`)
		assert.Contains(t, buf.String(), `aria-describedby="id_cpf-error"`)
	})
}
