package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brmask/pkg/mask"
)

func TestFormat_PhoneGrouping(t *testing.T) {
	t.Parallel()

	const digits = "1234567890123"
	expected := []string{
		"",
		"1",
		"12",
		"12 3",
		"12 34",
		"12 34 5",
		"12 34 56",
		"12 34 567",
		"12 34 5678",
		"12 34 56789",
		"12 34 56789-0",
		"12 34 56789-01",
		"12 34 56789-012",
		"12 34 56789-0123",
	}

	for n := 0; n <= len(digits); n++ {
		assert.Equal(t, expected[n], mask.Format(digits[:n], mask.KindPhone), "length %d", n)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		kind     mask.Kind
		expected string
	}{
		{name: "phone full", input: "1195499999999", kind: mask.KindPhone, expected: "11 95 49999-9999"},
		{name: "phone eleven digits", input: "11954999999", kind: mask.KindPhone, expected: "11 95 49999-99"},
		{name: "phone strips formatting", input: "+55 (54) 99999-9999", kind: mask.KindPhone, expected: "55 54 99999-9999"},
		{name: "phone truncates before formatting", input: "55549999999991234", kind: mask.KindPhone, expected: "55 54 99999-9999"},

		{name: "cpf full", input: "12345678901", kind: mask.KindCPF, expected: "123.456.789-01"},
		{name: "cpf partial first segment", input: "12", kind: mask.KindCPF, expected: "12"},
		{name: "cpf boundary no trailing dot", input: "123", kind: mask.KindCPF, expected: "123"},
		{name: "cpf second segment", input: "1234", kind: mask.KindCPF, expected: "123.4"},
		{name: "cpf third segment", input: "1234567", kind: mask.KindCPF, expected: "123.456.7"},
		{name: "cpf check digits", input: "1234567890", kind: mask.KindCPF, expected: "123.456.789-0"},
		{name: "cpf truncates", input: "123456789012345", kind: mask.KindCPF, expected: "123.456.789-01"},

		{name: "cnpj full", input: "12345678000199", kind: mask.KindCNPJ, expected: "12.345.678/0001-99"},
		{name: "cnpj branch segment", input: "123456780", kind: mask.KindCNPJ, expected: "12.345.678/0"},
		{name: "cnpj boundary", input: "123456780001", kind: mask.KindCNPJ, expected: "12.345.678/0001"},
		{name: "cnpj reformat masked", input: "12.345.678/0001-99", kind: mask.KindCNPJ, expected: "12.345.678/0001-99"},
		{name: "cnpj truncates", input: "1234567800019988", kind: mask.KindCNPJ, expected: "12.345.678/0001-99"},

		{name: "cep full", input: "01310100", kind: mask.KindCEP, expected: "01310-100"},
		{name: "cep prefix only", input: "01310", kind: mask.KindCEP, expected: "01310"},
		{name: "cep suffix", input: "013101", kind: mask.KindCEP, expected: "01310-1"},
		{name: "cep truncates", input: "013101009", kind: mask.KindCEP, expected: "01310-100"},

		{name: "state upper", input: "sp", kind: mask.KindState, expected: "SP"},
		{name: "state truncates", input: "rio", kind: mask.KindState, expected: "RI"},
		{name: "state keeps digits", input: "s1", kind: mask.KindState, expected: "S1"},
		{name: "state keeps spaces", input: " sp", kind: mask.KindState, expected: " S"},
		{name: "state accented", input: "ãb", kind: mask.KindState, expected: "ÃB"},

		{name: "empty input", input: "", kind: mask.KindCPF, expected: ""},
		{name: "no digits", input: "abc", kind: mask.KindCEP, expected: ""},
		{name: "unknown kind returns input", input: "abc-123", kind: mask.Kind("rg"), expected: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, mask.Format(tt.input, tt.kind))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "1", "119", "11954", "11954999999", "1195499999999", "abc123def456", "sp", "rio", "12345678000199"}

	for _, kind := range mask.Kinds() {
		for _, in := range inputs {
			once := mask.Format(in, kind)
			assert.Equal(t, once, mask.Format(once, kind), "kind %s input %q", kind, in)
		}
	}
}

func TestFormat_NeverExceedsMaxLen(t *testing.T) {
	t.Parallel()

	long := "98765432109876543210"
	for _, kind := range mask.Kinds() {
		out := mask.Format(long, kind)
		assert.Len(t, mask.Digits(out), min(kind.MaxLen(), len(long)), "kind %s", kind)
	}
}

func TestShorthands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "55 54 99999-9999", mask.Phone("5554999999999"))
	assert.Equal(t, "123.456.789-01", mask.CPF("12345678901"))
	assert.Equal(t, "12.345.678/0001-99", mask.CNPJ("12345678000199"))
	assert.Equal(t, "01310-100", mask.CEP("01310100"))
	assert.Equal(t, "RJ", mask.State("rj"))
}

func TestFormatter(t *testing.T) {
	t.Parallel()

	t.Run("known kind", func(t *testing.T) {
		t.Parallel()

		fn, err := mask.Formatter(mask.KindCEP)
		require.NoError(t, err)
		assert.Equal(t, "01310-100", fn("01310100"))
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		fn, err := mask.Formatter(mask.Kind("rg"))
		require.ErrorIs(t, err, mask.ErrUnknownKind)
		assert.Nil(t, fn)
	})
}

func TestRuleFor(t *testing.T) {
	t.Parallel()

	r, ok := mask.RuleFor(mask.KindCNPJ)
	require.True(t, ok)
	assert.Equal(t, 14, r.MaxLen)
	assert.Len(t, r.Segments, 5)

	r, ok = mask.RuleFor(mask.KindState)
	require.True(t, ok)
	assert.Empty(t, r.Segments)
	assert.NotNil(t, r.Clean)

	_, ok = mask.RuleFor(mask.Kind("unknown"))
	assert.False(t, ok)
}

func TestRule_CustomTable(t *testing.T) {
	t.Parallel()

	// US-style ZIP+4 expressed as plain data
	zip := mask.Rule{
		MaxLen:   9,
		Segments: []mask.Segment{{End: 5}, {End: 9, Sep: "-"}},
	}

	assert.Equal(t, "12345", zip.Apply("12345"))
	assert.Equal(t, "12345-6789", zip.Apply("12345 6789"))
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12345678000199", mask.Digits("12.345.678/0001-99"))
	assert.Equal(t, "", mask.Digits("SP"))
}
