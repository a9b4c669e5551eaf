package mask

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/brmask/pkg/sanitizer"
)

// Segment is a run of characters ending at offset End (exclusive),
// written after Sep. Sep is only written when the input reaches the segment.
type Segment struct {
	End int
	Sep string
}

// Rule describes how one field kind is cleaned, truncated and split.
type Rule struct {
	// MaxLen is the number of characters kept after cleaning.
	MaxLen int
	// Segments split the cleaned value. Empty means no separators.
	Segments []Segment
	// Clean prepares the raw input. Nil means KeepDigits.
	Clean func(string) string
}

// rules is the complete kind table. Offsets index into the cleaned string.
var rules = map[Kind]Rule{
	// 55 54 99999-9999: country, area, then subscriber split after 5 digits
	KindPhone: {
		MaxLen:   13,
		Segments: []Segment{{End: 2}, {End: 4, Sep: " "}, {End: 9, Sep: " "}, {End: 13, Sep: "-"}},
	},
	// 000.000.000-00
	KindCPF: {
		MaxLen:   11,
		Segments: []Segment{{End: 3}, {End: 6, Sep: "."}, {End: 9, Sep: "."}, {End: 11, Sep: "-"}},
	},
	// 00.000.000/0000-00
	KindCNPJ: {
		MaxLen:   14,
		Segments: []Segment{{End: 2}, {End: 5, Sep: "."}, {End: 8, Sep: "."}, {End: 12, Sep: "/"}, {End: 14, Sep: "-"}},
	},
	// 00000-000
	KindCEP: {
		MaxLen:   8,
		Segments: []Segment{{End: 5}, {End: 8, Sep: "-"}},
	},
	KindState: {
		MaxLen: 2,
		Clean:  sanitizer.UpperFor(language.BrazilianPortuguese),
	},
}

// RuleFor returns the rule registered for k.
func RuleFor(k Kind) (Rule, bool) {
	r, ok := rules[k]
	return r, ok
}

// prepare is the cleaning pipeline run before segmentation. Truncation always
// comes last so separators in the raw input never count against MaxLen.
func (r Rule) prepare() func(string) string {
	clean := r.Clean
	if clean == nil {
		clean = sanitizer.KeepDigits
	}
	return sanitizer.Compose(clean, sanitizer.Truncate(r.MaxLen))
}

// Apply cleans raw, truncates it to MaxLen and inserts separators.
func (r Rule) Apply(raw string) string {
	value := r.prepare()(raw)
	if len(r.Segments) == 0 {
		return value
	}

	// Segmented rules only ever see ASCII digits, so byte offsets are safe.
	var b strings.Builder
	b.Grow(len(value) + len(r.Segments))

	start := 0
	for _, seg := range r.Segments {
		if start >= len(value) {
			break
		}
		end := min(seg.End, len(value))
		b.WriteString(seg.Sep)
		b.WriteString(value[start:end])
		start = seg.End
	}

	return b.String()
}

// Format formats raw as kind. Unknown kinds return raw unchanged.
func Format(raw string, kind Kind) string {
	r, ok := RuleFor(kind)
	if !ok {
		return raw
	}
	return r.Apply(raw)
}

// Formatter returns the formatting func for kind.
func Formatter(kind Kind) (func(string) string, error) {
	r, ok := RuleFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return r.Apply, nil
}

// Phone formats a phone number as "55 54 99999-9999".
func Phone(raw string) string { return Format(raw, KindPhone) }

// CPF formats an individual taxpayer id as "000.000.000-00".
func CPF(raw string) string { return Format(raw, KindCPF) }

// CNPJ formats a company taxpayer id as "00.000.000/0000-00".
func CNPJ(raw string) string { return Format(raw, KindCNPJ) }

// CEP formats a postal code as "00000-000".
func CEP(raw string) string { return Format(raw, KindCEP) }

// State uppercases a state code and keeps two characters.
func State(raw string) string { return Format(raw, KindState) }

// Digits returns the digits of a masked value, e.g. to count them.
func Digits(masked string) string {
	return sanitizer.KeepDigits(masked)
}
