package formatter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/brmask/pkg/mask"
)

const (
	datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"
	htmxScript     = "https://unpkg.com/htmx.org@2.0.4"
)

// Views renders the form page and single inputs.
// Any field may be replaced to plug in project specific markup.
type Views struct {
	Page  func(PageParams) templ.Component
	Input func(InputParams) templ.Component
}

// PageParams contains data for rendering the form page.
type PageParams struct {
	Title  string
	Client Client
	Name   string
	Inputs []InputParams
	Saved  bool
	// Invalid is set when the submission was rejected; messages live on Inputs.
	Invalid bool
}

// InputParams contains data for rendering one masked input.
type InputParams struct {
	ID          string
	Kind        mask.Kind
	Label       string
	Value       string
	Placeholder string
	// MaxLength is rendered only when positive. Digit kinds keep it at 0 and
	// are truncated after non-digits are stripped.
	MaxLength int
	Client    Client
	Errors    []string
}

// DefaultViews returns the built-in markup.
func DefaultViews() *Views {
	return &Views{
		Page:  Page,
		Input: Input,
	}
}

var kindLabels = map[mask.Kind]string{
	mask.KindPhone: "Telefone",
	mask.KindCPF:   "CPF",
	mask.KindCNPJ:  "CNPJ",
	mask.KindCEP:   "CEP",
	mask.KindState: "UF",
}

// NewInputParams describes the input bound to id with the given kind and value.
func NewInputParams(id string, kind mask.Kind, value string, client Client) InputParams {
	label, ok := kindLabels[kind]
	if !ok {
		label = id
	}

	p := InputParams{
		ID:     id,
		Kind:   kind,
		Label:  label,
		Value:  value,
		Client: client,
	}
	if kind == mask.KindState {
		p.Placeholder = "RS"
		p.MaxLength = kind.MaxLen()
	} else {
		p.Placeholder = mask.Format(strings.Repeat("0", kind.MaxLen()), kind)
	}

	return p
}

// Input renders a single masked input element.
func Input(p InputParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		writeInput(hw, p)
		return hw.err
	})
}

// Page renders the full form document.
func Page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		hw.printf(`<title>%s</title>`, templ.EscapeString(p.Title))
		if p.Client == ClientHTMX {
			hw.printf(`<script src="%s"></script>`, htmxScript)
		} else {
			hw.printf(`<script type="module" src="%s"></script>`, datastarScript)
		}
		hw.raw(`</head><body>`)

		hw.printf(`<h1>%s</h1>`, templ.EscapeString(p.Title))
		switch {
		case p.Saved:
			hw.raw(`<p role="status" id="saved">Dados salvos.</p>`)
		case p.Invalid:
			hw.raw(`<p role="alert" id="invalid">Corrija os campos destacados.</p>`)
		}

		hw.raw(`<form id="profile-form" action="/submit" method="post">`)
		hw.printf(`<input type="hidden" name="client" value="%s">`, templ.EscapeString(string(p.Client)))
		hw.printf(`<label for="name">Nome</label><input type="text" id="name" name="name" value="%s">`,
			templ.EscapeString(p.Name))
		for _, in := range p.Inputs {
			hw.printf(`<label for="%s">%s</label>`, templ.EscapeString(in.ID), templ.EscapeString(in.Label))
			writeInput(hw, in)
			for _, msg := range in.Errors {
				hw.printf(`<p class="field-error" id="%s-error">%s</p>`,
					templ.EscapeString(in.ID), templ.EscapeString(msg))
			}
		}
		hw.raw(`<button type="submit">Salvar</button></form></body></html>`)

		return hw.err
	})
}

func writeInput(hw *htmlWriter, p InputParams) {
	id := templ.EscapeString(p.ID)

	hw.printf(`<input type="text" id="%s" name="%s" value="%s" placeholder="%s"`,
		id, id, templ.EscapeString(p.Value), templ.EscapeString(p.Placeholder))
	if p.MaxLength > 0 {
		hw.printf(` maxlength="%d"`, p.MaxLength)
	}
	if len(p.Errors) > 0 {
		hw.printf(` aria-invalid="true" aria-describedby="%s-error"`, id)
	}
	if p.Kind == mask.KindState {
		hw.raw(` autocapitalize="characters"`)
	} else {
		hw.raw(` inputmode="numeric"`)
	}

	switch p.Client {
	case ClientHTMX:
		hw.printf(` hx-post="/format/%s" hx-trigger="input changed" hx-swap="outerHTML" hx-sync="this:replace"`, id)
	default:
		hw.printf(` data-bind="%s" data-on:input="@post('/format')"`, id)
	}
	hw.raw(`>`)
}

// htmlWriter keeps the first write error so markup can be emitted without
// checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}
