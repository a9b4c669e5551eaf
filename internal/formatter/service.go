package formatter

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brmask/handler"
	"github.com/dmitrymomot/brmask/pkg/binder"
	"github.com/dmitrymomot/brmask/pkg/logger"
	"github.com/dmitrymomot/brmask/pkg/mask"
	"github.com/dmitrymomot/brmask/pkg/sanitizer"
	"github.com/dmitrymomot/brmask/pkg/validator"
)

const defaultTitle = "Cadastro"

// Service formats the registered fields of the form page on every edit.
// It keeps no per-field state and is safe for concurrent use.
type Service struct {
	fields       mask.Fields
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	title        string
}

// NewService creates a Service for fields. A nil or empty map falls back to
// mask.DefaultFields.
func NewService(fields mask.Fields, opts ...Option) *Service {
	if len(fields) == 0 {
		fields = mask.DefaultFields()
	}

	s := &Service{
		fields: fields,
		views:  DefaultViews(),
		log:    slog.New(slog.DiscardHandler),
		title:  defaultTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("formatter"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}

	return s
}

// Handle returns the router serving the form page and the format endpoints.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, PageRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))

	r.Post("/format", handler.Wrap(s.formatSignals,
		handler.WithBinders[handler.Context, Signals](binder.Signals()),
		handler.WithErrorHandler[handler.Context, Signals](s.errorHandler),
	))

	r.Post("/format/{field}", handler.Wrap(s.formatField,
		handler.WithBinders[handler.Context, FieldRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	))

	r.Post("/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, Profile](binder.Form()),
		handler.WithErrorHandler[handler.Context, Profile](s.errorHandler),
	))

	return r
}

// FieldRequest carries the raw value of one input. When value is absent the
// form key matching the field id is used, which is what htmx posts.
type FieldRequest struct {
	Value string `form:"value"`
}

func (s *Service) page(ctx handler.Context, req PageRequest) handler.Response {
	values := s.registered(ctx.Request().URL.Query())
	s.fields.FormatValues(values)

	return handler.Templ(s.views.Page(s.pageParams(parseClient(req.Client), "", values)))
}

func (s *Service) formatSignals(ctx handler.Context, in Signals) handler.Response {
	out := s.fields.FormatMap(in)
	for id, v := range out {
		if in[id] == v {
			delete(out, id)
		}
	}

	if len(out) == 0 {
		return handler.Empty()
	}

	s.log.DebugContext(ctx, "signals formatted",
		logger.Event("format.signals"),
		slog.Int("count", len(out)),
	)

	return handler.Signals(out)
}

func (s *Service) formatField(ctx handler.Context, req FieldRequest) handler.Response {
	r := ctx.Request()
	id := chi.URLParam(r, "field")

	raw := req.Value
	if raw == "" {
		raw = r.Form.Get(id)
	}

	formatted, ok := s.fields.Attach(id).Apply(id, raw)
	if !ok {
		s.log.DebugContext(ctx, "field not attached", logger.Field(id))
		return handler.Empty()
	}

	kind, _ := s.fields.Kind(id)
	s.log.DebugContext(ctx, "field formatted", logger.Field(id), logger.Kind(kind.String()))

	switch {
	case handler.IsHTMX(r):
		return handler.Templ(s.views.Input(NewInputParams(id, kind, formatted, ClientHTMX)))
	case handler.IsDataStar(r):
		return handler.Templ(s.views.Input(NewInputParams(id, kind, formatted, ClientDataStar)))
	}

	// Plain form post, e.g. with scripting disabled: answer with the whole page.
	values := url.Values{}
	values.Set(id, formatted)
	return handler.Templ(s.views.Page(s.pageParams(parseClient(r.Form.Get("client")), "", values)))
}

func (s *Service) submit(ctx handler.Context, p Profile) handler.Response {
	if err := mask.Struct(&p); err != nil {
		return handler.Error(err)
	}
	p.Name = sanitizer.RemoveExtraWhitespace(p.Name)

	values := s.registered(ctx.Request().Form)
	s.fields.FormatValues(values)
	for id, v := range p.Values() {
		if kind, ok := s.fields.Kind(id); ok && kind == profileKinds[id] {
			values.Set(id, v)
		}
	}

	client := parseClient(p.Client)
	if err := s.validate(values); err != nil {
		errs := validator.ExtractValidationErrors(err)
		if errs == nil {
			return handler.Error(err)
		}
		s.log.WarnContext(ctx, "profile rejected",
			logger.Event("profile.rejected"),
			slog.Any("fields", errs.Fields()),
		)

		params := s.pageParams(client, p.Name, values)
		params.Invalid = true
		messages := errs.Messages()
		for i := range params.Inputs {
			params.Inputs[i].Errors = messages[params.Inputs[i].ID]
		}
		return handler.TemplWithStatus(http.StatusUnprocessableEntity, s.views.Page(params))
	}

	filled := 0
	for _, id := range s.fields.IDs() {
		if values.Get(id) != "" {
			filled++
		}
	}
	s.log.InfoContext(ctx, "profile submitted",
		logger.Event("profile.submitted"),
		slog.Int("fields", filled),
	)

	params := s.pageParams(client, p.Name, values)
	params.Saved = true
	return handler.Templ(s.views.Page(params))
}

// profileKinds mirrors the mask tags of Profile. A field map that rebinds one
// of these ids to another kind takes precedence over the struct tag.
var profileKinds = map[string]mask.Kind{
	mask.FieldPhone:      mask.KindPhone,
	mask.FieldCPF:        mask.KindCPF,
	mask.FieldCNPJ:       mask.KindCNPJ,
	mask.FieldPostalCode: mask.KindCEP,
	mask.FieldState:      mask.KindState,
}

// registered copies the first value of every registered id present in src.
func (s *Service) registered(src url.Values) url.Values {
	values := url.Values{}
	for _, id := range s.fields.IDs() {
		if src.Has(id) {
			values.Set(id, src.Get(id))
		}
	}
	return values
}

func (s *Service) pageParams(client Client, name string, values url.Values) PageParams {
	ids := s.fields.IDs()
	inputs := make([]InputParams, 0, len(ids))
	for _, id := range ids {
		kind, _ := s.fields.Kind(id)
		inputs = append(inputs, NewInputParams(id, kind, values.Get(id), client))
	}

	return PageParams{
		Title:  s.title,
		Client: client,
		Name:   name,
		Inputs: inputs,
	}
}
