package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/brmask/handler"
	"github.com/dmitrymomot/brmask/internal/formatter"
	"github.com/dmitrymomot/brmask/pkg/config"
	"github.com/dmitrymomot/brmask/pkg/httpserver"
	"github.com/dmitrymomot/brmask/pkg/logger"
	"github.com/dmitrymomot/brmask/pkg/mask"
	"github.com/dmitrymomot/brmask/pkg/requestid"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Name       string `env:"APP_NAME" envDefault:"brmask"`
	LogLevel   string `env:"LOG_LEVEL"`
	FieldsFile string `env:"MASK_FIELDS_FILE"`
	Title      string `env:"APP_TITLE" envDefault:"Cadastro"`

	HTTP httpserver.Config
}

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	fields, err := mask.LoadFieldsFile(cfg.FieldsFile)
	if err != nil {
		return err
	}
	log.Info("field map loaded",
		slog.String("file", cfg.FieldsFile),
		slog.Any("fields", fields.IDs()),
	)

	svc := formatter.NewService(fields,
		formatter.WithLogger(log),
		formatter.WithErrorHandler(handler.NewErrorHandler(log)),
		formatter.WithTitle(cfg.Title),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		middleware.Recoverer,
	)
	r.Get("/health", httpserver.HealthCheckHandler())
	r.Mount("/", svc.Handle())

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
