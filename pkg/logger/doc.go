// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each Handle call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "brmask"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field formatted",
//		logger.Field("id_cpf"),
//		logger.Kind("cpf"),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
