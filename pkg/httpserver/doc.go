// Package httpserver runs an http.Server until the context is cancelled or
// the process receives SIGINT/SIGTERM, then shuts it down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
