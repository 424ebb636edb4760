package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"rocket-stove/internal/catalog"
	"rocket-stove/internal/config"
	"rocket-stove/internal/logger"
	"rocket-stove/internal/metrics"
	"rocket-stove/internal/security"
	"rocket-stove/web/handler"
)

func main() {
	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		logger.Must(logger.Config{}).Fatal("Failed to load config", logger.Error(err))
	}

	log := logger.Must(cfg.Logging)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	tmpl, err := handler.ParseTemplates()
	if err != nil {
		return err
	}

	var loader handler.Loader = catalog.FileSource{Path: cfg.Catalog.Path}
	if cfg.Catalog.Cache {
		cache := catalog.NewCache(cfg.Catalog.Path)
		loader = cache
		if cfg.Catalog.Watch {
			go func() {
				if err := catalog.Watch(ctx, cache, log); err != nil {
					log.Warn("Catalog watcher stopped", logger.Error(err))
				}
			}()
		}
	}

	m := metrics.New()
	page := handler.NewCatalogHandler(loader, tmpl, log, m)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(page, log, m),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if cfg.Server.TLSSelfSigned {
		tlsConfig, err := security.SelfSignedTLSConfig(security.LocalIPs()...)
		if err != nil {
			return err
		}
		srv.TLSConfig = tlsConfig
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Web server started",
			logger.String("address", srv.Addr),
			logger.String("catalog", cfg.Catalog.Path),
			logger.Bool("cache", cfg.Catalog.Cache),
			logger.Bool("tls", srv.TLSConfig != nil),
		)
		errCh <- serve(srv)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Web server stopped")
	return nil
}

func serve(srv *http.Server) error {
	var err error
	if srv.TLSConfig != nil {
		err = srv.ListenAndServeTLS("", "")
	} else {
		err = srv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
