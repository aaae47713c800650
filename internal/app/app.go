package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"animalbase/internal/adapters/source"
	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/config"
	"animalbase/internal/platform/logger"
	"animalbase/internal/router"
)

// NewLogger arma el logger desde la config.
func NewLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

// Boot abre la fuente y hace la carga inicial.
// Un error de carga NO se devuelve: el servicio queda en estado de error y la UI lo muestra.
// Solo falla si la fuente no se puede abrir.
func Boot(ctx context.Context, cfg config.Config, log logger.Logger) (*animals.Service, source.Selected, error) {
	sel, err := source.Open(ctx, cfg.Source, cfg.DBDSN)
	if err != nil {
		return nil, source.Selected{}, err
	}

	svc := animals.NewService(sel.Source, log)
	_ = svc.Load(ctx)

	return svc, sel, nil
}

// Serve levanta el servidor HTTP hasta que ctx se cancele.
func Serve(ctx context.Context, cfg config.Config, log logger.Logger) error {
	svc, sel, err := Boot(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer sel.Close()

	if cfg.WatchSource {
		if sel.File == nil {
			log.Warn("watch_source only applies to file sources", map[string]any{"source": sel.Kind})
		} else if err := sel.File.Watch(ctx, log, func(ctx context.Context) {
			_ = svc.Reload(ctx)
		}); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Service: svc, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "source": sel.Kind})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}
