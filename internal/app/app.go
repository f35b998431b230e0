package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/beautix-tech/admin-panel/internal/cfg"
	v1Http "github.com/beautix-tech/admin-panel/internal/delivery/v1/http"
	"github.com/beautix-tech/admin-panel/internal/repository/backend"
	"github.com/beautix-tech/admin-panel/internal/usecase"
	"github.com/beautix-tech/admin-panel/pkg/closer"
	"github.com/beautix-tech/admin-panel/pkg/e"
	"github.com/beautix-tech/admin-panel/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App собирает панель: HTTP-клиенты к каталожному бэкенду,
// usecase-слой и сервер страниц.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	srv    *v1Http.Server
	closer *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	crudOrigin := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout, log)

	// Загрузки могут жить на отдельном origin (CDN или выделенный сервис)
	uploadOrigin := crudOrigin
	if cfg.Upload.BaseURL != cfg.Backend.BaseURL {
		uploadOrigin = backend.NewClient(cfg.Upload.BaseURL, cfg.Backend.RequestTimeout, log)
	}

	catalogUC := usecase.NewCatalogUC(
		backend.NewProductClient(crudOrigin),
		backend.NewCategoryClient(crudOrigin),
		backend.NewUploadClient(uploadOrigin),
		log,
	)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	if err := router.Init(catalogUC, cfg.Upload); err != nil {
		log.Errorf(err, "failed to initialize router")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	srv := v1Http.NewServer(r, cfg.Http)

	c := closer.NewCloser(shutdownTimeout)
	c.Add(func(ctx context.Context) error {
		return srv.Stop(ctx)
	})

	return &App{
		cfg:    cfg,
		logger: log,
		srv:    srv,
		closer: c,
	}, nil
}

// Run запускает сервер и блокируется до сигнала остановки или
// фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}
