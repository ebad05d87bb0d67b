package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/goal"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/preference"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/tag"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/logging"
	"github.com/carson-networks/money-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Hub     *live.Hub
}

// Router builds the chi router with every v1 operation registered.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.Hub)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	router.Group(func(group chi.Router) {
		group.Use(logging.RequestLogger(r.Logger))

		api := humachi.New(group, huma.DefaultConfig("money-tracker", "1.0.0"))

		ledger := r.Service.Ledger
		transaction.NewCreateTransactionHandler(ledger).Register(api)
		transaction.NewUpdateTransactionHandler(ledger).Register(api)
		transaction.NewDeleteTransactionHandler(ledger).Register(api)
		transaction.NewListTransactionsHandler(ledger).Register(api)
		summary.NewHandler(ledger).Register(api)
		tag.NewHandler(ledger).Register(api)
		goal.NewHandler(ledger).Register(api)
		preference.NewThemeHandler(r.Service.Preferences).Register(api)
	})

	return router
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
