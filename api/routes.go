package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/handlers/v1/account"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/category"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/events"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/label"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/report"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/settings"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/finance-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/operator"
	"github.com/carson-networks/finance-ledger/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the mux with /status and every /v1 operation.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Operator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Finance Ledger", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewTrashHandler(r.Service.Transaction).Register(api)

	account.NewCreateAccountHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewAccountHandler(r.Service.Account).Register(api)
	account.NewAccountGroupHandler(r.Service.Account).Register(api)

	category.NewCategoryHandler(r.Service.Catalog).Register(api)
	category.NewCategoryGroupHandler(r.Service.Catalog).Register(api)
	label.NewHandler(r.Service.Catalog).Register(api)
	settings.NewHandler(r.Service.Catalog).Register(api)

	report.NewHandler(r.Service.Report).Register(api)
	events.NewHandler(r.Operator, r.Logger).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:    ":" + r.Port,
		Handler: r.Handler(),
		// No WriteTimeout: /v1/events responses stay open.
		ReadTimeout:       time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
