package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/handlers/budget"
	"github.com/carson-networks/prefin/internal/handlers/expense"
	"github.com/carson-networks/prefin/internal/handlers/status"
	"github.com/carson-networks/prefin/internal/handlers/user"
	"github.com/carson-networks/prefin/internal/logging"
	"github.com/carson-networks/prefin/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Rest serves the HTTP API. CORSOrigins lists the browser origins allowed to
// call it with the session cookie.
type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	Operator    apiutil.ActionProcessor
	Tokens      *auth.TokenCodec
	Cookies     apiutil.CookieSettings
	DB          status.Pinger
	CORSOrigins []string
}

// Handler builds the router: the huma API for every resource plus the raw
// /status check, behind CORS.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("prefin", "1.0.0")
	config.Info.Description = "Personal budget tracking with a 50/30/20 income split."
	api := humago.New(mux, config)
	api.UseMiddleware(logging.Middleware(r.Logger))

	session := apiutil.NewSession(r.Tokens)

	user.NewRegisterHandler(r.Operator, r.Tokens, r.Cookies).Register(api)
	user.NewLoginHandler(r.Service.Users, r.Tokens, r.Cookies).Register(api)
	user.NewGetUserHandler(r.Service.Users, session).Register(api)
	user.NewUpdateUserHandler(r.Operator, session).Register(api)

	budget.NewUpsertBudgetHandler(r.Operator, session).Register(api)
	budget.NewListBudgetsHandler(r.Service.Budgets, session).Register(api)
	budget.NewGetBudgetHandler(r.Service.Budgets, session).Register(api)
	budget.NewBudgetSummaryHandler(r.Service.Budgets, session).Register(api)
	budget.NewDeleteBudgetHandler(r.Operator, session).Register(api)

	expense.NewCreateExpenseHandler(r.Operator, session).Register(api)
	expense.NewListExpensesHandler(r.Service.Expenses, session).Register(api)
	expense.NewGetExpenseHandler(r.Service.Expenses, session).Register(api)
	expense.NewUpdateExpenseHandler(r.Operator, session).Register(api)
	expense.NewDeleteExpenseHandler(r.Operator, session).Register(api)
	expense.NewCategorySummaryHandler(r.Service.Expenses, session).Register(api)

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return r.cors().Handler(mux)
}

// cors answers preflight requests and lets the listed origins send the
// session cookie.
func (r *Rest) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: r.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	return <-shutdownErr
}
