// Package server assembles the dashboard's HTTP routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/josh-kwaku/invoice-dashboard/internal/handler"
	"github.com/josh-kwaku/invoice-dashboard/internal/middleware"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/query"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
)

type Deps struct {
	Source    query.Source
	Service   *service.Service
	Sessions  session.Store
	Formatter *money.Formatter
	Version   string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Tracing, middleware.Logging, middleware.Recovery)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	health := handler.NewHealthHandler(d.Source, d.Version)
	sessions := handler.NewSessionHandler(d.Service)
	dashboard := handler.NewDashboardHandler(d.Source, d.Formatter)
	invoices := handler.NewInvoiceHandler(d.Source, d.Service, d.Formatter)
	customers := handler.NewCustomerHandler(d.Source, d.Service, d.Formatter)

	r.Get("/healthz", health.Liveness)
	r.Get("/docs", handler.ServeDocs())
	r.Get("/docs/openapi.yaml", handler.ServeSpec())
	r.Post(handler.LoginPath, sessions.Login)
	r.Post("/logout", sessions.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(d.Sessions))

		r.Get("/", dashboard.Get)
		r.Get("/health", health.Upstream)

		r.Get("/invoices", invoices.List)
		r.Route("/invoices/{id}", func(r chi.Router) {
			r.Get("/", invoices.Get)
			r.Put("/", invoices.Update)
			r.Get("/send", invoices.SendForm)
			r.Post("/send", invoices.Send)
			r.Get("/payment", invoices.PaymentForm)
			r.Post("/payment", invoices.RecordPayment)
		})

		r.Get("/customers", customers.List)
		r.Post("/customers", customers.Create)
		r.Get("/customers/{id}", customers.Get)
		r.Put("/customers/{id}", customers.Update)
	})

	return r
}
