package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/query"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
)

type customerService interface {
	CreateCustomer(ctx context.Context, form service.CustomerForm) (*domain.CustomerDetail, error)
	UpdateCustomer(ctx context.Context, id domain.ID, form service.CustomerForm) error
}

type CustomerHandler struct {
	src       query.Source
	customers customerService
	view      presenter
}

func NewCustomerHandler(src query.Source, customers customerService, f *money.Formatter) *CustomerHandler {
	return &CustomerHandler{src: src, customers: customers, view: presenter{fmt: f}}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, ok := load(w, r, query.NewCustomers(h.src), nil)
	if !ok {
		return
	}
	RespondSuccess(w, http.StatusOK, h.view.customers(customers))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(chi.URLParam(r, "id"))

	detail, ok := load(w, r, query.NewCustomerDetail(h.src, id), ErrCustomerNotFound)
	if !ok {
		return
	}
	if !detail.Found() {
		RespondAppError(w, ErrCustomerNotFound, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, customerDetailView{
		Customer:              detail.Customer,
		PaymentTermsDisplay:   service.FormatPaymentTerms(detail.Customer.PaymentTerms),
		Invoices:              h.view.invoices(detail.Invoices),
		TotalOutstanding:      detail.TotalOutstanding,
		TotalOutstandingLabel: h.view.usd(detail.TotalOutstanding),
		Form:                  service.CustomerFormFrom(detail.Customer),
	})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form service.CustomerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	created, err := h.customers.CreateCustomer(r.Context(), form)
	if err != nil {
		logging.FromContext(r.Context()).Warn("customer creation failed", "error", err)
		RespondError(w, r, err, err.Error(), nil)
		return
	}

	if !created.ID.IsZero() {
		w.Header().Set("Location", fmt.Sprintf("/customers/%s", created.ID))
	}
	RespondSuccess(w, http.StatusCreated, created)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(chi.URLParam(r, "id"))

	var form service.CustomerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if err := h.customers.UpdateCustomer(r.Context(), id, form); err != nil {
		logging.FromContext(r.Context()).Warn("customer update failed", "customer_id", id, "error", err)
		RespondError(w, r, err, err.Error(), ErrCustomerNotFound)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]domain.ID{"id": id})
}
