package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/query"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
)

type invoiceService interface {
	UpdateInvoice(ctx context.Context, id domain.ID, form service.InvoiceForm) error
	SendInvoice(ctx context.Context, id domain.ID) error
	RecordPayment(ctx context.Context, inv *domain.InvoiceDetail, form service.PaymentForm) error
}

type InvoiceHandler struct {
	src      query.Source
	invoices invoiceService
	view     presenter
	now      func() time.Time
}

func NewInvoiceHandler(src query.Source, invoices invoiceService, f *money.Formatter) *InvoiceHandler {
	return &InvoiceHandler{src: src, invoices: invoices, view: presenter{fmt: f}, now: time.Now}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, ok := load(w, r, query.NewInvoices(h.src), nil)
	if !ok {
		return
	}
	RespondSuccess(w, http.StatusOK, h.view.invoices(invoices))
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.loadInvoice(w, r)
	if !ok {
		return
	}
	RespondSuccess(w, http.StatusOK, h.view.invoiceDetail(inv))
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	id := domain.ID(chi.URLParam(r, "id"))

	var form service.InvoiceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if strings.TrimSpace(form.DueDate) == "" && form.IssueDate != "" && !form.CustomerID.IsZero() {
		due, err := h.dueDateFor(r.Context(), form)
		if errors.Is(err, apiclient.ErrUnauthorized) {
			RedirectToLogin(w, r)
			return
		}
		if err != nil {
			log.Warn("due date lookup failed", "customer_id", form.CustomerID, "error", err)
		}
		form.DueDate = due
	}

	if err := h.invoices.UpdateInvoice(r.Context(), id, form); err != nil {
		log.Warn("invoice update failed", "invoice_id", id, "error", err)
		RespondError(w, r, err, err.Error(), ErrInvoiceNotFound)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]domain.ID{"id": id})
}

// dueDateFor derives a due date from the customer's payment terms. It
// returns "" when the terms are unset or the issue date does not parse.
func (h *InvoiceHandler) dueDateFor(ctx context.Context, form service.InvoiceForm) (string, error) {
	customer, err := h.src.GetCustomer(ctx, form.CustomerID)
	if err != nil {
		return "", err
	}
	if customer.PaymentTerms == "" {
		return "", nil
	}
	due, err := service.DueDate(form.IssueDate, customer.PaymentTerms)
	if err != nil {
		return "", nil
	}
	return due, nil
}

func (h *InvoiceHandler) SendForm(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.loadInvoice(w, r)
	if !ok {
		return
	}

	view := sendInvoiceView{
		Invoice:       inv,
		CustomerEmail: inv.CustomerEmail,
		AlreadySent:   inv.Status == domain.InvoiceStatusSent,
	}
	if view.CustomerEmail == "" && !inv.CustomerID.IsZero() {
		c, err := h.src.GetCustomer(r.Context(), inv.CustomerID)
		switch {
		case errors.Is(err, apiclient.ErrUnauthorized):
			RedirectToLogin(w, r)
			return
		case err == nil:
			view.CustomerEmail = c.Email
		}
	}
	RespondSuccess(w, http.StatusOK, view)
}

func (h *InvoiceHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(chi.URLParam(r, "id"))

	if err := h.invoices.SendInvoice(r.Context(), id); err != nil {
		logging.FromContext(r.Context()).Warn("invoice send failed", "invoice_id", id, "error", err)
		RespondError(w, r, err, err.Error(), ErrInvoiceNotFound)
		return
	}
	RespondSuccess(w, http.StatusOK, map[string]domain.ID{"id": id})
}

func (h *InvoiceHandler) PaymentForm(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.loadInvoice(w, r)
	if !ok {
		return
	}

	RespondSuccess(w, http.StatusOK, paymentFormView{
		Invoice:        inv,
		MaxAmount:      inv.Balance.Amount,
		BalanceDisplay: h.view.fmt.Currency(inv.Balance.Amount, inv.Currency()),
		Form: service.PaymentForm{
			PaymentDate: h.now().Format(time.DateOnly),
			Currency:    inv.Currency(),
		},
	})
}

// RecordPayment reloads the invoice so the amount is checked against its
// current balance.
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var form service.PaymentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	inv, ok := h.loadInvoice(w, r)
	if !ok {
		return
	}

	if err := h.invoices.RecordPayment(r.Context(), inv, form); err != nil {
		logging.FromContext(r.Context()).Warn("payment failed", "invoice_id", inv.ID, "error", err)
		RespondError(w, r, err, err.Error(), ErrInvoiceNotFound)
		return
	}
	RespondSuccess(w, http.StatusCreated, map[string]domain.ID{"invoiceId": inv.ID})
}

func (h *InvoiceHandler) loadInvoice(w http.ResponseWriter, r *http.Request) (*domain.InvoiceDetail, bool) {
	id := domain.ID(chi.URLParam(r, "id"))

	detail, ok := load(w, r, query.NewInvoiceDetail(h.src, id), ErrInvoiceNotFound)
	if !ok {
		return nil, false
	}
	if !detail.Found() {
		RespondAppError(w, ErrInvoiceNotFound, nil)
		return nil, false
	}
	return detail.Invoice, true
}
