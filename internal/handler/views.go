package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/query"
	"github.com/josh-kwaku/invoice-dashboard/internal/reconcile"
	"github.com/josh-kwaku/invoice-dashboard/internal/service"
)

// load runs q once for the current request. On failure the response has
// already been written.
func load[T any](w http.ResponseWriter, r *http.Request, q *query.Query[T], notFound *AppError) (T, bool) {
	defer q.Close()

	st := q.Refetch(r.Context())
	if st.Err != nil {
		logging.FromContext(r.Context()).Warn("view fetch failed", "path", r.URL.Path, "error", st.Err)
		RespondError(w, r, st.Err, st.Error, notFound)
		var zero T
		return zero, false
	}
	return st.Data, true
}

type summaryView struct {
	reconcile.Summary
	TotalOverdueDisplay     string `json:"totalOverdueDisplay"`
	TotalOutstandingDisplay string `json:"totalOutstandingBalanceDisplay"`
}

type invoiceView struct {
	domain.Invoice
	TotalDisplay   string `json:"totalDisplay"`
	BalanceDisplay string `json:"balanceDisplay"`
}

type customerView struct {
	domain.Customer
	OutstandingBalanceDisplay string `json:"outstandingBalanceDisplay"`
}

type dashboardView struct {
	User            string               `json:"user,omitempty"`
	Summary         summaryView          `json:"summary"`
	OverdueInvoices []invoiceView        `json:"overdueInvoices"`
	Customers       []customerView       `json:"customers"`
	Health          *domain.HealthStatus `json:"health"`
}

type customerDetailView struct {
	Customer              *domain.CustomerDetail `json:"customer"`
	PaymentTermsDisplay   string                 `json:"paymentTermsDisplay"`
	Invoices              []invoiceView          `json:"invoices"`
	TotalOutstanding      decimal.Decimal        `json:"totalOutstanding"`
	TotalOutstandingLabel string                 `json:"totalOutstandingDisplay"`
	Form                  service.CustomerForm   `json:"form"`
}

type invoiceDetailView struct {
	Invoice        *domain.InvoiceDetail `json:"invoice"`
	TotalDisplay   string                `json:"totalDisplay"`
	PaidDisplay    string                `json:"paidDisplay"`
	BalanceDisplay string                `json:"balanceDisplay"`
	Form           service.InvoiceForm   `json:"form"`
}

type paymentFormView struct {
	Invoice        *domain.InvoiceDetail `json:"invoice"`
	MaxAmount      decimal.Decimal       `json:"maxAmount"`
	BalanceDisplay string                `json:"balanceDisplay"`
	Form           service.PaymentForm   `json:"form"`
}

type sendInvoiceView struct {
	Invoice       *domain.InvoiceDetail `json:"invoice"`
	CustomerEmail string                `json:"customerEmail,omitempty"`
	AlreadySent   bool                  `json:"alreadySent"`
}

// presenter renders amounts for one display locale.
type presenter struct {
	fmt *money.Formatter
}

func (p presenter) usd(d decimal.Decimal) string {
	return p.fmt.Currency(money.TruncateToTwoDecimals(d), domain.DefaultCurrency)
}

func (p presenter) invoices(in []domain.Invoice) []invoiceView {
	out := make([]invoiceView, 0, len(in))
	for _, inv := range in {
		out = append(out, invoiceView{
			Invoice:        inv,
			TotalDisplay:   p.fmt.Dollars(inv.Total),
			BalanceDisplay: p.fmt.DollarsTruncated(inv.Balance),
		})
	}
	return out
}

func (p presenter) customers(in []domain.Customer) []customerView {
	out := make([]customerView, 0, len(in))
	for _, c := range in {
		out = append(out, customerView{
			Customer:                  c,
			OutstandingBalanceDisplay: p.fmt.DollarsTruncated(c.OutstandingBalance),
		})
	}
	return out
}

func (p presenter) dashboard(d query.Dashboard) dashboardView {
	return dashboardView{
		Summary: summaryView{
			Summary:                 d.Summary,
			TotalOverdueDisplay:     p.usd(d.Summary.TotalOverdue),
			TotalOutstandingDisplay: p.usd(d.Summary.TotalOutstandingBalance),
		},
		OverdueInvoices: p.invoices(d.OverdueInvoices),
		Customers:       p.customers(d.Customers),
		Health:          d.Health,
	}
}

func (p presenter) invoiceDetail(inv *domain.InvoiceDetail) invoiceDetailView {
	currency := inv.Currency()
	return invoiceDetailView{
		Invoice:        inv,
		TotalDisplay:   p.fmt.Currency(inv.Total.Amount, currency),
		PaidDisplay:    p.fmt.Currency(inv.Paid(), currency),
		BalanceDisplay: p.fmt.Currency(inv.Balance.Amount, currency),
		Form:           service.InvoiceFormFrom(inv),
	}
}
