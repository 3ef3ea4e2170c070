package query

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/reconcile"
)

const (
	FallbackDashboard     = "Failed to fetch dashboard data"
	FallbackCustomers     = "Failed to fetch customers"
	FallbackInvoices      = "Failed to fetch invoices"
	FallbackCustomer      = "Failed to fetch customer"
	FallbackInvoice       = "Failed to fetch invoice"
	FallbackHealth        = "Failed to fetch health status"
	msgCustomerIDRequired = "Customer ID is required"
	msgInvoiceIDRequired  = "Invoice ID is required"
)

type Dashboard struct {
	OverdueInvoices []domain.Invoice     `json:"overdueInvoices"`
	Invoices        []domain.Invoice     `json:"invoices"`
	Customers       []domain.Customer    `json:"customers"`
	Health          *domain.HealthStatus `json:"health"`
	Summary         reconcile.Summary    `json:"summary"`
}

// NewDashboard loads five panels at once. Customers carry reconciled
// outstanding balances.
func NewDashboard(src Source) *Query[Dashboard] {
	return New(func(ctx context.Context) (Dashboard, error) {
		var (
			d           Dashboard
			customers   []domain.Customer
			outstanding []domain.OutstandingEntry
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			d.OverdueInvoices, err = src.ListOverdueInvoices(gctx)
			return err
		})
		g.Go(func() (err error) {
			d.Invoices, err = src.ListInvoices(gctx)
			return err
		})
		g.Go(func() (err error) {
			customers, err = src.ListCustomers(gctx)
			return err
		})
		g.Go(func() (err error) {
			outstanding, err = src.ListOutstandingCustomers(gctx)
			return err
		})
		g.Go(func() (err error) {
			d.Health, err = src.Health(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return Dashboard{}, err
		}

		d.Customers = reconcile.Customers(customers, outstanding)
		d.Summary = reconcile.Summarize(d.OverdueInvoices, d.Invoices, d.Customers)
		return d, nil
	}, FallbackDashboard)
}

func NewCustomers(src Source) *Query[[]domain.Customer] {
	return New(func(ctx context.Context) ([]domain.Customer, error) {
		var (
			customers   []domain.Customer
			outstanding []domain.OutstandingEntry
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			customers, err = src.ListCustomers(gctx)
			return err
		})
		g.Go(func() (err error) {
			outstanding, err = src.ListOutstandingCustomers(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return reconcile.Customers(customers, outstanding), nil
	}, FallbackCustomers)
}

func NewInvoices(src Source) *Query[[]domain.Invoice] {
	return New(func(ctx context.Context) ([]domain.Invoice, error) {
		return src.ListInvoices(ctx)
	}, FallbackInvoices)
}

type CustomerDetail struct {
	Customer         *domain.CustomerDetail `json:"customer"`
	Invoices         []domain.Invoice       `json:"invoices"`
	TotalOutstanding decimal.Decimal        `json:"totalOutstanding"`
}

func (c CustomerDetail) Found() bool { return c.Customer != nil }

// NewCustomerDetail loads one customer with their invoices. An empty id
// fails immediately.
func NewCustomerDetail(src Source, id domain.ID) *Query[CustomerDetail] {
	return New(func(ctx context.Context) (CustomerDetail, error) {
		if id.IsZero() {
			return CustomerDetail{}, &missingIDError{msg: msgCustomerIDRequired}
		}

		var (
			customer *domain.CustomerDetail
			invoices []domain.Invoice
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			customer, err = src.GetCustomer(gctx, id)
			return err
		})
		g.Go(func() (err error) {
			invoices, err = src.ListInvoices(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return CustomerDetail{}, err
		}

		own, total := reconcile.CustomerInvoices(invoices, id)
		return CustomerDetail{Customer: customer, Invoices: own, TotalOutstanding: total}, nil
	}, FallbackCustomer)
}

type InvoiceDetail struct {
	Invoice *domain.InvoiceDetail `json:"invoice"`
}

func (i InvoiceDetail) Found() bool { return i.Invoice != nil }

func NewInvoiceDetail(src Source, id domain.ID) *Query[InvoiceDetail] {
	return New(func(ctx context.Context) (InvoiceDetail, error) {
		if id.IsZero() {
			return InvoiceDetail{}, &missingIDError{msg: msgInvoiceIDRequired}
		}
		inv, err := src.GetInvoice(ctx, id)
		if err != nil {
			return InvoiceDetail{}, err
		}
		return InvoiceDetail{Invoice: inv}, nil
	}, FallbackInvoice)
}

func NewHealth(src Source) *Query[*domain.HealthStatus] {
	return New(func(ctx context.Context) (*domain.HealthStatus, error) {
		return src.Health(ctx)
	}, FallbackHealth)
}
