package query

import (
	"context"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type customerReader interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListOutstandingCustomers(ctx context.Context) ([]domain.OutstandingEntry, error)
	GetCustomer(ctx context.Context, id domain.ID) (*domain.CustomerDetail, error)
}

type invoiceReader interface {
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListOverdueInvoices(ctx context.Context) ([]domain.Invoice, error)
	GetInvoice(ctx context.Context, id domain.ID) (*domain.InvoiceDetail, error)
}

type healthReader interface {
	Health(ctx context.Context) (*domain.HealthStatus, error)
}

// Source is everything the views read from the remote API.
type Source interface {
	customerReader
	invoiceReader
	healthReader
}
