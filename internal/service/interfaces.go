package service

import (
	"context"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type customerWriter interface {
	CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.CustomerDetail, error)
	UpdateCustomer(ctx context.Context, id domain.ID, in domain.CustomerInput) error
}

type invoiceWriter interface {
	UpdateInvoice(ctx context.Context, id domain.ID, in domain.InvoiceUpdate) error
	SendInvoice(ctx context.Context, id domain.ID) error
	RecordPayment(ctx context.Context, id domain.ID, in domain.PaymentInput) error
}

// API is the write side of the remote API.
type API interface {
	authenticator
	customerWriter
	invoiceWriter
}
