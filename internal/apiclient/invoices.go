package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

func invoicePath(id domain.ID) string {
	return "/api/invoices/" + url.PathEscape(id.String())
}

func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/invoices"}, &out); err != nil {
		return nil, fmt.Errorf("ListInvoices: %w", err)
	}
	return out, nil
}

func (c *Client) ListOverdueInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var out []domain.Invoice
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/invoices/overdue"}, &out); err != nil {
		return nil, fmt.Errorf("ListOverdueInvoices: %w", err)
	}
	return out, nil
}

func (c *Client) GetInvoice(ctx context.Context, id domain.ID) (*domain.InvoiceDetail, error) {
	var out domain.InvoiceDetail
	if err := c.do(ctx, request{method: http.MethodGet, path: invoicePath(id)}, &out); err != nil {
		return nil, fmt.Errorf("GetInvoice: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateInvoice(ctx context.Context, id domain.ID, in domain.InvoiceUpdate) error {
	if err := c.do(ctx, request{method: http.MethodPut, path: invoicePath(id), body: in}, nil); err != nil {
		return fmt.Errorf("UpdateInvoice: %w", err)
	}
	return nil
}

// SendInvoice posts with no body.
func (c *Client) SendInvoice(ctx context.Context, id domain.ID) error {
	if err := c.do(ctx, request{method: http.MethodPost, path: invoicePath(id) + "/send"}, nil); err != nil {
		return fmt.Errorf("SendInvoice: %w", err)
	}
	return nil
}

func (c *Client) RecordPayment(ctx context.Context, id domain.ID, in domain.PaymentInput) error {
	if err := c.do(ctx, request{method: http.MethodPost, path: invoicePath(id) + "/payments", body: in}, nil); err != nil {
		return fmt.Errorf("RecordPayment: %w", err)
	}
	return nil
}
