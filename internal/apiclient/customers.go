package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

func customerPath(id domain.ID) string {
	return "/api/customers/" + url.PathEscape(id.String())
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/customers"}, &out); err != nil {
		return nil, fmt.Errorf("ListCustomers: %w", err)
	}
	return out, nil
}

// ListOutstandingCustomers returns only customers the API reports with an
// outstanding balance.
func (c *Client) ListOutstandingCustomers(ctx context.Context) ([]domain.OutstandingEntry, error) {
	var out []domain.OutstandingEntry
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/customers/outstanding"}, &out); err != nil {
		return nil, fmt.Errorf("ListOutstandingCustomers: %w", err)
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id domain.ID) (*domain.CustomerDetail, error) {
	var out domain.CustomerDetail
	if err := c.do(ctx, request{method: http.MethodGet, path: customerPath(id)}, &out); err != nil {
		return nil, fmt.Errorf("GetCustomer: %w", err)
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.CustomerDetail, error) {
	var out domain.CustomerDetail
	if err := c.do(ctx, request{method: http.MethodPost, path: "/api/customers", body: in}, &out); err != nil {
		return nil, fmt.Errorf("CreateCustomer: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id domain.ID, in domain.CustomerInput) error {
	if err := c.do(ctx, request{method: http.MethodPut, path: customerPath(id), body: in}, nil); err != nil {
		return fmt.Errorf("UpdateCustomer: %w", err)
	}
	return nil
}
