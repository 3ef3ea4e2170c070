package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/josh-kwaku/invoice-dashboard/internal/auth"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var out domain.HealthStatus
	if err := c.do(ctx, request{method: http.MethodGet, path: "/api/health"}, &out); err != nil {
		return nil, fmt.Errorf("Health: %w", err)
	}
	return &out, nil
}

// Login checks username and password against the API and returns the
// Authorization header value to store. It does not touch the store itself.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	header := auth.BasicHeader(username, password)
	req := request{
		method: http.MethodGet,
		path:   "/login",
		header: http.Header{"Authorization": []string{header}},
	}
	if err := c.do(ctx, req, nil); err != nil {
		return "", fmt.Errorf("Login: %w", err)
	}
	return header, nil
}
