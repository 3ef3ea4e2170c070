// Package service runs the dashboard's write workflows: login, customer
// and invoice edits, sending invoices and recording payments.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/josh-kwaku/invoice-dashboard/internal/apiclient"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
)

type Service struct {
	api   API
	creds session.Store
	now   func() time.Time
}

func New(api API, creds session.Store) *Service {
	return &Service{api: api, creds: creds, now: time.Now}
}

// Login verifies the credentials and stores the resulting header.
func (s *Service) Login(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return invalid("Username and password are required")
	}

	header, err := s.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return &SubmitError{Message: "Invalid credentials", Err: err}
		}
		logging.FromContext(ctx).Error("login failed", "error", err)
		return &SubmitError{Message: "Login failed. Please try again.", Err: err}
	}

	if err := s.creds.Store(header); err != nil {
		return fmt.Errorf("Login: store credential: %w", err)
	}
	logging.FromContext(ctx).Info("login succeeded", "username", username)
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.creds.Clear(); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	logging.FromContext(ctx).Info("logged out")
	return nil
}

func (s *Service) CreateCustomer(ctx context.Context, form CustomerForm) (*domain.CustomerDetail, error) {
	in, err := form.Payload()
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreateCustomer(ctx, in)
	if err != nil {
		return nil, submitFailed(err, "Failed to create customer")
	}
	logging.FromContext(ctx).Info("customer created", "customer_id", created.ID)
	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id domain.ID, form CustomerForm) error {
	if id.IsZero() {
		return invalid("Customer ID is required")
	}
	in, err := form.Payload()
	if err != nil {
		return err
	}
	if err := s.api.UpdateCustomer(ctx, id, in); err != nil {
		return submitFailed(err, "Failed to update customer")
	}
	logging.FromContext(ctx).Info("customer updated", "customer_id", id)
	return nil
}

func (s *Service) UpdateInvoice(ctx context.Context, id domain.ID, form InvoiceForm) error {
	in, err := form.Payload(id)
	if err != nil {
		return err
	}
	if err := s.api.UpdateInvoice(ctx, id, in); err != nil {
		return submitFailed(err, "Failed to update invoice")
	}
	logging.FromContext(ctx).Info("invoice updated", "invoice_id", id, "line_items", len(in.LineItems))
	return nil
}

func (s *Service) SendInvoice(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return invalid("Invoice ID is required")
	}
	if err := s.api.SendInvoice(ctx, id); err != nil {
		return submitFailed(err, "Failed to send invoice")
	}
	logging.FromContext(ctx).Info("invoice sent", "invoice_id", id)
	return nil
}

// RecordPayment validates against inv, the invoice as last loaded, before
// anything is sent.
func (s *Service) RecordPayment(ctx context.Context, inv *domain.InvoiceDetail, form PaymentForm) error {
	if inv == nil || inv.ID.IsZero() {
		return invalid("Invoice ID is required")
	}
	in, err := form.Payload(inv, s.now())
	if err != nil {
		return err
	}
	if err := s.api.RecordPayment(ctx, inv.ID, in); err != nil {
		return submitFailed(err, "Failed to record payment")
	}
	logging.FromContext(ctx).Info("payment recorded",
		"invoice_id", inv.ID,
		"amount", in.Amount.String(),
		"currency", in.Currency,
	)
	return nil
}

func submitFailed(err error, fallback string) error {
	return &SubmitError{Message: apiclient.ErrorMessage(err, fallback), Err: err}
}
