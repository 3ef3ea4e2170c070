package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type PaymentForm struct {
	Amount      string `json:"amount"`
	PaymentDate string `json:"paymentDate"`
	Method      string `json:"method"`
	Currency    string `json:"currency"`
	Notes       string `json:"notes"`
}

// Payload checks the form against the invoice's current balance and builds
// the request body. now supplies the default payment date.
func (f PaymentForm) Payload(inv *domain.InvoiceDetail, now time.Time) (domain.PaymentInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil || !amount.IsPositive() {
		return domain.PaymentInput{}, invalid("Please enter a valid payment amount")
	}
	if amount.GreaterThan(inv.Balance.Amount) {
		return domain.PaymentInput{}, invalid("Payment amount cannot exceed the outstanding balance")
	}
	method := strings.TrimSpace(f.Method)
	if method == "" {
		return domain.PaymentInput{}, invalid("Payment method is required")
	}

	date := strings.TrimSpace(f.PaymentDate)
	if date == "" {
		date = now.Format(dateLayout)
	}
	currency := strings.TrimSpace(f.Currency)
	if currency == "" {
		currency = inv.Currency()
	}

	return domain.PaymentInput{
		Amount:      amount,
		PaymentDate: date,
		Method:      method,
		Currency:    currency,
		Notes:       strings.TrimSpace(f.Notes),
	}, nil
}
