package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

type LineItemForm struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func (li LineItemForm) valid() bool {
	return strings.TrimSpace(li.Description) != "" &&
		li.Quantity.IsPositive() &&
		!li.UnitPrice.IsNegative()
}

type InvoiceForm struct {
	CustomerID domain.ID      `json:"customerId"`
	IssueDate  string         `json:"issueDate"`
	DueDate    string         `json:"dueDate"`
	Currency   string         `json:"currency"`
	TaxRate    string         `json:"taxRate"`
	Notes      string         `json:"notes"`
	LineItems  []LineItemForm `json:"lineItems"`
}

// InvoiceFormFrom prefills the edit form. The tax rate is shown as a
// percentage.
func InvoiceFormFrom(inv *domain.InvoiceDetail) InvoiceForm {
	f := InvoiceForm{
		CustomerID: inv.CustomerID,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Currency:   inv.Currency(),
		Notes:      inv.Notes,
	}
	if inv.TaxRate != nil {
		f.TaxRate = inv.TaxRate.Mul(hundred).String()
	}
	for _, li := range inv.LineItems {
		f.LineItems = append(f.LineItems, LineItemForm{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice.Amount,
		})
	}
	return f
}

// Payload validates the form for invoice id and builds the update body.
// Incomplete line items are dropped. A tax rate that does not parse, or is
// negative, is left out.
func (f InvoiceForm) Payload(id domain.ID) (domain.InvoiceUpdate, error) {
	switch {
	case id.IsZero():
		return domain.InvoiceUpdate{}, invalid("Invoice ID is required")
	case f.CustomerID.IsZero():
		return domain.InvoiceUpdate{}, invalid("Please select a customer")
	case strings.TrimSpace(f.IssueDate) == "":
		return domain.InvoiceUpdate{}, invalid("Issue date is required")
	case strings.TrimSpace(f.DueDate) == "":
		return domain.InvoiceUpdate{}, invalid("Due date is required")
	}

	currency := strings.TrimSpace(f.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var items []domain.LineItemInput
	for _, li := range f.LineItems {
		if !li.valid() {
			continue
		}
		items = append(items, domain.LineItemInput{
			Description:       strings.TrimSpace(li.Description),
			Quantity:          li.Quantity,
			UnitPriceAmount:   li.UnitPrice,
			UnitPriceCurrency: currency,
		})
	}
	if len(items) == 0 {
		return domain.InvoiceUpdate{}, invalid("At least one valid line item is required")
	}

	out := domain.InvoiceUpdate{
		CustomerID: f.CustomerID,
		IssueDate:  f.IssueDate,
		DueDate:    f.DueDate,
		Currency:   currency,
		LineItems:  items,
		Notes:      strings.TrimSpace(f.Notes),
	}
	if raw := strings.TrimSpace(f.TaxRate); raw != "" {
		if rate, err := decimal.NewFromString(raw); err == nil && !rate.IsNegative() {
			fraction := rate.Div(hundred)
			out.TaxRate = &fraction
		}
	}
	return out, nil
}

// DueDate adds the payment-terms offset to an issue date. Unknown terms
// count as NET_30.
func DueDate(issue string, terms domain.PaymentTerms) (string, error) {
	t, err := time.Parse(dateLayout, issue)
	if err != nil {
		return "", fmt.Errorf("DueDate: %w", err)
	}
	return t.AddDate(0, 0, termDays(terms)).Format(dateLayout), nil
}

func termDays(terms domain.PaymentTerms) int {
	switch terms {
	case domain.PaymentTermsDueOnReceipt:
		return 0
	case domain.PaymentTermsNet15:
		return 15
	case domain.PaymentTermsNet45:
		return 45
	default:
		return 30
	}
}

// FormatPaymentTerms renders "NET_30" as "Net 30".
func FormatPaymentTerms(terms domain.PaymentTerms) string {
	if terms == "" {
		return ""
	}
	words := strings.ReplaceAll(string(terms), "_", " ")
	return cases.Title(language.English).String(words)
}
