package domain

import "github.com/shopspring/decimal"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

type Invoice struct {
	ID            ID              `json:"id"`
	CustomerID    ID              `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber"`
	IssueDate     string          `json:"issueDate"`
	DueDate       string          `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Balance       decimal.Decimal `json:"balance"`
}

type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   Money           `json:"unitPrice"`
	Subtotal    Money           `json:"subtotal"`
}

type Payment struct {
	ID          ID     `json:"id"`
	Amount      Money  `json:"amount"`
	PaymentDate string `json:"paymentDate"`
	Method      string `json:"method"`
	Reference   string `json:"reference,omitempty"`
}

type InvoiceDetail struct {
	ID            ID               `json:"id"`
	CustomerID    ID               `json:"customerId"`
	CustomerName  string           `json:"customerName,omitempty"`
	CustomerEmail string           `json:"customerEmail,omitempty"`
	InvoiceNumber string           `json:"invoiceNumber"`
	IssueDate     string           `json:"issueDate"`
	DueDate       string           `json:"dueDate"`
	Status        InvoiceStatus    `json:"status"`
	SentDate      string           `json:"sentDate,omitempty"`
	LineItems     []LineItem       `json:"lineItems,omitempty"`
	Payments      []Payment        `json:"payments,omitempty"`
	TaxRate       *decimal.Decimal `json:"taxRate,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Subtotal      Money            `json:"subtotal"`
	Tax           Money            `json:"tax"`
	Total         Money            `json:"total"`
	Balance       Money            `json:"balance"`
}

// Currency picks the invoice currency from the total, then the balance,
// then the default.
func (i InvoiceDetail) Currency() string {
	if i.Total.Currency != "" {
		return i.Total.Currency
	}
	if i.Balance.Currency != "" {
		return i.Balance.Currency
	}
	return DefaultCurrency
}

// Paid is the total minus what is still outstanding.
func (i InvoiceDetail) Paid() decimal.Decimal {
	return i.Total.Amount.Sub(i.Balance.Amount)
}

type LineItemInput struct {
	Description       string          `json:"description"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPriceAmount   decimal.Decimal `json:"unitPriceAmount"`
	UnitPriceCurrency string          `json:"unitPriceCurrency"`
}

// InvoiceUpdate is the PUT body. TaxRate is a fraction (0.071 for 7.1%).
type InvoiceUpdate struct {
	CustomerID ID               `json:"customerId"`
	IssueDate  string           `json:"issueDate"`
	DueDate    string           `json:"dueDate"`
	Currency   string           `json:"currency"`
	LineItems  []LineItemInput  `json:"lineItems"`
	TaxRate    *decimal.Decimal `json:"taxRate,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

type PaymentInput struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"paymentDate"`
	Method      string          `json:"method"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes,omitempty"`
}
