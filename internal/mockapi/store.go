package mockapi

import (
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type customer struct {
	id           int64
	name         string
	email        string
	phone        string
	paymentTerms domain.PaymentTerms
	address      domain.Address
}

type lineItem struct {
	description string
	quantity    decimal.Decimal
	unitPrice   decimal.Decimal
}

type payment struct {
	id     int64
	amount decimal.Decimal
	date   string
	method string
	notes  string
}

type invoice struct {
	id         int64
	customerID int64
	number     string
	issueDate  string
	dueDate    string
	sentDate   string
	status     domain.InvoiceStatus
	currency   string
	taxRate    decimal.Decimal
	notes      string
	lineItems  []lineItem
	payments   []payment
}

func (inv *invoice) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range inv.lineItems {
		total = total.Add(li.quantity.Mul(li.unitPrice))
	}
	return total
}

func (inv *invoice) tax() decimal.Decimal {
	return inv.subtotal().Mul(inv.taxRate).Round(2)
}

func (inv *invoice) total() decimal.Decimal {
	return inv.subtotal().Add(inv.tax())
}

func (inv *invoice) balance() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range inv.payments {
		paid = paid.Add(p.amount)
	}
	return inv.total().Sub(paid)
}

// overdue reports whether inv is unpaid past its due date.
func (inv *invoice) overdue(today string) bool {
	if inv.status == domain.InvoiceStatusOverdue {
		return true
	}
	return inv.status == domain.InvoiceStatusSent && inv.dueDate < today && inv.balance().IsPositive()
}

func (inv *invoice) money(d decimal.Decimal) domain.Money {
	return domain.Money{Amount: d, Currency: inv.currency}
}

func (inv *invoice) summary(c *customer) domain.Invoice {
	out := domain.Invoice{
		ID:            idOf(inv.id),
		CustomerID:    idOf(inv.customerID),
		InvoiceNumber: inv.number,
		IssueDate:     inv.issueDate,
		DueDate:       inv.dueDate,
		Status:        inv.status,
		Total:         inv.total(),
		Balance:       inv.balance(),
	}
	if c != nil {
		out.CustomerName = c.name
	}
	return out
}

func (inv *invoice) detail(c *customer) domain.InvoiceDetail {
	rate := inv.taxRate
	out := domain.InvoiceDetail{
		ID:            idOf(inv.id),
		CustomerID:    idOf(inv.customerID),
		InvoiceNumber: inv.number,
		IssueDate:     inv.issueDate,
		DueDate:       inv.dueDate,
		SentDate:      inv.sentDate,
		Status:        inv.status,
		TaxRate:       &rate,
		Notes:         inv.notes,
		Subtotal:      inv.money(inv.subtotal()),
		Tax:           inv.money(inv.tax()),
		Total:         inv.money(inv.total()),
		Balance:       inv.money(inv.balance()),
	}
	if c != nil {
		out.CustomerName = c.name
		out.CustomerEmail = c.email
	}
	for _, li := range inv.lineItems {
		out.LineItems = append(out.LineItems, domain.LineItem{
			Description: li.description,
			Quantity:    li.quantity,
			UnitPrice:   inv.money(li.unitPrice),
			Subtotal:    inv.money(li.quantity.Mul(li.unitPrice)),
		})
	}
	for _, p := range inv.payments {
		out.Payments = append(out.Payments, domain.Payment{
			ID:          idOf(p.id),
			Amount:      inv.money(p.amount),
			PaymentDate: p.date,
			Method:      p.method,
			Reference:   p.notes,
		})
	}
	return out
}

func (c *customer) summary() domain.Customer {
	addr := c.address
	return domain.Customer{
		ID:      idOf(c.id),
		Name:    c.name,
		Email:   c.email,
		Phone:   c.phone,
		Address: &addr,
	}
}

func (c *customer) detail(outstanding decimal.Decimal) domain.CustomerDetail {
	return domain.CustomerDetail{
		ID:                 idOf(c.id),
		Name:               c.name,
		Email:              c.email,
		Phone:              c.phone,
		Street:             c.address.Street,
		City:               c.address.City,
		PostalCode:         c.address.PostalCode,
		Country:            c.address.Country,
		PaymentTerms:       c.paymentTerms,
		OutstandingBalance: domain.NewBalance(outstanding, domain.DefaultCurrency),
	}
}
