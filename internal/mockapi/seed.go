package mockapi

import (
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed replaces all data with a small fixed set of customers and invoices.
func (s *Server) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = map[int64]*customer{
		1: {
			id: 1, name: "Acme Corp", email: "billing@acme.test", phone: "555-0100",
			paymentTerms: domain.PaymentTermsNet30,
			address:      domain.Address{Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
		},
		2: {
			id: 2, name: "Globex", email: "ap@globex.test",
			paymentTerms: domain.PaymentTermsNet15,
			address:      domain.Address{Street: "2 Side St", City: "Shelbyville", Country: "US"},
		},
		3: {
			id: 3, name: "Initech", email: "accounts@initech.test",
			paymentTerms: domain.PaymentTermsDueOnReceipt,
		},
	}

	s.invoices = map[int64]*invoice{
		10: {
			id: 10, customerID: 1, number: "INV-0010", issueDate: "2024-01-01", dueDate: "2024-01-31",
			sentDate: "2024-01-01", status: domain.InvoiceStatusOverdue, currency: "USD", taxRate: decimal.Zero,
			lineItems: []lineItem{{description: "Consulting", quantity: dec("4"), unitPrice: dec("25")}},
		},
		11: {
			id: 11, customerID: 2, number: "INV-0011", issueDate: "2024-02-01", dueDate: "2024-02-16",
			sentDate: "2024-02-01", status: domain.InvoiceStatusSent, currency: "USD", taxRate: dec("0.1"),
			lineItems: []lineItem{{description: "Widgets", quantity: dec("3"), unitPrice: dec("15.45")}},
		},
		12: {
			id: 12, customerID: 1, number: "INV-0012", issueDate: "2024-03-01", dueDate: "2024-03-31",
			sentDate: "2024-03-01", status: domain.InvoiceStatusPaid, currency: "USD", taxRate: decimal.Zero,
			lineItems: []lineItem{{description: "Support plan", quantity: dec("1"), unitPrice: dec("200")}},
			payments:  []payment{{id: 2, amount: dec("200"), date: "2024-03-10", method: "BANK_TRANSFER"}},
		},
		13: {
			id: 13, customerID: 3, number: "INV-0013", issueDate: "2024-04-01", dueDate: "2024-04-01",
			status: domain.InvoiceStatusDraft, currency: "EUR", taxRate: dec("0.2"),
			lineItems: []lineItem{{description: "Training", quantity: dec("2"), unitPrice: dec("150")}},
		},
	}
	s.nextID = 100
}
