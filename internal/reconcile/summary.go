package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type Summary struct {
	OverdueCount                 int             `json:"overdueCount"`
	TotalOverdue                 decimal.Decimal `json:"totalOverdue"`
	TotalInvoices                int             `json:"totalInvoices"`
	InvoicesWithOutstanding      int             `json:"invoicesWithOutstanding"`
	TotalOutstandingBalance      decimal.Decimal `json:"totalOutstandingBalance"`
	TotalCustomers               int             `json:"totalCustomers"`
	CustomersWithOutstanding     int             `json:"customersWithOutstanding"`
	CustomersWithOverdueInvoices int             `json:"customersWithOverdueInvoices"`
}

// Summarize derives the dashboard headline figures. customers should
// already carry reconciled balances.
func Summarize(overdue, invoices []domain.Invoice, customers []domain.Customer) Summary {
	s := Summary{
		OverdueCount:            len(overdue),
		TotalOverdue:            sumBalances(overdue),
		TotalInvoices:           len(invoices),
		TotalOutstandingBalance: sumBalances(invoices),
		TotalCustomers:          len(customers),
	}

	for _, inv := range invoices {
		if inv.Balance.IsPositive() {
			s.InvoicesWithOutstanding++
		}
	}
	for _, c := range customers {
		if c.OutstandingBalance.IsPositive() {
			s.CustomersWithOutstanding++
		}
	}

	seen := make(map[domain.ID]struct{}, len(overdue))
	for _, inv := range overdue {
		seen[inv.CustomerID] = struct{}{}
	}
	s.CustomersWithOverdueInvoices = len(seen)

	return s
}

// CustomerInvoices filters invoices down to one customer and totals their
// balances.
func CustomerInvoices(invoices []domain.Invoice, customerID domain.ID) ([]domain.Invoice, decimal.Decimal) {
	var out []domain.Invoice
	for _, inv := range invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out, sumBalances(out)
}

func sumBalances(invoices []domain.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.Balance)
	}
	return total
}
