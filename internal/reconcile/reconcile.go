// Package reconcile merges independently fetched collections into one view
// keyed by entity ID.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
)

// BalanceIndex maps an entity ID to its truncated, material balance.
type BalanceIndex map[domain.ID]decimal.Decimal

// Lookup returns the indexed balance, or zero for unknown IDs.
func (idx BalanceIndex) Lookup(id domain.ID) decimal.Decimal {
	if v, ok := idx[id]; ok {
		return v
	}
	return decimal.Zero
}

// Index builds a BalanceIndex from an outstanding-balance listing. Absent
// balances are skipped, the rest are truncated to two decimals and dropped
// when below the materiality threshold. A later duplicate ID replaces an
// earlier one.
func Index(entries []domain.OutstandingEntry) BalanceIndex {
	idx := make(BalanceIndex, len(entries))
	for _, e := range entries {
		if !e.OutstandingBalance.Valid {
			continue
		}
		balance := money.TruncateToTwoDecimals(e.OutstandingBalance.Amount)
		if !money.IsMaterial(balance) {
			continue
		}
		idx[e.ID] = balance
	}
	return idx
}

// Apply returns a copy of primary, in the same order, with every element's
// balance set from idx. Elements missing from idx get exactly zero.
func Apply[T any](primary []T, id func(T) domain.ID, set func(*T, decimal.Decimal), idx BalanceIndex) []T {
	out := make([]T, len(primary))
	for i, item := range primary {
		out[i] = item
		set(&out[i], idx.Lookup(id(item)))
	}
	return out
}

// Customers merges the full customer list with the outstanding listing.
func Customers(all []domain.Customer, outstanding []domain.OutstandingEntry) []domain.Customer {
	return Apply(all,
		func(c domain.Customer) domain.ID { return c.ID },
		func(c *domain.Customer, v decimal.Decimal) { c.OutstandingBalance = v },
		Index(outstanding),
	)
}
