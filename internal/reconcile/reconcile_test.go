package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decodeOutstanding(t *testing.T, payload string) []domain.OutstandingEntry {
	t.Helper()
	var entries []domain.OutstandingEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &entries))
	return entries
}

func TestCustomersMergesOutstandingBalances(t *testing.T) {
	primary := []domain.Customer{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	outstanding := decodeOutstanding(t, `[
		{"id": 1, "outstandingBalance": 0.005},
		{"id": 2, "outstandingBalance": {"amount": 50.999, "currency": "USD"}}
	]`)

	got := Customers(primary, outstanding)

	require.Len(t, got, 3)
	want := []struct {
		id      domain.ID
		balance string
	}{
		{"1", "0"},
		{"2", "50.99"},
		{"3", "0"},
	}
	for i, w := range want {
		assert.Equal(t, w.id, got[i].ID)
		assert.True(t, got[i].OutstandingBalance.Equal(d(w.balance)), "id %s: got %s, want %s", w.id, got[i].OutstandingBalance, w.balance)
	}
}

func TestCustomersPreservesPrimaryOrderAndIdentity(t *testing.T) {
	primary := []domain.Customer{{ID: "c"}, {ID: "a"}, {ID: "b"}, {ID: "d"}}
	outstanding := decodeOutstanding(t, `[
		{"id": "b", "outstandingBalance": 10},
		{"id": "zzz", "outstandingBalance": 99},
		{"id": "c", "outstandingBalance": 1.234}
	]`)

	got := Customers(primary, outstanding)

	require.Len(t, got, len(primary))
	for i := range primary {
		assert.Equal(t, primary[i].ID, got[i].ID)
	}
	assert.True(t, got[0].OutstandingBalance.Equal(d("1.23")))
	assert.True(t, got[1].OutstandingBalance.IsZero())
	assert.True(t, got[2].OutstandingBalance.Equal(d("10")))
	assert.True(t, got[3].OutstandingBalance.IsZero())
}

func TestCustomersDoesNotMutateInput(t *testing.T) {
	primary := []domain.Customer{{ID: "1", OutstandingBalance: d("5")}}
	got := Customers(primary, nil)

	assert.True(t, got[0].OutstandingBalance.IsZero())
	assert.True(t, primary[0].OutstandingBalance.Equal(d("5")))
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    map[domain.ID]string
	}{
		{
			name:    "below threshold after truncation is dropped",
			payload: `[{"id": 1, "outstandingBalance": 0.0099}]`,
			want:    map[domain.ID]string{},
		},
		{
			name:    "exactly threshold is kept",
			payload: `[{"id": 1, "outstandingBalance": 0.01}]`,
			want:    map[domain.ID]string{"1": "0.01"},
		},
		{
			name:    "absent balance is skipped",
			payload: `[{"id": 1}, {"id": 2, "outstandingBalance": null}]`,
			want:    map[domain.ID]string{},
		},
		{
			name:    "negative balance is dropped",
			payload: `[{"id": 1, "outstandingBalance": -3}]`,
			want:    map[domain.ID]string{},
		},
		{
			name:    "later duplicate wins",
			payload: `[{"id": 7, "outstandingBalance": 1}, {"id": 7, "outstandingBalance": {"amount": 2.345, "currency": "EUR"}}]`,
			want:    map[domain.ID]string{"7": "2.34"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx := Index(decodeOutstanding(t, tc.payload))
			require.Len(t, idx, len(tc.want))
			for id, want := range tc.want {
				assert.True(t, idx[id].Equal(d(want)), "id %s: got %s, want %s", id, idx[id], want)
			}
		})
	}
}

func TestApplyWorksForInvoices(t *testing.T) {
	invoices := []domain.Invoice{{ID: "inv-1", Balance: d("3")}, {ID: "inv-2", Balance: d("4")}}
	idx := BalanceIndex{"inv-2": d("1.5")}

	got := Apply(invoices,
		func(i domain.Invoice) domain.ID { return i.ID },
		func(i *domain.Invoice, v decimal.Decimal) { i.Balance = v },
		idx,
	)

	assert.True(t, got[0].Balance.IsZero())
	assert.True(t, got[1].Balance.Equal(d("1.5")))
}

func TestSummarize(t *testing.T) {
	overdue := []domain.Invoice{
		{ID: "i1", CustomerID: "c1", Balance: d("100")},
		{ID: "i2", CustomerID: "c1", Balance: d("50.5")},
		{ID: "i3", CustomerID: "c2", Balance: d("10")},
	}
	invoices := append([]domain.Invoice{
		{ID: "i4", CustomerID: "c3", Balance: d("0")},
		{ID: "i5", CustomerID: "c3", Balance: d("25")},
	}, overdue...)
	customers := []domain.Customer{
		{ID: "c1", OutstandingBalance: d("150.5")},
		{ID: "c2", OutstandingBalance: d("10")},
		{ID: "c3", OutstandingBalance: d("25")},
		{ID: "c4"},
	}

	s := Summarize(overdue, invoices, customers)

	assert.Equal(t, 3, s.OverdueCount)
	assert.True(t, s.TotalOverdue.Equal(d("160.5")))
	assert.Equal(t, 5, s.TotalInvoices)
	assert.Equal(t, 4, s.InvoicesWithOutstanding)
	assert.True(t, s.TotalOutstandingBalance.Equal(d("185.5")))
	assert.Equal(t, 4, s.TotalCustomers)
	assert.Equal(t, 3, s.CustomersWithOutstanding)
	assert.Equal(t, 2, s.CustomersWithOverdueInvoices)
}

func TestCustomerInvoices(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: "i1", CustomerID: "c1", Balance: d("10")},
		{ID: "i2", CustomerID: "c2", Balance: d("20")},
		{ID: "i3", CustomerID: "c1", Balance: d("0.5")},
	}

	got, total := CustomerInvoices(invoices, "c1")
	require.Len(t, got, 2)
	assert.Equal(t, domain.ID("i1"), got[0].ID)
	assert.Equal(t, domain.ID("i3"), got[1].ID)
	assert.True(t, total.Equal(d("10.5")))

	none, zero := CustomerInvoices(invoices, "c9")
	assert.Empty(t, none)
	assert.True(t, zero.IsZero())
}
