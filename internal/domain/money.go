package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// The remote API reads and writes amounts as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const DefaultCurrency = "USD"

type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Balance is an amount the API may report as absent, as a bare number, or
// as a Money object. Valid is false only when the field was absent or null.
type Balance struct {
	Money
	Valid bool
}

func NewBalance(amount decimal.Decimal, currency string) Balance {
	return Balance{Money: Money{Amount: amount, Currency: currency}, Valid: true}
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = Balance{}
		return nil
	}

	if data[0] == '{' {
		var m Money
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBalance, err)
		}
		*b = Balance{Money: m, Valid: true}
		return nil
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBalance, err)
	}
	*b = Balance{Money: Money{Amount: amount}, Valid: true}
	return nil
}

func (b Balance) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(b.Money)
}
