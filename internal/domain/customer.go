package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentTerms string

const (
	PaymentTermsDueOnReceipt PaymentTerms = "DUE_ON_RECEIPT"
	PaymentTermsNet15        PaymentTerms = "NET_15"
	PaymentTermsNet30        PaymentTerms = "NET_30"
	PaymentTermsNet45        PaymentTerms = "NET_45"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// UnmarshalJSON accepts the structured form or a single free-text line,
// which lands in Street.
func (a *Address) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var line string
		if err := json.Unmarshal(data, &line); err != nil {
			return fmt.Errorf("decode address: %w", err)
		}
		*a = Address{Street: line}
		return nil
	}

	type plain Address
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode address: %w", err)
	}
	*a = Address(p)
	return nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// Customer is a list entry. OutstandingBalance is always a plain amount;
// whatever shape the API used is normalized on decode.
type Customer struct {
	ID                 ID              `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            *Address        `json:"address,omitempty"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	aux := struct {
		*alias
		OutstandingBalance Balance `json:"outstandingBalance"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.OutstandingBalance = aux.OutstandingBalance.Amount
	return nil
}

// OutstandingEntry is one row of the customers-with-balance listing.
type OutstandingEntry struct {
	ID                 ID      `json:"id"`
	Name               string  `json:"name,omitempty"`
	OutstandingBalance Balance `json:"outstandingBalance"`
}

type CustomerDetail struct {
	ID                 ID           `json:"id"`
	Name               string       `json:"name"`
	Email              string       `json:"email,omitempty"`
	Phone              string       `json:"phone,omitempty"`
	Street             string       `json:"street,omitempty"`
	City               string       `json:"city,omitempty"`
	PostalCode         string       `json:"postalCode,omitempty"`
	Country            string       `json:"country,omitempty"`
	Address            *Address     `json:"address,omitempty"`
	PaymentTerms       PaymentTerms `json:"paymentTerms,omitempty"`
	OutstandingBalance Balance      `json:"outstandingBalance"`
}

// PostalAddress prefers the flat fields and falls back to a nested address.
func (c CustomerDetail) PostalAddress() Address {
	flat := Address{Street: c.Street, City: c.City, PostalCode: c.PostalCode, Country: c.Country}
	if flat.IsZero() && c.Address != nil {
		return *c.Address
	}
	return flat
}

// CustomerInput is the create/update request body.
type CustomerInput struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	PaymentTerms PaymentTerms `json:"paymentTerms"`
	Address      Address      `json:"address"`
}
