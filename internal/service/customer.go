package service

import (
	"strings"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

type CustomerForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PaymentTerms string `json:"paymentTerms"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// CustomerFormFrom prefills the edit form from a loaded customer.
func CustomerFormFrom(c *domain.CustomerDetail) CustomerForm {
	addr := c.PostalAddress()
	return CustomerForm{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		PaymentTerms: string(c.PaymentTerms),
		Street:       addr.Street,
		City:         addr.City,
		PostalCode:   addr.PostalCode,
		Country:      addr.Country,
	}
}

func (f CustomerForm) trimmed() CustomerForm {
	return CustomerForm{
		Name:         strings.TrimSpace(f.Name),
		Email:        strings.TrimSpace(f.Email),
		Phone:        strings.TrimSpace(f.Phone),
		PaymentTerms: strings.TrimSpace(f.PaymentTerms),
		Street:       strings.TrimSpace(f.Street),
		City:         strings.TrimSpace(f.City),
		PostalCode:   strings.TrimSpace(f.PostalCode),
		Country:      strings.TrimSpace(f.Country),
	}
}

func (f CustomerForm) Validate() error {
	t := f.trimmed()
	switch {
	case t.Name == "":
		return invalid("Customer name is required")
	case t.Email == "":
		return invalid("Email is required")
	case t.PaymentTerms == "":
		return invalid("Payment terms are required")
	case t.Street == "" || t.City == "" || t.PostalCode == "" || t.Country == "":
		return invalid("All address fields (Street, City, Postal Code, Country) are required")
	}
	return nil
}

// Payload validates the form and builds the request body.
func (f CustomerForm) Payload() (domain.CustomerInput, error) {
	if err := f.Validate(); err != nil {
		return domain.CustomerInput{}, err
	}
	t := f.trimmed()
	return domain.CustomerInput{
		Name:         t.Name,
		Email:        t.Email,
		Phone:        t.Phone,
		PaymentTerms: domain.PaymentTerms(t.PaymentTerms),
		Address: domain.Address{
			Street:     t.Street,
			City:       t.City,
			PostalCode: t.PostalCode,
			Country:    t.Country,
		},
	}, nil
}
