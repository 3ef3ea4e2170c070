// Package mockapi is an in-memory stand-in for the remote invoice service,
// for local development against the dashboard.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/invoice-dashboard/internal/auth"
	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

const dateLayout = "2006-01-02"

type Server struct {
	username string
	password string
	now      func() time.Time

	mu        sync.Mutex
	customers map[int64]*customer
	invoices  map[int64]*invoice
	nextID    int64
}

func New(username, password string) *Server {
	return &Server{
		username:  username,
		password:  password,
		now:       time.Now,
		customers: make(map[int64]*customer),
		invoices:  make(map[int64]*invoice),
		nextID:    100,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /login", s.login)
	mux.HandleFunc("GET /api/health", s.health)
	mux.HandleFunc("GET /api/customers", s.listCustomers)
	mux.HandleFunc("GET /api/customers/outstanding", s.listOutstanding)
	mux.HandleFunc("POST /api/customers", s.createCustomer)
	mux.HandleFunc("GET /api/customers/{id}", s.getCustomer)
	mux.HandleFunc("PUT /api/customers/{id}", s.updateCustomer)
	mux.HandleFunc("GET /api/invoices", s.listInvoices)
	mux.HandleFunc("GET /api/invoices/overdue", s.listOverdue)
	mux.HandleFunc("GET /api/invoices/{id}", s.getInvoice)
	mux.HandleFunc("PUT /api/invoices/{id}", s.updateInvoice)
	mux.HandleFunc("POST /api/invoices/{id}/send", s.sendInvoice)
	mux.HandleFunc("POST /api/invoices/{id}/payments", s.recordPayment)
	return s.requireAuth(mux)
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, err := auth.ParseBasic(r.Header.Get("Authorization"))
		if err != nil || user != s.username || pass != s.password {
			writeError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "authenticated"})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "UP",
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"database":  "UP",
	})
}

func (s *Server) listCustomers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Customer, 0, len(s.customers))
	for _, id := range sortedKeys(s.customers) {
		out = append(out, s.customers[id].summary())
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listOutstanding(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.OutstandingEntry{}
	for _, id := range sortedKeys(s.customers) {
		balance := s.outstandingLocked(id)
		if !balance.IsPositive() {
			continue
		}
		out = append(out, domain.OutstandingEntry{
			ID:                 idOf(id),
			Name:               s.customers[id].name,
			OutstandingBalance: domain.NewBalance(balance, domain.DefaultCurrency),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customerLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, c.detail(s.outstandingLocked(c.id)))
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in domain.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body", nil)
		return
	}
	if details := validateCustomer(in); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "Validation failed", details)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c := &customer{id: s.nextID}
	applyCustomer(c, in)
	s.customers[c.id] = c
	slog.Info("customer created", "customer_id", c.id)
	writeJSON(w, http.StatusCreated, c.detail(decimal.Zero))
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var in domain.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body", nil)
		return
	}
	if details := validateCustomer(in); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "Validation failed", details)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customerLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	applyCustomer(c, in)
	writeJSON(w, http.StatusOK, c.detail(s.outstandingLocked(c.id)))
}

func (s *Server) listInvoices(w http.ResponseWriter, _ *http.Request) {
	s.writeInvoices(w, func(*invoice) bool { return true })
}

func (s *Server) listOverdue(w http.ResponseWriter, _ *http.Request) {
	today := s.now().Format(dateLayout)
	s.writeInvoices(w, func(inv *invoice) bool { return inv.overdue(today) })
}

func (s *Server) writeInvoices(w http.ResponseWriter, keep func(*invoice) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Invoice{}
	for _, id := range sortedKeys(s.invoices) {
		inv := s.invoices[id]
		if keep(inv) {
			out = append(out, inv.summary(s.customers[inv.customerID]))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoiceLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Invoice not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, inv.detail(s.customers[inv.customerID]))
}

func (s *Server) updateInvoice(w http.ResponseWriter, r *http.Request) {
	var in domain.InvoiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoiceLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Invoice not found", nil)
		return
	}
	customerID, err := strconv.ParseInt(in.CustomerID.String(), 10, 64)
	if err != nil || s.customers[customerID] == nil {
		writeError(w, http.StatusBadRequest, "Validation failed", map[string]string{"customerId": "unknown customer"})
		return
	}
	if len(in.LineItems) == 0 {
		writeError(w, http.StatusBadRequest, "Validation failed", map[string]string{"lineItems": "at least one line item is required"})
		return
	}

	inv.customerID = customerID
	inv.issueDate = in.IssueDate
	inv.dueDate = in.DueDate
	inv.currency = in.Currency
	inv.notes = in.Notes
	inv.taxRate = decimal.Zero
	if in.TaxRate != nil {
		inv.taxRate = *in.TaxRate
	}
	inv.lineItems = inv.lineItems[:0]
	for _, li := range in.LineItems {
		inv.lineItems = append(inv.lineItems, lineItem{description: li.Description, quantity: li.Quantity, unitPrice: li.UnitPriceAmount})
	}
	writeJSON(w, http.StatusOK, inv.detail(s.customers[customerID]))
}

func (s *Server) sendInvoice(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoiceLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Invoice not found", nil)
		return
	}
	if inv.status != domain.InvoiceStatusDraft {
		writeError(w, http.StatusConflict, "Only draft invoices can be sent", nil)
		return
	}
	inv.status = domain.InvoiceStatusSent
	inv.sentDate = s.now().Format(dateLayout)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) recordPayment(w http.ResponseWriter, r *http.Request) {
	var in domain.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body", nil)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoiceLocked(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Invoice not found", nil)
		return
	}
	switch {
	case !in.Amount.IsPositive():
		writeError(w, http.StatusBadRequest, "Validation failed", map[string]string{"amount": "must be greater than zero"})
		return
	case in.Amount.GreaterThan(inv.balance()):
		writeError(w, http.StatusBadRequest, "Validation failed", map[string]string{"amount": "exceeds outstanding balance"})
		return
	case in.Currency != "" && in.Currency != inv.currency:
		writeError(w, http.StatusBadRequest, "Validation failed", map[string]string{"currency": "must match invoice currency"})
		return
	}

	s.nextID++
	inv.payments = append(inv.payments, payment{id: s.nextID, amount: in.Amount, date: in.PaymentDate, method: in.Method, notes: in.Notes})
	if !inv.balance().IsPositive() {
		inv.status = domain.InvoiceStatusPaid
	}
	slog.Info("payment recorded", "invoice_id", inv.id, "amount", in.Amount.String())
	writeJSON(w, http.StatusCreated, inv.detail(s.customers[inv.customerID]).Payments[len(inv.payments)-1])
}

func (s *Server) outstandingLocked(customerID int64) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range s.invoices {
		if inv.customerID == customerID && inv.status != domain.InvoiceStatusDraft {
			total = total.Add(inv.balance())
		}
	}
	return total
}

func (s *Server) customerLocked(r *http.Request) (*customer, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil, false
	}
	c, ok := s.customers[id]
	return c, ok
}

func (s *Server) invoiceLocked(r *http.Request) (*invoice, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return nil, false
	}
	inv, ok := s.invoices[id]
	return inv, ok
}

func validateCustomer(in domain.CustomerInput) map[string]string {
	details := map[string]string{}
	if in.Name == "" {
		details["name"] = "must not be blank"
	}
	if in.Email == "" {
		details["email"] = "must not be blank"
	}
	if in.PaymentTerms == "" {
		details["paymentTerms"] = "must not be null"
	}
	return details
}

func applyCustomer(c *customer, in domain.CustomerInput) {
	c.name = in.Name
	c.email = in.Email
	c.phone = in.Phone
	c.paymentTerms = in.PaymentTerms
	c.address = in.Address
}

func idOf(id int64) domain.ID {
	return domain.ID(strconv.FormatInt(id, 10))
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details any) {
	body := map[string]any{"message": message}
	if details != nil {
		body["details"] = details
	}
	writeJSON(w, status, body)
}
