package testutil

import "net/http"

// Basic header for admin:admin.
const AdminAuth = "Basic YWRtaW46YWRtaW4="

const (
	CustomersJSON = `[
		{"id": 1, "name": "Acme Corp", "email": "billing@acme.test", "phone": "555-0100", "address": "1 Main St"},
		{"id": 2, "name": "Globex", "email": "ap@globex.test"},
		{"id": 3, "name": "Initech", "email": "finance@initech.test"}
	]`

	OutstandingJSON = `[
		{"id": 1, "name": "Acme Corp", "outstandingBalance": 0.005},
		{"id": 2, "name": "Globex", "outstandingBalance": {"amount": 50.999, "currency": "USD"}}
	]`

	InvoicesJSON = `[
		{"id": 10, "customerId": 1, "customerName": "Acme Corp", "invoiceNumber": "INV-0010", "issueDate": "2024-01-01", "dueDate": "2024-01-31", "status": "OVERDUE", "total": 100, "balance": 100},
		{"id": 11, "customerId": 2, "customerName": "Globex", "invoiceNumber": "INV-0011", "issueDate": "2024-02-01", "dueDate": "2024-03-02", "status": "SENT", "total": 60.5, "balance": 50.99},
		{"id": 12, "customerId": 1, "customerName": "Acme Corp", "invoiceNumber": "INV-0012", "issueDate": "2024-02-10", "dueDate": "2024-02-10", "status": "PAID", "total": 20, "balance": 0}
	]`

	OverdueJSON = `[
		{"id": 10, "customerId": 1, "customerName": "Acme Corp", "invoiceNumber": "INV-0010", "issueDate": "2024-01-01", "dueDate": "2024-01-31", "status": "OVERDUE", "total": 100, "balance": 100}
	]`

	HealthJSON = `{"status": "UP", "timestamp": "2024-03-01T12:00:00Z", "database": "UP"}`

	CustomerDetailJSON = `{
		"id": 1, "name": "Acme Corp", "email": "billing@acme.test", "phone": "555-0100",
		"street": "1 Main St", "city": "Springfield", "postalCode": "12345", "country": "US",
		"paymentTerms": "NET_30", "outstandingBalance": {"amount": 100, "currency": "USD"}
	}`

	InvoiceDetailJSON = `{
		"id": 10, "customerId": 1, "customerName": "Acme Corp", "invoiceNumber": "INV-0010",
		"issueDate": "2024-01-01", "dueDate": "2024-01-31", "status": "OVERDUE",
		"lineItems": [
			{"description": "Consulting", "quantity": 2, "unitPrice": {"amount": 50, "currency": "USD"}, "subtotal": {"amount": 100, "currency": "USD"}}
		],
		"payments": [],
		"taxRate": 0,
		"subtotal": {"amount": 100, "currency": "USD"},
		"tax": {"amount": 0, "currency": "USD"},
		"total": {"amount": 100, "currency": "USD"},
		"balance": {"amount": 100, "currency": "USD"}
	}`
)

// SeedReads registers every read endpoint with the fixtures above.
func SeedReads(f *FakeAPI) {
	f.JSON(http.MethodGet, "/api/customers", http.StatusOK, CustomersJSON)
	f.JSON(http.MethodGet, "/api/customers/outstanding", http.StatusOK, OutstandingJSON)
	f.JSON(http.MethodGet, "/api/customers/1", http.StatusOK, CustomerDetailJSON)
	f.JSON(http.MethodGet, "/api/invoices", http.StatusOK, InvoicesJSON)
	f.JSON(http.MethodGet, "/api/invoices/overdue", http.StatusOK, OverdueJSON)
	f.JSON(http.MethodGet, "/api/invoices/10", http.StatusOK, InvoiceDetailJSON)
	f.JSON(http.MethodGet, "/api/health", http.StatusOK, HealthJSON)
}
