package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
	"github.com/josh-kwaku/invoice-dashboard/internal/logging"
	"github.com/josh-kwaku/invoice-dashboard/internal/session"
	"github.com/josh-kwaku/invoice-dashboard/internal/testutil"
)

func newTestClient(t *testing.T, api *testutil.FakeAPI, store session.Store, opts ...Option) *Client {
	t.Helper()
	return New(api.URL(), store, append([]Option{WithTimeout(2 * time.Second)}, opts...)...)
}

func TestCredentialAttachedAtDispatch(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	testutil.SeedReads(api)
	store := session.NewMemory()
	client := newTestClient(t, api, store)
	ctx := context.Background()

	_, err := client.ListCustomers(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Store(testutil.AdminAuth))
	_, err = client.ListInvoices(ctx)
	require.NoError(t, err)

	reqs := api.Requests()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[0].Authorization)
	assert.Equal(t, testutil.AdminAuth, reqs[1].Authorization)
}

func TestRequestIDPropagation(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	testutil.SeedReads(api)
	client := newTestClient(t, api, session.NewMemory())

	ctx := logging.WithRequestID(context.Background(), "req-abc")
	_, err := client.Health(ctx)
	require.NoError(t, err)
	_, err = client.Health(context.Background())
	require.NoError(t, err)

	reqs := api.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "req-abc", reqs[0].RequestID)
	assert.NotEmpty(t, reqs[1].RequestID)
}

func TestUnauthorizedClearsStoreAndFiresHookOnce(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	testutil.SeedReads(api)
	api.RequireAuth(testutil.AdminAuth)

	store := session.NewMemory()
	require.NoError(t, store.Store("Basic stale"))

	var calls atomic.Int32
	var presentDuringHook bool
	client := newTestClient(t, api, store, WithUnauthorizedHandler(func(context.Context) {
		calls.Add(1)
		presentDuringHook = store.IsPresent()
	}))

	_, err := client.ListCustomers(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, store.IsPresent())
	assert.False(t, presentDuringHook, "credential must be cleared before the hook runs")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, api.Count(http.MethodGet, "/api/customers"), "401 must not be retried")
}

func TestStaleUnauthorizedKeepsNewerCredential(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	arrived := make(chan struct{})
	release := make(chan struct{})
	api.Handle(http.MethodGet, "/api/customers", func(w http.ResponseWriter, _ *http.Request) {
		close(arrived)
		<-release
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	})

	store := session.NewMemory()
	require.NoError(t, store.Store("Basic old"))
	var calls atomic.Int32
	client := newTestClient(t, api, store, WithUnauthorizedHandler(func(context.Context) { calls.Add(1) }))

	errc := make(chan error, 1)
	go func() {
		_, err := client.ListCustomers(context.Background())
		errc <- err
	}()

	<-arrived
	require.NoError(t, store.Store("Basic new"))
	close(release)

	require.ErrorIs(t, <-errc, ErrUnauthorized)
	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "Basic new", got)
	assert.Zero(t, calls.Load())
}

func TestRejectedLoginKeepsOtherStoredCredential(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	testutil.SeedReads(api)
	api.RequireAuth(testutil.AdminAuth)

	store := session.NewMemory()
	require.NoError(t, store.Store("Basic other"))
	var calls atomic.Int32
	client := newTestClient(t, api, store, WithUnauthorizedHandler(func(context.Context) { calls.Add(1) }))

	_, err := client.Login(context.Background(), "admin", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, store.IsPresent(), "a rejected login must not drop a different stored credential")
	assert.Zero(t, calls.Load())
}

func TestLogin(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodGet, "/login", http.StatusOK, `{}`)
	api.RequireAuth(testutil.AdminAuth)

	store := session.NewMemory()
	require.NoError(t, store.Store("Basic other"))
	client := newTestClient(t, api, store)

	header, err := client.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, testutil.AdminAuth, header)

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, testutil.AdminAuth, reqs[0].Authorization, "explicit header must not be replaced by the stored one")

	_, err = client.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestReadEndpointsDecode(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	testutil.SeedReads(api)
	client := newTestClient(t, api, session.NewMemory())
	ctx := context.Background()

	customers, err := client.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, domain.ID("1"), customers[0].ID)
	require.NotNil(t, customers[0].Address)
	assert.Equal(t, "1 Main St", customers[0].Address.Street)

	outstanding, err := client.ListOutstandingCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, outstanding, 2)
	assert.True(t, outstanding[1].OutstandingBalance.Amount.Equal(decimal.RequireFromString("50.999")))

	overdue, err := client.ListOverdueInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, domain.InvoiceStatusOverdue, overdue[0].Status)

	inv, err := client.GetInvoice(ctx, "10")
	require.NoError(t, err)
	assert.Equal(t, "INV-0010", inv.InvoiceNumber)
	assert.True(t, inv.Balance.Amount.Equal(decimal.NewFromInt(100)))

	cust, err := client.GetCustomer(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentTermsNet30, cust.PaymentTerms)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.True(t, health.IsUp())
}

func TestNotFoundUnwrapsToDomainError(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := newTestClient(t, api, session.NewMemory())

	_, err := client.GetInvoice(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestWritesSendJSONBodies(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodPost, "/api/customers", http.StatusCreated, `{"id": 42, "name": "New Co"}`)
	api.JSON(http.MethodPut, "/api/customers/42", http.StatusOK, ``)
	api.JSON(http.MethodPost, "/api/invoices/10/send", http.StatusNoContent, ``)
	api.JSON(http.MethodPost, "/api/invoices/10/payments", http.StatusCreated, `{"id": 1}`)
	api.JSON(http.MethodPut, "/api/invoices/10", http.StatusOK, `{}`)
	client := newTestClient(t, api, session.NewMemory())
	ctx := context.Background()

	created, err := client.CreateCustomer(ctx, domain.CustomerInput{Name: "New Co", Email: "a@b.test", PaymentTerms: domain.PaymentTermsNet15})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("42"), created.ID)

	require.NoError(t, client.UpdateCustomer(ctx, "42", domain.CustomerInput{Name: "New Co"}))
	require.NoError(t, client.SendInvoice(ctx, "10"))
	require.NoError(t, client.RecordPayment(ctx, "10", domain.PaymentInput{
		Amount:      decimal.RequireFromString("25.50"),
		PaymentDate: "2024-03-01",
		Method:      "BANK_TRANSFER",
		Currency:    "USD",
	}))
	require.NoError(t, client.UpdateInvoice(ctx, "10", domain.InvoiceUpdate{CustomerID: "1", Currency: "USD"}))

	reqs := api.Requests()
	require.Len(t, reqs, 5)
	assert.Empty(t, reqs[2].Body, "send carries no body")

	var payment map[string]any
	require.NoError(t, json.Unmarshal(reqs[3].Body, &payment))
	assert.Equal(t, 25.5, payment["amount"])
	assert.NotContains(t, payment, "notes")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name: "details object keeps payload order",
			err:  &APIError{Status: 400, Message: "Validation failed", Details: json.RawMessage(`{"name":"must not be blank","email":"invalid"}`)},
			want: "name: must not be blank, email: invalid",
		},
		{
			name: "details string",
			err:  &APIError{Status: 400, Message: "Bad", Details: json.RawMessage(`"Amount too large"`)},
			want: "Amount too large",
		},
		{
			name: "details list of field errors",
			err:  &APIError{Status: 400, Details: json.RawMessage(`[{"field":"amount","message":"must be positive"}]`)},
			want: "amount: must be positive",
		},
		{
			name: "message when no details",
			err:  &APIError{Status: 409, Message: "Invoice already sent"},
			want: "Invoice already sent",
		},
		{
			name: "wrapped api error",
			err:  errors.Join(errors.New("SendInvoice"), &APIError{Status: 409, Message: "Invoice already sent"}),
			want: "Invoice already sent",
		},
		{
			name: "bare status",
			err:  &APIError{Status: 500},
			want: "request failed with status code 500",
		},
		{
			name:     "transport failure",
			err:      fmt.Errorf("ListCustomers: send: %w", &url.Error{Op: "Get", URL: "http://127.0.0.1:1/api/customers", Err: errors.New("connection refused")}),
			fallback: "Failed to fetch customers",
			want:     MsgNetworkError,
		},
		{
			name:     "transport timeout",
			err:      &url.Error{Op: "Get", URL: "http://api/customers", Err: context.DeadlineExceeded},
			fallback: "Failed to fetch customers",
			want:     MsgTimeout,
		},
		{
			name:     "internal error uses fallback",
			err:      errors.New("ListInvoices: decode response: unexpected EOF"),
			fallback: "Failed to fetch invoices",
			want:     "Failed to fetch invoices",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorMessage(tc.err, tc.fallback))
		})
	}
}

func TestDecodeAPIErrorPayload(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.JSON(http.MethodPut, "/api/customers/1", http.StatusBadRequest,
		`{"message":"Validation failed","details":{"email":"must be a well-formed email address"}}`)
	client := newTestClient(t, api, session.NewMemory())

	err := client.UpdateCustomer(context.Background(), "1", domain.CustomerInput{})
	require.Error(t, err)
	assert.Equal(t, "email: must be a well-formed email address", ErrorMessage(err, "fallback"))
}

func TestUnreachableAPIMessage(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := newTestClient(t, api, session.NewMemory())
	api.Close()

	_, err := client.ListCustomers(context.Background())

	require.Error(t, err)
	assert.Equal(t, MsgNetworkError, ErrorMessage(err, "Failed to fetch customers"))
}
