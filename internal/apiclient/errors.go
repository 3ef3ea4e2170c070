package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/josh-kwaku/invoice-dashboard/internal/domain"
)

// ErrUnauthorized is returned for any 401 from the API, after the stored
// credential has been cleared.
var ErrUnauthorized = errors.New("unauthorized")

const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Details json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed with status code %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
		apiErr.Details = payload.Details
	}
	return apiErr
}

// Messages for requests that never got an answer from the API.
const (
	MsgNetworkError = "Network Error"
	MsgTimeout      = "Request timed out"
)

// ErrorMessage derives a user-facing message from err. Field-level details
// from the API win over its message, which wins over the status line.
// Transport failures get a short generic message; anything else uses
// fallback. The full error stays with the caller for logging.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := flattenDetails(apiErr.Details); msg != "" {
			return msg
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return MsgTimeout
		}
		return MsgNetworkError
	}
	return fallback
}

// flattenDetails renders a details payload. Objects keep their key order.
func flattenDetails(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{':
		return flattenObject(raw)
	case '[':
		var items []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return ""
		}
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if it.Field == "" {
				parts = append(parts, it.Message)
				continue
			}
			parts = append(parts, it.Field+": "+it.Message)
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func flattenObject(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return ""
	}

	var parts []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		key, ok := tok.(string)
		if !ok {
			return ""
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return ""
		}
		parts = append(parts, key+": "+detailValue(val))
	}
	return strings.Join(parts, ", ")
}

func detailValue(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(v))
}
