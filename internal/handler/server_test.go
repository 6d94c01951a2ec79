package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/mofer-pos/internal/domain/order"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Field   string `json:"field"`
}

func newTestServer(t *testing.T, orders OrderService, term TerminalService) http.Handler {
	t.Helper()
	srv, err := NewServer(NewHandler(orders, term), NewSecurityHandler(newTestKeys(), testPepper))
	require.NoError(t, err)
	return srv
}

func serve(h http.Handler, method, target, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

const submitJSON = `{
	"organizationId": "00000000-0000-4000-8000-000000000001",
	"locationId": "00000000-0000-4000-8000-000000000101",
	"externalOrderRef": "T1-0001",
	"taxRate": 0.06,
	"lines": [{"productId": "00000000-0000-4000-8000-000000000401", "quantity": 2}]
}`

func TestServer_SubmitOrder(t *testing.T) {
	svc := &mockOrderService{submit: submitResult(true)}
	srv := newTestServer(t, svc, nil)

	w := serve(srv, http.MethodPost, "/api/orders", "till-key", submitJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))

	var got struct {
		OrderID string  `json:"orderId"`
		Total   float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, orderID.String(), got.OrderID)
	assert.Equal(t, 11.13, got.Total)
	assert.Equal(t, 2, svc.lastSubmit.Lines[0].Quantity)
}

func TestServer_RejectsMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"trailing object", submitJSON + `{"lines":[]}`},
		{"trailing garbage", submitJSON + `garbage`},
		{"truncated", submitJSON[:40]},
		{"missing lines", `{"organizationId":"00000000-0000-4000-8000-000000000001"}`},
		{"bad uuid", strings.Replace(submitJSON, "00000000-0000-4000-8000-000000000401", "latte", 1)},
		{"string tax rate", strings.Replace(submitJSON, "0.06", `"0.06"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderService{submit: submitResult(false)}
			w := serve(newTestServer(t, svc, nil), http.MethodPost, "/api/orders", "till-key", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "InvalidRequest", decodeError(t, w).Kind)
			assert.False(t, svc.called)
		})
	}
}

func TestServer_Unauthorized(t *testing.T) {
	term := &mockTerminalService{}
	srv := newTestServer(t, nil, term)
	target := "/api/payments/" + paymentID.String() + "/terminal-result"

	w := serve(srv, http.MethodPost, target, "", `{"status":"Declined"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, w).Kind)

	w = serve(srv, http.MethodPost, target, "guess", `{"status":"Declined"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(srv, http.MethodPost, target, "reporting-key", `{"status":"Declined"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", decodeError(t, w).Kind)

	assert.False(t, term.called)
}

func TestServer_InvalidPathParameter(t *testing.T) {
	term := &mockTerminalService{}
	w := serve(newTestServer(t, nil, term), http.MethodPost,
		"/api/payments/not-a-uuid/terminal-result", "till-key", `{"status":"Approved"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "InvalidRequest", body.Kind)
	assert.Equal(t, "paymentId", body.Field)
	assert.False(t, term.called)
}

func TestServer_DomainError(t *testing.T) {
	term := &mockTerminalService{err: &order.PaymentStateError{Current: order.PaymentRefunded}}
	w := serve(newTestServer(t, nil, term), http.MethodPost,
		"/api/payments/"+paymentID.String()+"/terminal-result", "till-key", `{"status":"approved"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "PaymentStateConflict", body.Kind)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Equal(t, order.TerminalApproved, term.res.Status)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, nil, nil)

	w := serve(srv, http.MethodGet, "/api/customers", "till-key", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NotFound", decodeError(t, w).Kind)

	w = serve(srv, http.MethodDelete, "/api/orders", "till-key", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Header().Get("Allow"), "POST")
}
