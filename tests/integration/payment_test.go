//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func submitForPayment(t *testing.T) submitResponse {
	t.Helper()

	resp := doPost(t, "/api/orders", newSubmit(t, latteOat(2)))
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	return decodeJSON[submitResponse](t, resp)
}

func terminalPath(paymentID string) string {
	return "/api/payments/" + paymentID + "/terminal-result"
}

func TestTerminalResult_Approved(t *testing.T) {
	created := submitForPayment(t)

	resp := doPost(t, terminalPath(created.PaymentID), terminalRequest{
		Status:                 "Approved",
		TerminalTransactionRef: strPtr("txn-001"),
		ApprovalCode:           strPtr("A1B2C3"),
		CardBrand:              strPtr("VISA"),
		Last4:                  strPtr("4242"),
	})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	got := decodeJSON[terminalResponse](t, resp)
	if got.PaymentStatus != "Approved" || got.OrderStatus != "Completed" {
		t.Errorf("status: got %s/%s, want Approved/Completed", got.PaymentStatus, got.OrderStatus)
	}
	if got.OrderID != created.OrderID || got.OrderTotal != created.Total {
		t.Errorf("outcome: %+v", got)
	}

	resp = doGet(t, "/api/orders/"+created.OrderID+"?organizationId="+orgID)
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	order := decodeJSON[orderDetail](t, resp)
	if order.Status != "Completed" || order.CompletedAt == nil {
		t.Errorf("order after approval: status %s, completedAt %v", order.Status, order.CompletedAt)
	}
	if len(order.Payments) != 1 {
		t.Fatalf("payments: got %d, want 1", len(order.Payments))
	}
	p := order.Payments[0]
	if p.Last4 == nil || *p.Last4 != "4242" || p.CapturedAt == nil {
		t.Errorf("captured payment: %+v", p)
	}
}

func TestTerminalResult_Resend(t *testing.T) {
	created := submitForPayment(t)
	approve := terminalRequest{Status: "approved", Last4: strPtr("1111")}

	resp := doPost(t, terminalPath(created.PaymentID), approve)
	expectStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	// A late decline for a settled payment is ignored.
	resp = doPost(t, terminalPath(created.PaymentID), terminalRequest{Status: "Declined"})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	got := decodeJSON[terminalResponse](t, resp)
	if got.PaymentStatus != "Approved" || got.OrderStatus != "Completed" {
		t.Errorf("resend: got %s/%s, want Approved/Completed", got.PaymentStatus, got.OrderStatus)
	}
}

func TestTerminalResult_Declined(t *testing.T) {
	created := submitForPayment(t)

	resp := doPost(t, terminalPath(created.PaymentID), terminalRequest{Status: "Declined"})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	got := decodeJSON[terminalResponse](t, resp)
	if got.PaymentStatus != "Declined" || got.OrderStatus != "Draft" {
		t.Errorf("decline: got %s/%s, want Declined/Draft", got.PaymentStatus, got.OrderStatus)
	}
}

func TestTerminalResult_Errors(t *testing.T) {
	created := submitForPayment(t)

	tests := []struct {
		name   string
		path   string
		body   terminalRequest
		status int
		kind   string
	}{
		{"unknown payment", terminalPath("6f1c7d2e-0000-4000-8000-000000000000"), terminalRequest{Status: "Approved"}, http.StatusNotFound, "PaymentNotFound"},
		{"bad id", terminalPath("not-a-uuid"), terminalRequest{Status: "Approved"}, http.StatusBadRequest, "InvalidRequest"},
		{"unknown status", terminalPath(created.PaymentID), terminalRequest{Status: "Pending"}, http.StatusBadRequest, "UnknownTerminalStatus"},
		{"bad last4", terminalPath(created.PaymentID), terminalRequest{Status: "Approved", Last4: strPtr("424")}, http.StatusBadRequest, "InvalidLast4"},
		{"blank last4", terminalPath(created.PaymentID), terminalRequest{Status: "Approved", Last4: strPtr("  ")}, http.StatusBadRequest, "InvalidLast4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doPost(t, tt.path, tt.body)
			defer resp.Body.Close()
			expectStatus(t, resp, tt.status)

			got := decodeJSON[errorResponse](t, resp)
			if got.Kind != tt.kind {
				t.Errorf("kind: got %q, want %q (%s)", got.Kind, tt.kind, got.Message)
			}
		})
	}
}

func TestTerminalResult_NoAuth(t *testing.T) {
	created := submitForPayment(t)

	resp := doPostWithAuth(t, terminalPath(created.PaymentID), terminalRequest{Status: "Approved"}, "")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusUnauthorized)
}
