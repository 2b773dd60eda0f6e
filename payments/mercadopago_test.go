package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMercadoPago_CreatePixPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 19.90, payload["transaction_amount"])
		assert.Equal(t, "pix", payload["payment_method_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": 123456789,
			"status": "pending",
			"point_of_interaction": {
				"transaction_data": {
					"qr_code": "00020126BR.GOV.BCB.PIX",
					"qr_code_base64": "aVZCT1J3MEtHZ28="
				}
			}
		}`))
	}))
	defer server.Close()

	gateway := NewMercadoPago(server.URL, "test-token")
	charge, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{
		AmountCents: 1990,
		Description: "Assinatura - 1 mês",
		PayerEmail:  "user@test.com",
		PayerName:   "Test User",
	})

	assert.NoError(t, err)
	assert.Equal(t, "00020126BR.GOV.BCB.PIX", charge.PixCode)
	assert.Equal(t, "data:image/png;base64,aVZCT1J3MEtHZ28=", charge.PixQrCode)
	assert.Equal(t, "123456789", charge.ExternalID)
}

func TestMercadoPago_CreatePixPayment_MissingQrCodeIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "status": "pending"}`))
	}))
	defer server.Close()

	gateway := NewMercadoPago(server.URL, "test-token")
	_, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{AmountCents: 1990})

	assert.Error(t, err)
}

func TestMercadoPago_CreatePixPayment_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid access token", "status": 401}`))
	}))
	defer server.Close()

	gateway := NewMercadoPago(server.URL, "bad-token")
	_, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{AmountCents: 1990})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestMercadoPago_PaymentStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/123456789", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 123456789, "status": "approved"}`))
	}))
	defer server.Close()

	gateway := NewMercadoPago(server.URL, "test-token")
	status, err := gateway.PaymentStatus(context.Background(), "123456789")

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
}

func TestMercadoPago_PaymentStatus_RequiresID(t *testing.T) {
	gateway := NewMercadoPago("http://localhost:1", "test-token")

	_, err := gateway.PaymentStatus(context.Background(), "")
	assert.Error(t, err)
}
