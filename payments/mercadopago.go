package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// MercadoPago is a client for the Mercado Pago payments API.
type MercadoPago struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// NewMercadoPago creates a new Mercado Pago API client.
func NewMercadoPago(baseURL, accessToken string) *MercadoPago {
	return &MercadoPago{
		BaseURL:     baseURL,
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type createPaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	Payer             struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
	} `json:"payer"`
}

type paymentResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	PointOfInteraction struct {
		TransactionData struct {
			QrCode       string `json:"qr_code"`
			QrCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

type errorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *errorResponse) Error() string {
	return fmt.Sprintf("mercado pago api error (status %d): %s", e.Status, e.Message)
}

// CreatePixPayment creates a PIX payment intent and returns its payable
// instrument. Amounts are sent in major currency units (reais).
func (m *MercadoPago) CreatePixPayment(ctx context.Context, input CreatePixPaymentInput) (*PixCharge, error) {
	payload := createPaymentRequest{
		TransactionAmount: float64(input.AmountCents) / 100,
		Description:       input.Description,
		PaymentMethodID:   "pix",
	}
	payload.Payer.Email = input.PayerEmail
	if payload.Payer.Email == "" {
		payload.Payer.Email = "noemail@example.com"
	}
	payload.Payer.FirstName = input.PayerName
	if payload.Payer.FirstName == "" {
		payload.Payer.FirstName = "Cliente"
	}

	var result paymentResponse
	if err := m.do(ctx, http.MethodPost, "/v1/payments", payload, &result); err != nil {
		return nil, err
	}

	pixData := result.PointOfInteraction.TransactionData
	if pixData.QrCode == "" {
		return nil, fmt.Errorf("mercado pago response has no PIX qr_code (payment %d)", result.ID)
	}

	charge := &PixCharge{
		PixCode:    pixData.QrCode,
		ExternalID: strconv.FormatInt(result.ID, 10),
	}
	if pixData.QrCodeBase64 != "" {
		charge.PixQrCode = "data:image/png;base64," + pixData.QrCodeBase64
	}
	return charge, nil
}

// PaymentStatus fetches the settlement status of a payment by its id.
func (m *MercadoPago) PaymentStatus(ctx context.Context, externalID string) (string, error) {
	if externalID == "" {
		return "", fmt.Errorf("payment has no gateway id")
	}

	var result paymentResponse
	if err := m.do(ctx, http.MethodGet, "/v1/payments/"+externalID, nil, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}

func (m *MercadoPago) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, m.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.AccessToken)
	if method == http.MethodPost {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling mercado pago: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &errorResponse{Status: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil {
			apiErr.Message = string(respBody)
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("error decoding response: %v", err)
	}
	return nil
}
