package payments

import (
	"context"
)

// Settlement statuses reported by PaymentStatus. The vocabulary follows
// Mercado Pago; the simulated gateway uses the same values.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
)

// CreatePixPaymentInput describes the charge to create.
// AmountCents is in centavos; adapters convert to major units as needed.
type CreatePixPaymentInput struct {
	AmountCents int
	Description string
	PayerEmail  string
	PayerName   string
}

// PixCharge is a payable PIX instrument: the copy-paste code, its scannable
// rendering (a data URI) and the gateway's id for later status checks.
type PixCharge struct {
	PixCode    string
	PixQrCode  string
	ExternalID string
}

// Gateway creates PIX charges and reports their settlement status.
// Implementations: MercadoPago (real provider) and Simulated (always
// approves). Configuration selects one; they are never mixed in a handler.
type Gateway interface {
	CreatePixPayment(ctx context.Context, input CreatePixPaymentInput) (*PixCharge, error)
	PaymentStatus(ctx context.Context, externalID string) (string, error)
}
