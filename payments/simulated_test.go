package payments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulated_CreatePixPayment(t *testing.T) {
	gateway := NewSimulated()

	charge, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{
		AmountCents: 1990,
		Description: "Assinatura - 1 mês",
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(charge.PixCode, "PIX-"))
	assert.True(t, strings.HasPrefix(charge.PixQrCode, "data:image/svg+xml;base64,"))
	assert.True(t, strings.HasPrefix(charge.ExternalID, "sim-"))
}

func TestSimulated_CodesAreUnguessable(t *testing.T) {
	gateway := NewSimulated()

	first, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{AmountCents: 1990})
	assert.NoError(t, err)
	second, err := gateway.CreatePixPayment(context.Background(), CreatePixPaymentInput{AmountCents: 1990})
	assert.NoError(t, err)

	assert.NotEqual(t, first.PixCode, second.PixCode)
	assert.NotEqual(t, first.ExternalID, second.ExternalID)
}

func TestSimulated_AlwaysApproves(t *testing.T) {
	gateway := NewSimulated()

	status, err := gateway.PaymentStatus(context.Background(), "sim-whatever")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	status, err = gateway.PaymentStatus(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
}
