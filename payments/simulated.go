package payments

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// simulatedIDPrefix marks instruments that were never registered with a real
// provider, so status checks for them are routed back to this gateway.
const simulatedIDPrefix = "sim-"

// Simulated is the always-approve gateway. It issues a locally generated,
// unguessable PIX code and a stub SVG rendering of it, and reports every
// payment as approved. Not a real payable instrument; for development and
// for degraded operation when the real provider is unreachable.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (s *Simulated) CreatePixPayment(ctx context.Context, input CreatePixPaymentInput) (*PixCharge, error) {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("error generating PIX code: %v", err)
	}
	pixCode := "PIX-" + hex.EncodeToString(token)

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200"><rect width="200" height="200" fill="#fff"/><text x="10" y="100" font-size="10">%s</text></svg>`, pixCode)
	qrCode := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	return &PixCharge{
		PixCode:    pixCode,
		PixQrCode:  qrCode,
		ExternalID: simulatedIDPrefix + uuid.NewString(),
	}, nil
}

func (s *Simulated) PaymentStatus(ctx context.Context, externalID string) (string, error) {
	return StatusApproved, nil
}
