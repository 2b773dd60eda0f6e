package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment is the PIX charge backing a subscription. Amount always equals the
// owning subscription's amount, in centavos.
type Payment struct {
	ID               string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubscriptionID   string        `json:"subscriptionId" gorm:"type:uuid;not null;index"`
	UserID           string        `json:"userId" gorm:"type:uuid;not null;index"`
	Amount           int           `json:"amount" gorm:"not null"`
	PaymentMethod    string        `json:"paymentMethod" gorm:"type:varchar(50);default:'pix'"`
	PixCode          string        `json:"pixCode" gorm:"type:text"`
	PixQrCode        string        `json:"pixQrCode" gorm:"type:text"`
	GatewayPaymentID string        `json:"gatewayPaymentId" gorm:"type:varchar(100)"`
	Status           PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaidAt           *time.Time    `json:"paidAt"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
