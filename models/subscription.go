package models

import (
	"fmt"
	"time"
)

type PlanType string

const (
	PlanOneMonth    PlanType = "1_month"
	PlanThreeMonths PlanType = "3_months"
	PlanSixMonths   PlanType = "6_months"
)

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Plan is a fixed (duration, price) tuple a user subscribes to.
// Amounts are centavos (R$ 19,90 = 1990).
type Plan struct {
	Type        PlanType
	DisplayName string
	Months      int
	AmountCents int
}

var plans = map[PlanType]Plan{
	PlanOneMonth:    {Type: PlanOneMonth, DisplayName: "1 mês", Months: 1, AmountCents: 1990},
	PlanThreeMonths: {Type: PlanThreeMonths, DisplayName: "3 meses", Months: 3, AmountCents: 2990},
	PlanSixMonths:   {Type: PlanSixMonths, DisplayName: "6 meses", Months: 6, AmountCents: 5990},
}

// PlanFor resolves a plan type against the fixed catalog.
func PlanFor(planType PlanType) (Plan, error) {
	plan, ok := plans[planType]
	if !ok {
		return Plan{}, fmt.Errorf("invalid plan type: %s", planType)
	}
	return plan, nil
}

// PeriodEnd returns the validity end for a subscription starting at start.
// Calendar-month arithmetic with Go's AddDate normalization: Jan 31 + 3
// months rolls over to May 1.
func (p Plan) PeriodEnd(start time.Time) time.Time {
	return start.AddDate(0, p.Months, 0)
}

type Subscription struct {
	ID        string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string             `json:"userId" gorm:"type:uuid;not null;index"`
	PlanType  PlanType           `json:"planType" gorm:"type:varchar(20);not null"`
	Status    SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	StartDate *time.Time         `json:"startDate"`
	EndDate   *time.Time         `json:"endDate"`
	Amount    int                `json:"amount" gorm:"not null"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
