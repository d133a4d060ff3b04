package domain

import (
	"context"
	"time"
)

type PurchaseSessionStatus string

const (
	PurchaseSessionStatusOngoing   PurchaseSessionStatus = "ongoing"
	PurchaseSessionStatusCompleted PurchaseSessionStatus = "completed"
	PurchaseSessionStatusFailed    PurchaseSessionStatus = "failed"
)

// PurchaseSession correlates a user's purchase intent with the Stripe checkout
// session that is created for it. It is written once, before Stripe is
// contacted; status transitions away from "ongoing" happen downstream, when
// Stripe reports the payment outcome.
type PurchaseSession struct {
	ID            string
	UserID        int
	CourseID      *string
	PricingPlanID *string
	Status        PurchaseSessionStatus
	CreatedAt     time.Time
}

// NewPurchaseSession builds the pending session for exactly one purchase
// target. The course id wins when both are supplied.
func NewPurchaseSession(userID int, courseID, pricingPlanID string) PurchaseSession {
	session := PurchaseSession{
		UserID: userID,
		Status: PurchaseSessionStatusOngoing,
	}

	if courseID != "" {
		session.CourseID = &courseID
	} else if pricingPlanID != "" {
		session.PricingPlanID = &pricingPlanID
	}

	return session
}

type PurchaseSessionRepository interface {
	Create(ctx context.Context, session *PurchaseSession) error
}
