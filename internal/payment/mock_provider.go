package payment

import (
	"github.com/courselab/checkout-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	purchase *domain.PurchaseSession,
	user *domain.User,
	course *domain.Course,
	callbackUrl string) (*stripe.CheckoutSession, error) {

	params, err := SessionParams(purchase, user, course, callbackUrl)
	if err != nil {
		return nil, err
	}

	return &stripe.CheckoutSession{
		ID:                "cs_test_mock",
		ClientReferenceID: *params.ClientReferenceID,
	}, nil
}
