package mocks

import (
	"github.com/courselab/checkout-api/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	purchase *domain.PurchaseSession,
	user *domain.User,
	course *domain.Course,
	callbackUrl string) (*stripe.CheckoutSession, error) {

	args := m.Called(purchase, user, course, callbackUrl)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
