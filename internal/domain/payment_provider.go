package domain

import "github.com/stripe/stripe-go/v82"

type PaymentProvider interface {
	CreateCheckoutSession(purchase *PurchaseSession, user *User, course *Course, callbackUrl string) (*stripe.CheckoutSession, error)
}
