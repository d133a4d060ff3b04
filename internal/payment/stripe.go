package payment

import (
	"fmt"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct{}

func NewStripePaymentProvider() *StripePaymentProvider {
	return &StripePaymentProvider{}
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	purchase *domain.PurchaseSession,
	user *domain.User,
	course *domain.Course,
	callbackUrl string) (*stripe.CheckoutSession, error) {

	params, err := SessionParams(purchase, user, course, callbackUrl)
	if err != nil {
		return nil, err
	}

	return session.New(params)
}

// SessionParams maps a pending purchase session onto the Stripe checkout
// request for it. A session recorded against a course becomes a one-time
// payment with a single line item; a session recorded against a pricing plan
// becomes a subscription referencing that plan. It is a pure function:
// identical inputs always produce identical params.
func SessionParams(
	purchase *domain.PurchaseSession,
	user *domain.User,
	course *domain.Course,
	callbackUrl string) (*stripe.CheckoutSessionParams, error) {

	switch {
	case purchase.CourseID != nil:
		return courseSessionParams(purchase, user, course, callbackUrl), nil
	case purchase.PricingPlanID != nil:
		return subscriptionSessionParams(purchase, user, callbackUrl), nil
	default:
		return nil, domain.ErrInvalidPurchaseTarget
	}
}

func courseSessionParams(
	purchase *domain.PurchaseSession,
	user *domain.User,
	course *domain.Course,
	callbackUrl string) *stripe.CheckoutSessionParams {

	params := baseSessionParams(purchase, user, callbackUrl)
	params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))

	// Stripe expects the amount in minor units; course prices are stored in
	// whole currency units.
	priceCents := course.Price.Mul(decimal.NewFromInt(100)).IntPart()

	params.LineItems = []*stripe.CheckoutSessionLineItemParams{
		{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(priceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(course.Titles.Description),
					Description: stripe.String(course.Titles.LongDescription),
				},
			},
			Quantity: stripe.Int64(1),
		},
	}

	return params
}

func subscriptionSessionParams(
	purchase *domain.PurchaseSession,
	user *domain.User,
	callbackUrl string) *stripe.CheckoutSessionParams {

	params := baseSessionParams(purchase, user, callbackUrl)
	params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))

	params.LineItems = []*stripe.CheckoutSessionLineItemParams{
		{
			Price:    stripe.String(*purchase.PricingPlanID),
			Quantity: stripe.Int64(1),
		},
	}

	return params
}

func baseSessionParams(
	purchase *domain.PurchaseSession,
	user *domain.User,
	callbackUrl string) *stripe.CheckoutSessionParams {

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL: stripe.String(fmt.Sprintf(
			"%s/?purchaseResult=success&ongoingPurchaseSessionId=%s", callbackUrl, purchase.ID)),
		CancelURL:         stripe.String(fmt.Sprintf("%s/?purchaseResult=failed", callbackUrl)),
		ClientReferenceID: stripe.String(purchase.ID),
	}

	// Reuse the existing Stripe customer when the user already has one, so
	// Stripe attaches the session to it instead of creating a new customer.
	if user != nil && user.StripeCustomerID != nil {
		params.Customer = user.StripeCustomerID
	}

	return params
}
