package app

import (
	"errors"
	"net/http"

	"github.com/courselab/checkout-api/api"
	"github.com/courselab/checkout-api/internal/domain"
)

// CreateCheckoutSessionHandler initiates a Stripe checkout for either a course
// purchase or a pricing-plan subscription. The pending purchase session is
// written before Stripe is contacted so that its id can travel with the Stripe
// session and be correlated by the payment webhook later. A purchase session
// left in "ongoing" with no matching Stripe callback marks a flow that never
// completed; nothing is rolled back on failure.
func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CheckoutSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	purchase := domain.NewPurchaseSession(userId, deref(input.CourseId), deref(input.PricingPlanId))

	err = app.purchaseSessionRepo.Create(r.Context(), &purchase)
	if err != nil {
		logger.Error("failed to create purchase session record", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}
	// A missing profile row is not fatal: checkout proceeds and Stripe creates
	// a fresh customer instead of reusing one.

	var course *domain.Course
	if purchase.CourseID != nil {
		course, err = app.courseRepo.GetById(r.Context(), *purchase.CourseID)
		if err != nil {
			logger.Error("failed to load course for checkout", "error", err, "courseId", *purchase.CourseID)
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(&purchase, user, course, input.CallbackUrl)
	if err != nil {
		logger.Error("failed to create Stripe checkout session",
			"error", err,
			"purchaseSessionId", purchase.ID,
		)
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CheckoutSessionResponse{
		StripeCheckoutSessionId: checkoutSession.ID,
		StripePublicKey:         app.config.Stripe.PublicKey,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
