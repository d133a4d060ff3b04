package integration_test

const (
	// User related constants
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Course related constants
	TestCourseId              = "angular-core-deep-dive"
	TestCourseDescription     = "Angular Core Deep Dive"
	TestCourseLongDescription = "A detailed walk-through of the most important parts of Angular"
	TestCoursePrice           = "50.00"

	// Checkout related constants
	TestPricingPlanId     = "plan-premium-monthly"
	TestCallbackUrl       = "https://courses.example.com"
	TestStripePublicKey   = "pk_test_123"
	TestCheckoutSessionId = "cs_test_mock"
)
