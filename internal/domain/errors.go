package domain

import "errors"

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrInvalidPurchaseTarget = errors.New("purchase session has neither a course nor a pricing plan")
)
