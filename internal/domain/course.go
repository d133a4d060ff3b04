package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CourseTitles holds the display strings shown on a checkout line item.
type CourseTitles struct {
	Description     string
	LongDescription string
}

type Course struct {
	ID        string
	Url       string
	Titles    CourseTitles
	Price     decimal.Decimal
	CreatedAt time.Time
}

type CourseRepository interface {
	GetById(ctx context.Context, id string) (*Course, error)
}
