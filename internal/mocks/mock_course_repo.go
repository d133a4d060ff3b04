package mocks

import (
	"context"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCourseRepo struct {
	mock.Mock
	domain.CourseRepository
}

func (m *MockCourseRepo) GetById(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Course), args.Error(1)
}
