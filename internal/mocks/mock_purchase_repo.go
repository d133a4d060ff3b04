package mocks

import (
	"context"

	"github.com/courselab/checkout-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPurchaseSessionRepo struct {
	mock.Mock
	domain.PurchaseSessionRepository
}

func (m *MockPurchaseSessionRepo) Create(ctx context.Context, session *domain.PurchaseSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
