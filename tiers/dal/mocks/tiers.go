package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/tiers/domain"
)

type Tiers struct {
	mock.Mock
}

func (m *Tiers) GetTier(ctx context.Context, tierID string) (*domain.Tier, error) {
	args := m.Called(ctx, tierID)

	var tier *domain.Tier
	if args.Get(0) != nil {
		tier = args.Get(0).(*domain.Tier)
	}

	return tier, args.Error(1)
}

func (m *Tiers) GetCompanyTier(ctx context.Context, companyID string) (*domain.Tier, error) {
	args := m.Called(ctx, companyID)

	var tier *domain.Tier
	if args.Get(0) != nil {
		tier = args.Get(0).(*domain.Tier)
	}

	return tier, args.Error(1)
}
