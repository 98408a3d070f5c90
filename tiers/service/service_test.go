package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigwell/scheduled-tasks/logger"
	"github.com/gigwell/scheduled-tasks/tiers/dal/mocks"
	"github.com/gigwell/scheduled-tasks/tiers/domain"
)

func TestCompanyCanAccessFeature(t *testing.T) {
	ctx := context.Background()

	tiersDAL := &mocks.Tiers{}
	tiersDAL.On("GetCompanyTier", ctx, "company-1").Return(&domain.Tier{
		ID:           "pro",
		Name:         "Pro",
		Entitlements: []string{"invoicing", "receipt-import"},
	}, nil)
	tiersDAL.On("GetCompanyTier", ctx, "company-2").Return(&domain.Tier{
		ID:   "free",
		Name: "Free",
	}, nil)

	s := NewTiersServiceWithDAL(logger.FromContext, tiersDAL)

	t.Run("granted", func(t *testing.T) {
		ok, err := s.CompanyCanAccessFeature(ctx, "company-1", domain.FeatureReceiptImport)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("denied", func(t *testing.T) {
		ok, err := s.CompanyCanAccessFeature(ctx, "company-2", domain.FeatureReceiptImport)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
