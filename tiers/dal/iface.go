//go:generate mockery --name Tiers --output ./mocks
package dal

import (
	"context"

	"github.com/gigwell/scheduled-tasks/tiers/domain"
)

type Tiers interface {
	GetTier(ctx context.Context, tierID string) (*domain.Tier, error)
	GetCompanyTier(ctx context.Context, companyID string) (*domain.Tier, error)
}
