package service

import (
	"context"

	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/logger"
	"github.com/gigwell/scheduled-tasks/tiers/dal"
	"github.com/gigwell/scheduled-tasks/tiers/domain"
)

type TiersService struct {
	loggerProvider logger.Provider
	tiersDAL       dal.Tiers
}

func NewTiersService(log logger.Provider, conn *connection.Connection) *TiersService {
	return &TiersService{
		loggerProvider: log,
		tiersDAL:       dal.NewTiersFirestoreWithClient(conn.Firestore),
	}
}

func NewTiersServiceWithDAL(log logger.Provider, tiersDAL dal.Tiers) *TiersService {
	return &TiersService{
		loggerProvider: log,
		tiersDAL:       tiersDAL,
	}
}

// CompanyCanAccessFeature reports whether the company's subscription tier
// grants the feature.
func (s *TiersService) CompanyCanAccessFeature(ctx context.Context, companyID string, key domain.FeatureKey) (bool, error) {
	tier, err := s.tiersDAL.GetCompanyTier(ctx, companyID)
	if err != nil {
		return false, err
	}

	return tier.HasEntitlement(key), nil
}
