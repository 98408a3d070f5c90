//go:generate mockery --name Companies --output ./mocks
package dal

import (
	"context"

	"github.com/gigwell/scheduled-tasks/company/domain"
)

type Companies interface {
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, company *domain.Company) error
	ListGigTypes(ctx context.Context, companyID string) ([]*domain.GigType, error)
	GetGigType(ctx context.Context, companyID, gigTypeID string) (*domain.GigType, error)
}
