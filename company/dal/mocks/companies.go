package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/company/domain"
)

type Companies struct {
	mock.Mock
}

func (m *Companies) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)

	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}

	return company, args.Error(1)
}

func (m *Companies) UpdateCompany(ctx context.Context, companyID string, company *domain.Company) error {
	args := m.Called(ctx, companyID, company)
	return args.Error(0)
}

func (m *Companies) ListGigTypes(ctx context.Context, companyID string) ([]*domain.GigType, error) {
	args := m.Called(ctx, companyID)

	var gigTypes []*domain.GigType
	if args.Get(0) != nil {
		gigTypes = args.Get(0).([]*domain.GigType)
	}

	return gigTypes, args.Error(1)
}

func (m *Companies) GetGigType(ctx context.Context, companyID, gigTypeID string) (*domain.GigType, error) {
	args := m.Called(ctx, companyID, gigTypeID)

	var gigType *domain.GigType
	if args.Get(0) != nil {
		gigType = args.Get(0).(*domain.GigType)
	}

	return gigType, args.Error(1)
}
