package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	companyDal "github.com/gigwell/scheduled-tasks/company/dal"
	"github.com/gigwell/scheduled-tasks/company/domain"
	"github.com/gigwell/scheduled-tasks/fixer"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/logger"
)

var (
	ErrUnsupportedBaseCurrency = errors.New("unsupported base currency")
)

type CompanyService struct {
	loggerProvider logger.Provider
	companiesDAL   companyDal.Companies
	validate       *validator.Validate
}

func NewCompanyService(log logger.Provider, conn *connection.Connection) *CompanyService {
	return &CompanyService{
		loggerProvider: log,
		companiesDAL:   companyDal.NewCompaniesFirestoreWithClient(conn.Firestore),
		validate:       validator.New(),
	}
}

func NewCompanyServiceWithDAL(log logger.Provider, companiesDAL companyDal.Companies) *CompanyService {
	return &CompanyService{
		loggerProvider: log,
		companiesDAL:   companiesDAL,
		validate:       validator.New(),
	}
}

func (s *CompanyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companiesDAL.GetCompany(ctx, companyID)
}

func (s *CompanyService) UpdateSettings(ctx context.Context, companyID string, company *domain.Company) error {
	if err := s.validate.Struct(company); err != nil {
		return err
	}

	if !fixer.SupportedCurrency(company.BaseCurrency) {
		return ErrUnsupportedBaseCurrency
	}

	return s.companiesDAL.UpdateCompany(ctx, companyID, company)
}

func (s *CompanyService) ListGigTypes(ctx context.Context, companyID string) ([]*domain.GigType, error) {
	return s.companiesDAL.ListGigTypes(ctx, companyID)
}

// GigTypeVatRates returns the per gig type VAT rate lookup used by invoice
// totals computation.
func (s *CompanyService) GigTypeVatRates(ctx context.Context, companyID string) (map[string]float64, error) {
	gigTypes, err := s.companiesDAL.ListGigTypes(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(gigTypes))
	for _, gigType := range gigTypes {
		rates[gigType.ID] = gigType.VatRate
	}

	return rates, nil
}
