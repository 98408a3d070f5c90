package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/company/dal/mocks"
	"github.com/gigwell/scheduled-tasks/company/domain"
	"github.com/gigwell/scheduled-tasks/logger"
)

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("valid settings are persisted", func(t *testing.T) {
		companiesDAL := &mocks.Companies{}
		companiesDAL.On("UpdateCompany", ctx, "company-1", mock.AnythingOfType("*domain.Company")).Return(nil)

		s := NewCompanyServiceWithDAL(logger.FromContext, companiesDAL)

		err := s.UpdateSettings(ctx, "company-1", &domain.Company{
			Name:         "Kapellet AB",
			Country:      "SE",
			BaseCurrency: "SEK",
		})

		assert.NoError(t, err)
		companiesDAL.AssertExpectations(t)
	})

	t.Run("rejects invalid country code", func(t *testing.T) {
		s := NewCompanyServiceWithDAL(logger.FromContext, &mocks.Companies{})

		err := s.UpdateSettings(ctx, "company-1", &domain.Company{
			Name:         "Kapellet AB",
			Country:      "Sweden",
			BaseCurrency: "SEK",
		})

		assert.Error(t, err)
	})

	t.Run("rejects unsupported base currency", func(t *testing.T) {
		s := NewCompanyServiceWithDAL(logger.FromContext, &mocks.Companies{})

		err := s.UpdateSettings(ctx, "company-1", &domain.Company{
			Name:         "Kapellet AB",
			Country:      "SE",
			BaseCurrency: "XXX",
		})

		assert.ErrorIs(t, err, ErrUnsupportedBaseCurrency)
	})
}

func TestGigTypeVatRates(t *testing.T) {
	ctx := context.Background()

	companiesDAL := &mocks.Companies{}
	companiesDAL.On("ListGigTypes", ctx, "company-1").Return([]*domain.GigType{
		{ID: "gt-concert", Names: map[string]string{"en": "Concert"}, VatRate: 25},
		{ID: "gt-lesson", Names: map[string]string{"en": "Lesson"}, VatRate: 6},
	}, nil)

	s := NewCompanyServiceWithDAL(logger.FromContext, companiesDAL)

	rates, err := s.GigTypeVatRates(ctx, "company-1")

	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"gt-concert": 25, "gt-lesson": 6}, rates)
}
