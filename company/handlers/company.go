package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gigwell/scheduled-tasks/company/domain"
	"github.com/gigwell/scheduled-tasks/company/service"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/logger"
)

type CompanyHandler struct {
	loggerProvider logger.Provider
	service        *service.CompanyService
}

func NewCompanyHandler(log logger.Provider, conn *connection.Connection) *CompanyHandler {
	return &CompanyHandler{
		log,
		service.NewCompanyService(log, conn),
	}
}

func (h *CompanyHandler) GetSettings(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	company, err := h.service.GetCompany(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, company, http.StatusOK)
}

func (h *CompanyHandler) UpdateSettings(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var company domain.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.UpdateSettings(ctx, companyID, &company); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) || errors.Is(err, service.ErrUnsupportedBaseCurrency) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *CompanyHandler) ListGigTypes(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	gigTypes, err := h.service.ListGigTypes(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gigTypes, http.StatusOK)
}
