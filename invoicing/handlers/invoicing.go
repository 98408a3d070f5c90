package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	clientsDal "github.com/gigwell/scheduled-tasks/clients/dal"
	"github.com/gigwell/scheduled-tasks/fixer/converter"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	gigsDal "github.com/gigwell/scheduled-tasks/gigs/dal"
	"github.com/gigwell/scheduled-tasks/invoicing/service"
	"github.com/gigwell/scheduled-tasks/logger"
)

type InvoicingHandler struct {
	loggerProvider logger.Provider
	service        *service.InvoiceService
}

func NewInvoicingHandler(log logger.Provider, conn *connection.Connection) *InvoicingHandler {
	return &InvoicingHandler{
		log,
		service.NewInvoiceService(log, conn, converter.NewCurrencyConverterService()),
	}
}

func (h *InvoicingHandler) CreateInvoice(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var req service.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	invoice, err := h.service.CreateInvoice(ctx, companyID, &req)
	if err != nil {
		if errors.Is(err, clientsDal.ErrNotFound) || errors.Is(err, gigsDal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		if errors.Is(err, service.ErrNoClientSelected) || errors.Is(err, service.ErrNoLines) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoice, http.StatusCreated)
}

func (h *InvoicingHandler) PreviewInvoice(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var req service.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	invoice, err := h.service.Preview(ctx, companyID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoLines) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, invoice, http.StatusOK)
}
