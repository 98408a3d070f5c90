package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/expenses/service"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/logger"
)

type ExpensesHandler struct {
	loggerProvider logger.Provider
	service        *service.ExpenseService
}

func NewExpensesHandler(log logger.Provider, conn *connection.Connection) *ExpensesHandler {
	return &ExpensesHandler{
		log,
		service.NewExpenseService(log, conn),
	}
}

type duplicateCheckRequest struct {
	Expenses []domain.ExpenseCandidate `json:"expenses"`
}

type duplicateCheckResponse struct {
	Results []domain.DuplicateResult `json:"results"`
}

// DuplicateCheck answers whether each candidate expense duplicates a stored
// one. Results are index-aligned with the request array.
func (h *ExpensesHandler) DuplicateCheck(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var req duplicateCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	results, err := h.service.CheckDuplicates(ctx, companyID, req.Expenses)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, duplicateCheckResponse{Results: results}, http.StatusOK)
}

type supplierMappingResponse struct {
	Mapping []*domain.SupplierHistoryEntry `json:"mapping"`
}

// SupplierMapping serves the ordered supplier->category history for an
// import session.
func (h *ExpensesHandler) SupplierMapping(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	history, err := h.service.SupplierHistory(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, supplierMappingResponse{Mapping: history.Entries}, http.StatusOK)
}
