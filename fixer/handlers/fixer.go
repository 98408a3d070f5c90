package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/fixer"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/logger"
)

type FixerHandler struct {
	loggerProvider logger.Provider
	service        *fixer.FixerService
}

func NewFixerHandler(log logger.Provider, conn *connection.Connection) *FixerHandler {
	service, err := fixer.NewFixerService(log, conn)
	if err != nil {
		panic(err)
	}

	return &FixerHandler{
		log,
		service,
	}
}

// SyncRates is the scheduled task refreshing the historical exchange rate
// tables used by invoice currency conversion.
func (h *FixerHandler) SyncRates(ctx *gin.Context) error {
	if err := h.service.SyncCurrencyExchangeRateHistory(ctx); err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
