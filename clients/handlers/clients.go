package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/clients/service"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/logger"
)

type ClientsHandler struct {
	loggerProvider logger.Provider
	service        *service.ClientsService
}

func NewClientsHandler(log logger.Provider, conn *connection.Connection) *ClientsHandler {
	return &ClientsHandler{
		log,
		service.NewClientsService(log, conn),
	}
}

func (h *ClientsHandler) ListClients(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	clients, err := h.service.ListClients(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, clients, http.StatusOK)
}

// MatchClient scores a counterparty name from a scanned document against the
// company's client list.
func (h *ClientsHandler) MatchClient(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	name := ctx.Query("name")
	if name == "" {
		return web.NewRequestError(errors.New("error: name cannot be empty"), http.StatusBadRequest)
	}

	match, err := h.service.MatchByName(ctx, companyID, name)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, match, http.StatusOK)
}
