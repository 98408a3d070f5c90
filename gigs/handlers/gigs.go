package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	gigsDal "github.com/gigwell/scheduled-tasks/gigs/dal"
	"github.com/gigwell/scheduled-tasks/gigs/domain"
	"github.com/gigwell/scheduled-tasks/gigs/service"
	"github.com/gigwell/scheduled-tasks/logger"
)

type GigsHandler struct {
	loggerProvider logger.Provider
	service        *service.GigService
}

func NewGigsHandler(log logger.Provider, conn *connection.Connection) *GigsHandler {
	return &GigsHandler{
		log,
		service.NewGigService(log, conn),
	}
}

// CreateDraft opens a placeholder gig so attachments can be uploaded against
// a real id before the booking form is submitted.
func (h *GigsHandler) CreateDraft(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	gigID, err := h.service.CreateDraft(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]string{"id": gigID}, http.StatusCreated)
}

func (h *GigsHandler) UpdateGig(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	gigID := ctx.Param("gigID")

	var gig domain.Gig
	if err := ctx.ShouldBindJSON(&gig); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	updated, err := h.service.FinalizeDraft(ctx, companyID, gigID, &gig)
	if err != nil {
		if errors.Is(err, gigsDal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		if errors.Is(err, service.ErrMissingName) || errors.Is(err, service.ErrNoDates) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, updated, http.StatusOK)
}

// DiscardDraft deletes an abandoned draft. The handler responds before
// attachment cleanup necessarily finished; cleanup failures are logged and
// swept up later.
func (h *GigsHandler) DiscardDraft(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	gigID := ctx.Param("gigID")

	if err := h.service.DiscardDraft(ctx, companyID, gigID); err != nil {
		if errors.Is(err, gigsDal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		if errors.Is(err, service.ErrNotADraft) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type statusUpdateRequest struct {
	Status domain.GigStatus `json:"status"`
}

func (h *GigsHandler) UpdateStatus(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	gigID := ctx.Param("gigID")

	var req statusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	gig, err := h.service.TransitionStatus(ctx, companyID, gigID, req.Status)
	if err != nil {
		if errors.Is(err, gigsDal.ErrNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		if errors.Is(err, service.ErrInvalidStatus) ||
			errors.Is(err, service.ErrDraftStatusChange) ||
			errors.Is(err, service.ErrStatusChangeToDraft) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gig, http.StatusOK)
}

// CleanupDrafts is the scheduled sweep removing empty-named draft rows left
// behind by crashed dialogs.
func (h *GigsHandler) CleanupDrafts(ctx *gin.Context) error {
	deleted, err := h.service.CleanupAbandonedDrafts(ctx)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, map[string]int{"deleted": deleted}, http.StatusOK)
}
