package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/common"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/imports/domain"
	"github.com/gigwell/scheduled-tasks/imports/service"
	"github.com/gigwell/scheduled-tasks/logger"
)

type ImportsHandler struct {
	loggerProvider logger.Provider
	service        *service.ImportService
}

func NewImportsHandler(log logger.Provider, conn *connection.Connection) *ImportsHandler {
	extractor := service.NewExtractionClient(common.GetEnv("EXTRACTION_API_URL", "http://localhost:8090"))

	return &ImportsHandler{
		log,
		service.NewImportService(log, conn, extractor),
	}
}

func (h *ImportsHandler) OpenSession(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	session, err := h.service.OpenSession(ctx, companyID)
	if err != nil {
		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, session, http.StatusCreated)
}

// Analyze accepts a multipart upload and runs the files through extraction
// and duplicate checking, returning the updated session.
func (h *ImportsHandler) Analyze(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	sessionID := ctx.Param("sessionID")

	form, err := ctx.MultipartForm()
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	var uploads []domain.FileUpload

	for _, fileHeader := range form.File["files"] {
		f, err := fileHeader.Open()
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		content, err := io.ReadAll(f)

		f.Close()

		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		uploads = append(uploads, domain.FileUpload{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     content,
		})
	}

	session, err := h.service.AnalyzeFiles(ctx, companyID, sessionID, uploads)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, session, http.StatusOK)
}

func (h *ImportsHandler) Commit(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	sessionID := ctx.Param("sessionID")

	summary, err := h.service.Commit(ctx, companyID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.Respond(ctx, err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}

func (h *ImportsHandler) CloseSession(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")
	sessionID := ctx.Param("sessionID")

	h.service.CloseSession(ctx, companyID, sessionID)

	return web.Respond(ctx, nil, http.StatusOK)
}
