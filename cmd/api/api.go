package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	clientsHandlers "github.com/gigwell/scheduled-tasks/clients/handlers"
	companyHandlers "github.com/gigwell/scheduled-tasks/company/handlers"
	expensesHandlers "github.com/gigwell/scheduled-tasks/expenses/handlers"
	fixerHandlers "github.com/gigwell/scheduled-tasks/fixer/handlers"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/framework/mid"
	"github.com/gigwell/scheduled-tasks/framework/web"
	gigsHandlers "github.com/gigwell/scheduled-tasks/gigs/handlers"
	importsHandlers "github.com/gigwell/scheduled-tasks/imports/handlers"
	invoicingHandlers "github.com/gigwell/scheduled-tasks/invoicing/handlers"
	"github.com/gigwell/scheduled-tasks/logger"
	tiersDomain "github.com/gigwell/scheduled-tasks/tiers/domain"
	tiersService "github.com/gigwell/scheduled-tasks/tiers/service"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	tiers := tiersService.NewTiersService(loggerProvider, a.conn)

	clients := clientsHandlers.NewClientsHandler(loggerProvider, a.conn)
	company := companyHandlers.NewCompanyHandler(loggerProvider, a.conn)
	gigs := gigsHandlers.NewGigsHandler(loggerProvider, a.conn)
	invoicing := invoicingHandlers.NewInvoicingHandler(loggerProvider, a.conn)
	expenses := expensesHandlers.NewExpensesHandler(loggerProvider, a.conn)
	imports := importsHandlers.NewImportsHandler(loggerProvider, a.conn)
	fixer := fixerHandlers.NewFixerHandler(loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
	})

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		invoicesGroup := apiGroup.NewSubgroup("/invoices",
			mid.ValidatePathParamNotEmpty("companyID"),
			mid.RequireEntitlement(tiers, tiersDomain.FeatureInvoicing),
		)
		{
			invoicesGroup.Post("/:companyID", invoicing.CreateInvoice)
			invoicesGroup.Post("/:companyID/preview", invoicing.PreviewInvoice)
		}

		gigsGroup := apiGroup.NewSubgroup("/gigs",
			mid.ValidatePathParamNotEmpty("companyID"),
		)
		{
			gigsGroup.Post("/:companyID/draft", gigs.CreateDraft)
			gigsGroup.Put("/:companyID/:gigID", gigs.UpdateGig, mid.ValidatePathParamNotEmpty("gigID"))
			gigsGroup.Delete("/:companyID/:gigID/draft", gigs.DiscardDraft, mid.ValidatePathParamNotEmpty("gigID"))
			gigsGroup.Patch("/:companyID/:gigID/status", gigs.UpdateStatus, mid.ValidatePathParamNotEmpty("gigID"))
		}

		importsGroup := apiGroup.NewSubgroup("/imports",
			mid.ValidatePathParamNotEmpty("companyID"),
			mid.RequireEntitlement(tiers, tiersDomain.FeatureReceiptImport),
		)
		{
			importsGroup.Post("/:companyID/sessions", imports.OpenSession)
			importsGroup.Post("/:companyID/sessions/:sessionID/analyze", imports.Analyze, mid.ValidatePathParamNotEmpty("sessionID"))
			importsGroup.Post("/:companyID/sessions/:sessionID/commit", imports.Commit, mid.ValidatePathParamNotEmpty("sessionID"))
			importsGroup.Delete("/:companyID/sessions/:sessionID", imports.CloseSession, mid.ValidatePathParamNotEmpty("sessionID"))
		}

		expensesGroup := apiGroup.NewSubgroup("/expenses",
			mid.ValidatePathParamNotEmpty("companyID"),
		)
		{
			expensesGroup.Put("/:companyID/duplicate-check", expenses.DuplicateCheck)
			expensesGroup.Get("/:companyID/supplier-mapping", expenses.SupplierMapping)
		}

		clientsGroup := apiGroup.NewSubgroup("/clients",
			mid.ValidatePathParamNotEmpty("companyID"),
		)
		{
			clientsGroup.Get("/:companyID", clients.ListClients)
			clientsGroup.Get("/:companyID/match", clients.MatchClient)
		}

		companiesGroup := apiGroup.NewSubgroup("/companies",
			mid.ValidatePathParamNotEmpty("companyID"),
		)
		{
			companiesGroup.Get("/:companyID/settings", company.GetSettings)
			companiesGroup.Put("/:companyID/settings", company.UpdateSettings)
			companiesGroup.Get("/:companyID/gig-types", company.ListGigTypes)
		}
	}

	tasksGroup := web.NewGroup(app, "/tasks")
	{
		gigsTasksGroup := tasksGroup.NewSubgroup("/gigs")
		{
			gigsTasksGroup.Post("/cleanup-drafts", gigs.CleanupDrafts)
		}

		fixerTasksGroup := tasksGroup.NewSubgroup("/fixer")
		{
			fixerTasksGroup.Post("/sync-rates", fixer.SyncRates)
		}
	}

	return app
}
