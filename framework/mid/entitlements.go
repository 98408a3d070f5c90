package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigwell/scheduled-tasks/common"
	"github.com/gigwell/scheduled-tasks/framework/web"
	"github.com/gigwell/scheduled-tasks/logger"
	tiersDomain "github.com/gigwell/scheduled-tasks/tiers/domain"
)

// EntitlementChecker decides whether a company's tier grants a feature.
type EntitlementChecker interface {
	CompanyCanAccessFeature(ctx context.Context, companyID string, key tiersDomain.FeatureKey) (bool, error)
}

var ErrFeatureNotInTier = errors.New("feature is not available on the current tier")

// RequireEntitlement gates a route on the company's subscription tier. The
// companyID path param selects the tenant.
func RequireEntitlement(checker EntitlementChecker, key tiersDomain.FeatureKey) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			companyID := ctx.Param("companyID")

			ok, err := checker.CompanyCanAccessFeature(ctx, companyID, key)
			if err != nil {
				return err
			}

			if !ok {
				return web.NewRequestError(ErrFeatureNotInTier, http.StatusForbidden)
			}

			ctx.Set(common.CtxKeys.CompanyID, companyID)
			logger.FromContext(ctx).SetLabels(map[string]string{
				common.CtxKeys.CompanyID: companyID,
			})

			return handler(ctx)
		}

		return h
	}

	return f
}
