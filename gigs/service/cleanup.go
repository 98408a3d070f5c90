package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/gigwell/scheduled-tasks/times"
)

const abandonedDraftMaxAge = times.DayDuration

// CleanupAbandonedDrafts deletes empty-named draft rows left behind by
// crashed or closed booking dialogs. Errors are aggregated so one stuck row
// does not stop the sweep.
func (s *GigService) CleanupAbandonedDrafts(ctx context.Context) (int, error) {
	logger := s.loggerProvider(ctx)

	cutoff := time.Now().UTC().Add(-abandonedDraftMaxAge)

	drafts, err := s.gigsDAL.ListAbandonedDrafts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	var result *multierror.Error

	deleted := 0

	for _, draft := range drafts {
		if err := s.attachments.DeleteGigAttachments(ctx, draft.CompanyID, draft.ID); err != nil {
			logger.Warningf("draft sweep: attachment cleanup failed for gig %s: %s", draft.ID, err)
		}

		if err := s.gigsDAL.DeleteGig(ctx, draft.ID); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		deleted++
	}

	logger.Infof("draft sweep: deleted %d of %d abandoned drafts", deleted, len(drafts))

	return deleted, result.ErrorOrNil()
}
