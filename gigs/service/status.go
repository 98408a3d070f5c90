package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qmuntal/stateless"

	"github.com/gigwell/scheduled-tasks/gigs/domain"
)

var (
	ErrInvalidStatus       = errors.New("invalid gig status")
	ErrDraftStatusChange   = errors.New("draft gigs can only leave draft through finalize")
	ErrStatusChangeToDraft = errors.New("a gig cannot move back to draft")
)

// nonDraftStatuses in lifecycle order; the machine permits any jump between
// them since the product does not enforce an ordering.
var nonDraftStatuses = []domain.GigStatus{
	domain.StatusTentative,
	domain.StatusPending,
	domain.StatusAccepted,
	domain.StatusDeclined,
	domain.StatusCompleted,
	domain.StatusInvoiced,
	domain.StatusPaid,
}

func triggerFor(status domain.GigStatus) string {
	return "to_" + string(status)
}

// TransitionStatus moves a gig to the target status and stamps the matching
// lifecycle timestamps. Any transition between non-draft statuses is allowed,
// including direct jumps like tentative to paid.
func (s *GigService) TransitionStatus(ctx context.Context, companyID, gigID string, target domain.GigStatus) (*domain.Gig, error) {
	if !domain.ValidStatus(string(target)) {
		return nil, ErrInvalidStatus
	}

	if target == domain.StatusDraft {
		return nil, ErrStatusChangeToDraft
	}

	gig, err := s.gigsDAL.GetGig(ctx, companyID, gigID)
	if err != nil {
		return nil, err
	}

	if gig.Status == domain.StatusDraft {
		return nil, ErrDraftStatusChange
	}

	now := time.Now().UTC()
	stamps := make(map[string]time.Time)

	machine := stateless.NewStateMachine(string(gig.Status))

	for _, state := range nonDraftStatuses {
		cfg := machine.Configure(string(state))

		for _, dest := range nonDraftStatuses {
			if dest == state {
				cfg.PermitReentry(triggerFor(dest))
				continue
			}

			cfg.Permit(triggerFor(dest), string(dest))
		}
	}

	machine.Configure(string(domain.StatusCompleted)).OnEntry(func(_ context.Context, _ ...interface{}) error {
		stamps["completedAt"] = now
		return nil
	})

	machine.Configure(string(domain.StatusInvoiced)).OnEntry(func(_ context.Context, _ ...interface{}) error {
		stamps["invoicedAt"] = now
		return nil
	})

	machine.Configure(string(domain.StatusPaid)).OnEntry(func(_ context.Context, _ ...interface{}) error {
		stamps["paidAt"] = now
		return nil
	})

	if err := machine.Fire(triggerFor(target)); err != nil {
		return nil, fmt.Errorf("status transition (%s -> %s) failed for gig '%s': %w", gig.Status, target, gigID, err)
	}

	if err := s.gigsDAL.UpdateStatus(ctx, gigID, target, stamps); err != nil {
		return nil, err
	}

	gig.Status = target

	for field, at := range stamps {
		stamped := at

		switch field {
		case "completedAt":
			gig.CompletedAt = &stamped
		case "invoicedAt":
			gig.InvoicedAt = &stamped
		case "paidAt":
			gig.PaidAt = &stamped
		}
	}

	return gig, nil
}
