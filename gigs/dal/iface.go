//go:generate mockery --name Gigs --output ./mocks
package dal

import (
	"context"
	"errors"
	"time"

	"github.com/gigwell/scheduled-tasks/gigs/domain"
)

// ErrNotFound is returned when a gig does not exist or belongs to a
// different company than the one asked for.
var ErrNotFound = errors.New("gig not found")

type Gigs interface {
	CreateDraft(ctx context.Context, companyID string) (string, error)
	GetGig(ctx context.Context, companyID, gigID string) (*domain.Gig, error)
	GetGigs(ctx context.Context, companyID string, gigIDs []string) ([]*domain.Gig, error)
	UpdateGig(ctx context.Context, gigID string, gig *domain.Gig) error
	UpdateStatus(ctx context.Context, gigID string, status domain.GigStatus, stamps map[string]time.Time) error
	DeleteGig(ctx context.Context, gigID string) error
	ListAbandonedDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Gig, error)
}
