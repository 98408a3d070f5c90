package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gigwell/scheduled-tasks/gigs/domain"
)

type Gigs struct {
	mock.Mock
}

func (m *Gigs) CreateDraft(ctx context.Context, companyID string) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}

func (m *Gigs) GetGig(ctx context.Context, companyID, gigID string) (*domain.Gig, error) {
	args := m.Called(ctx, companyID, gigID)

	var gig *domain.Gig
	if args.Get(0) != nil {
		gig = args.Get(0).(*domain.Gig)
	}

	return gig, args.Error(1)
}

func (m *Gigs) GetGigs(ctx context.Context, companyID string, gigIDs []string) ([]*domain.Gig, error) {
	args := m.Called(ctx, companyID, gigIDs)

	var gigs []*domain.Gig
	if args.Get(0) != nil {
		gigs = args.Get(0).([]*domain.Gig)
	}

	return gigs, args.Error(1)
}

func (m *Gigs) UpdateGig(ctx context.Context, gigID string, gig *domain.Gig) error {
	args := m.Called(ctx, gigID, gig)
	return args.Error(0)
}

func (m *Gigs) UpdateStatus(ctx context.Context, gigID string, status domain.GigStatus, stamps map[string]time.Time) error {
	args := m.Called(ctx, gigID, status, stamps)
	return args.Error(0)
}

func (m *Gigs) DeleteGig(ctx context.Context, gigID string) error {
	args := m.Called(ctx, gigID)
	return args.Error(0)
}

func (m *Gigs) ListAbandonedDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Gig, error) {
	args := m.Called(ctx, olderThan)

	var drafts []*domain.Gig
	if args.Get(0) != nil {
		drafts = args.Get(0).([]*domain.Gig)
	}

	return drafts, args.Error(1)
}
