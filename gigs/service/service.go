package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gigwell/scheduled-tasks/common"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	gigsDal "github.com/gigwell/scheduled-tasks/gigs/dal"
	"github.com/gigwell/scheduled-tasks/gigs/domain"
	"github.com/gigwell/scheduled-tasks/logger"
	"github.com/gigwell/scheduled-tasks/times"
)

var (
	ErrNotADraft   = errors.New("gig is not a draft")
	ErrMissingName = errors.New("gig name is required")
	ErrNoDates     = errors.New("at least one gig date is required")
)

type AttachmentStore interface {
	DeleteGigAttachments(ctx context.Context, companyID, gigID string) error
}

type GigService struct {
	loggerProvider logger.Provider
	gigsDAL        gigsDal.Gigs
	attachments    AttachmentStore
}

func NewGigService(log logger.Provider, conn *connection.Connection) *GigService {
	return &GigService{
		loggerProvider: log,
		gigsDAL:        gigsDal.NewGigsFirestoreWithClient(conn.Firestore),
		attachments:    NewAttachmentsStorage(conn, common.GetEnv("ATTACHMENTS_BUCKET", "gigwell-attachments")),
	}
}

func NewGigServiceWithDeps(log logger.Provider, gigsDAL gigsDal.Gigs, attachments AttachmentStore) *GigService {
	return &GigService{
		loggerProvider: log,
		gigsDAL:        gigsDAL,
		attachments:    attachments,
	}
}

// CreateDraft inserts a placeholder row immediately so attachment uploads can
// reference a permanent gig id before the form is submitted. Each call
// creates one new row; abandonment cleanup is handled by DiscardDraft and the
// periodic sweep.
func (s *GigService) CreateDraft(ctx context.Context, companyID string) (string, error) {
	return s.gigsDAL.CreateDraft(ctx, companyID)
}

func (s *GigService) GetGig(ctx context.Context, companyID, gigID string) (*domain.Gig, error) {
	return s.gigsDAL.GetGig(ctx, companyID, gigID)
}

// FinalizeDraft updates the placeholder row in place with the real field
// values; its id stays the gig's permanent id. Also used for plain edits of
// already finalized gigs.
func (s *GigService) FinalizeDraft(ctx context.Context, companyID, gigID string, gig *domain.Gig) (*domain.Gig, error) {
	existing, err := s.gigsDAL.GetGig(ctx, companyID, gigID)
	if err != nil {
		return nil, err
	}

	if gig.Name == "" {
		return nil, ErrMissingName
	}

	if len(gig.Dates) == 0 {
		return nil, ErrNoDates
	}

	normalizeDates(gig)

	if err := gig.Validate(); err != nil {
		return nil, err
	}

	gig.ID = gigID
	gig.CompanyID = companyID
	gig.CreatedAt = existing.CreatedAt

	if existing.Status == domain.StatusDraft {
		if gig.Status == "" || gig.Status == domain.StatusDraft {
			gig.Status = domain.StatusTentative
		}
	} else {
		gig.Status = existing.Status
	}

	if err := s.gigsDAL.UpdateGig(ctx, gigID, gig); err != nil {
		return nil, err
	}

	return gig, nil
}

// DiscardDraft removes an abandoned placeholder row and any attachments
// uploaded to it. Attachment deletion failures are logged and swallowed so
// dialog dismissal never blocks on storage.
func (s *GigService) DiscardDraft(ctx context.Context, companyID, gigID string) error {
	logger := s.loggerProvider(ctx)

	gig, err := s.gigsDAL.GetGig(ctx, companyID, gigID)
	if err != nil {
		return err
	}

	if gig.Status != domain.StatusDraft {
		return ErrNotADraft
	}

	if err := s.attachments.DeleteGigAttachments(ctx, companyID, gigID); err != nil {
		logger.Warningf("discard draft %s: attachment cleanup failed: %s", gigID, err)
	}

	return s.gigsDAL.DeleteGig(ctx, gigID)
}

// normalizeDates sorts and de-duplicates the gig days, parses each day's
// schedule text into sessions and recomputes the day count.
func normalizeDates(gig *domain.Gig) {
	byDay := make(map[time.Time]domain.GigDate, len(gig.Dates))

	days := make([]time.Time, 0, len(gig.Dates))

	for _, gigDate := range gig.Dates {
		day := times.DayUTC(gigDate.Date)
		days = append(days, day)

		gigDate.Date = day
		gigDate.Sessions = domain.ParseSchedule(gigDate.ScheduleText)
		byDay[day] = gigDate
	}

	sorted := times.SortedUniqueDays(days)

	dates := make([]domain.GigDate, 0, len(sorted))
	for _, day := range sorted {
		dates = append(dates, byDay[day])
	}

	gig.Dates = dates
	gig.TotalDays = len(dates)
}

// DescribeGig renders the booking summary used on invoice lines.
func DescribeGig(gig *domain.Gig, gigTypeName string) string {
	description := gigTypeName

	if gig.ProjectName != "" {
		description = fmt.Sprintf("%s, %s", description, gig.ProjectName)
	}

	return fmt.Sprintf("%s, %s", description, times.FormatDateRange(gig.StartDate(), gig.EndDate(), gig.TotalDays))
}
