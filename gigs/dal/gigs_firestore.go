package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/gigs/domain"
)

const (
	gigsCollection = "gigs"
)

// GigsFirestore is used to interact with gigs stored on Firestore.
type GigsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewGigsFirestoreWithClient returns a new GigsFirestore using given client function.
func NewGigsFirestoreWithClient(fun connection.FirestoreFromContextFun) *GigsFirestore {
	return &GigsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *GigsFirestore) gigsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(gigsCollection)
}

// CreateDraft inserts a placeholder row so attachments can be associated with
// a permanent id before the booking form is submitted.
func (d *GigsFirestore) CreateDraft(ctx context.Context, companyID string) (string, error) {
	draft := &domain.Gig{
		CompanyID: companyID,
		Status:    domain.StatusDraft,
	}

	docRef, _, err := d.gigsCollection(ctx).Add(ctx, draft)
	if err != nil {
		return "", err
	}

	return docRef.ID, nil
}

func (d *GigsFirestore) GetGig(ctx context.Context, companyID, gigID string) (*domain.Gig, error) {
	docSnap, err := d.gigsCollection(ctx).Doc(gigID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var gig domain.Gig
	if err := docSnap.DataTo(&gig); err != nil {
		return nil, err
	}

	// another company's gig is indistinguishable from a missing one
	if gig.CompanyID != companyID {
		return nil, ErrNotFound
	}

	gig.ID = docSnap.Ref.ID

	return &gig, nil
}

// GetGigs loads the given gig ids preserving the requested order.
func (d *GigsFirestore) GetGigs(ctx context.Context, companyID string, gigIDs []string) ([]*domain.Gig, error) {
	gigs := make([]*domain.Gig, 0, len(gigIDs))

	for _, gigID := range gigIDs {
		gig, err := d.GetGig(ctx, companyID, gigID)
		if err != nil {
			return nil, err
		}

		gigs = append(gigs, gig)
	}

	return gigs, nil
}

func (d *GigsFirestore) UpdateGig(ctx context.Context, gigID string, gig *domain.Gig) error {
	_, err := d.gigsCollection(ctx).Doc(gigID).Set(ctx, gig)
	return err
}

func (d *GigsFirestore) UpdateStatus(ctx context.Context, gigID string, status domain.GigStatus, stamps map[string]time.Time) error {
	updates := []firestore.Update{
		{Path: "status", Value: string(status)},
	}

	for field, at := range stamps {
		updates = append(updates, firestore.Update{Path: field, Value: at})
	}

	_, err := d.gigsCollection(ctx).Doc(gigID).Update(ctx, updates)

	return err
}

func (d *GigsFirestore) DeleteGig(ctx context.Context, gigID string) error {
	_, err := d.gigsCollection(ctx).Doc(gigID).Delete(ctx)
	return err
}

// ListAbandonedDrafts returns empty-named draft rows created before the cutoff.
func (d *GigsFirestore) ListAbandonedDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Gig, error) {
	iter := d.gigsCollection(ctx).
		Where("status", "==", string(domain.StatusDraft)).
		Where("name", "==", "").
		Where("createdAt", "<", olderThan).
		Documents(ctx)

	var drafts []*domain.Gig

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var gig domain.Gig
		if err := docSnap.DataTo(&gig); err != nil {
			return nil, err
		}

		gig.ID = docSnap.Ref.ID

		drafts = append(drafts, &gig)
	}

	return drafts, nil
}
