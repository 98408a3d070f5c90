package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	companyDal "github.com/gigwell/scheduled-tasks/company/dal"
	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/tiers/domain"
)

const (
	tiersCollection = "tiers"
)

// TiersFirestore is used to interact with tiers stored on Firestore.
type TiersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	companiesDAL       companyDal.Companies
}

// NewTiersFirestoreWithClient returns a new TiersFirestore using given client function.
func NewTiersFirestoreWithClient(fun connection.FirestoreFromContextFun) *TiersFirestore {
	return &TiersFirestore{
		firestoreClientFun: fun,
		companiesDAL:       companyDal.NewCompaniesFirestoreWithClient(fun),
	}
}

func (d *TiersFirestore) tiersCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(tiersCollection)
}

func (d *TiersFirestore) GetTier(ctx context.Context, tierID string) (*domain.Tier, error) {
	docSnap, err := d.tiersCollection(ctx).Doc(tierID).Get(ctx)
	if err != nil {
		return nil, err
	}

	var tier domain.Tier
	if err := docSnap.DataTo(&tier); err != nil {
		return nil, err
	}

	tier.ID = docSnap.Ref.ID

	return &tier, nil
}

// GetCompanyTier resolves a company's subscription tier through the tier id
// stored on the company document.
func (d *TiersFirestore) GetCompanyTier(ctx context.Context, companyID string) (*domain.Tier, error) {
	company, err := d.companiesDAL.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return d.GetTier(ctx, company.Tier)
}
