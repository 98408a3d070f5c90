package dal

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gigwell/scheduled-tasks/company/domain"
	"github.com/gigwell/scheduled-tasks/framework/connection"
)

const (
	companiesCollection      = "companies"
	gigTypesSubCollection    = "gigTypes"
)

// CompaniesFirestore is used to interact with companies stored on Firestore.
type CompaniesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCompaniesFirestoreWithClient returns a new CompaniesFirestore using given client function.
func NewCompaniesFirestoreWithClient(fun connection.FirestoreFromContextFun) *CompaniesFirestore {
	return &CompaniesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CompaniesFirestore) companiesCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(companiesCollection)
}

func (d *CompaniesFirestore) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	docSnap, err := d.companiesCollection(ctx).Doc(companyID).Get(ctx)
	if err != nil {
		return nil, err
	}

	var company domain.Company
	if err := docSnap.DataTo(&company); err != nil {
		return nil, err
	}

	company.ID = docSnap.Ref.ID

	return &company, nil
}

func (d *CompaniesFirestore) UpdateCompany(ctx context.Context, companyID string, company *domain.Company) error {
	_, err := d.companiesCollection(ctx).Doc(companyID).Set(ctx, company)
	return err
}

func (d *CompaniesFirestore) ListGigTypes(ctx context.Context, companyID string) ([]*domain.GigType, error) {
	iter := d.companiesCollection(ctx).
		Doc(companyID).
		Collection(gigTypesSubCollection).
		Documents(ctx)

	var gigTypes []*domain.GigType

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var gigType domain.GigType
		if err := docSnap.DataTo(&gigType); err != nil {
			return nil, err
		}

		gigType.ID = docSnap.Ref.ID

		gigTypes = append(gigTypes, &gigType)
	}

	sort.SliceStable(gigTypes, func(i, j int) bool {
		return gigTypes[i].Sort < gigTypes[j].Sort
	})

	return gigTypes, nil
}

func (d *CompaniesFirestore) GetGigType(ctx context.Context, companyID, gigTypeID string) (*domain.GigType, error) {
	docSnap, err := d.companiesCollection(ctx).
		Doc(companyID).
		Collection(gigTypesSubCollection).
		Doc(gigTypeID).
		Get(ctx)
	if err != nil {
		return nil, err
	}

	var gigType domain.GigType
	if err := docSnap.DataTo(&gigType); err != nil {
		return nil, err
	}

	gigType.ID = docSnap.Ref.ID

	return &gigType, nil
}
