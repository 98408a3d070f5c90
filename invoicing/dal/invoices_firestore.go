package dal

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigwell/scheduled-tasks/framework/connection"
	"github.com/gigwell/scheduled-tasks/invoicing/domain"
)

const (
	invoicesCollection        = "invoices"
	invoiceCountersCollection = "invoiceCounters"
)

// InvoicesFirestore is used to interact with invoices stored on Firestore.
type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewInvoicesFirestoreWithClient returns a new InvoicesFirestore using given client function.
func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *InvoicesFirestore) invoicesCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(invoicesCollection)
}

func (d *InvoicesFirestore) GetInvoice(ctx context.Context, companyID, invoiceID string) (*domain.Invoice, error) {
	docSnap, err := d.invoicesCollection(ctx).Doc(invoiceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var invoice domain.Invoice
	if err := docSnap.DataTo(&invoice); err != nil {
		return nil, err
	}

	// another company's invoice is indistinguishable from a missing one
	if invoice.CompanyID != companyID {
		return nil, ErrNotFound
	}

	invoice.ID = docSnap.Ref.ID

	return &invoice, nil
}

func (d *InvoicesFirestore) ListInvoices(ctx context.Context, companyID string) ([]*domain.Invoice, error) {
	iter := d.invoicesCollection(ctx).
		Where("companyId", "==", companyID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var invoices []*domain.Invoice

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var invoice domain.Invoice
		if err := docSnap.DataTo(&invoice); err != nil {
			return nil, err
		}

		invoice.ID = docSnap.Ref.ID

		invoices = append(invoices, &invoice)
	}

	return invoices, nil
}

func (d *InvoicesFirestore) CreateInvoice(ctx context.Context, companyID string, invoice *domain.Invoice) (string, error) {
	invoice.CompanyID = companyID

	docRef, _, err := d.invoicesCollection(ctx).Add(ctx, invoice)
	if err != nil {
		return "", err
	}

	return docRef.ID, nil
}

// NextInvoiceNumber increments the company's invoice counter in a
// transaction and returns the new sequence number.
func (d *InvoicesFirestore) NextInvoiceNumber(ctx context.Context, companyID string) (string, error) {
	fs := d.firestoreClientFun(ctx)
	counterRef := fs.Collection(invoiceCountersCollection).Doc(companyID)

	var next int64

	err := fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		next = 1

		docSnap, err := tx.Get(counterRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		if docSnap != nil && docSnap.Exists() {
			current, err := docSnap.DataAt("current")
			if err != nil {
				return err
			}

			next = current.(int64) + 1
		}

		return tx.Set(counterRef, map[string]interface{}{"current": next})
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", next), nil
}
