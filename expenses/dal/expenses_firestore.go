package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/framework/connection"
)

const (
	expensesCollection = "expenses"
)

// ExpensesFirestore is used to interact with expenses stored on Firestore.
type ExpensesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewExpensesFirestoreWithClient returns a new ExpensesFirestore using given client function.
func NewExpensesFirestoreWithClient(fun connection.FirestoreFromContextFun) *ExpensesFirestore {
	return &ExpensesFirestore{
		firestoreClientFun: fun,
	}
}

func (d *ExpensesFirestore) expensesCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(expensesCollection)
}

func (d *ExpensesFirestore) GetExpense(ctx context.Context, companyID, expenseID string) (*domain.Expense, error) {
	docSnap, err := d.expensesCollection(ctx).Doc(expenseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var expense domain.Expense
	if err := docSnap.DataTo(&expense); err != nil {
		return nil, err
	}

	// another company's expense is indistinguishable from a missing one
	if expense.CompanyID != companyID {
		return nil, ErrNotFound
	}

	expense.ID = docSnap.Ref.ID

	return &expense, nil
}

// ListExpenses returns the company's expenses ordered by creation time, so
// that aggregations built from the result see rows in first-seen order.
func (d *ExpensesFirestore) ListExpenses(ctx context.Context, companyID string) ([]*domain.Expense, error) {
	iter := d.expensesCollection(ctx).
		Where("companyId", "==", companyID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)

	var expenses []*domain.Expense

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var expense domain.Expense
		if err := docSnap.DataTo(&expense); err != nil {
			return nil, err
		}

		expense.ID = docSnap.Ref.ID

		expenses = append(expenses, &expense)
	}

	return expenses, nil
}

func (d *ExpensesFirestore) CreateExpense(ctx context.Context, companyID string, expense *domain.Expense) (string, error) {
	expense.CompanyID = companyID

	docRef, _, err := d.expensesCollection(ctx).Add(ctx, expense)
	if err != nil {
		return "", err
	}

	return docRef.ID, nil
}

// FindByTriple returns the first stored expense matching the exact
// (date, supplier, amount) triple, or nil when none exists.
func (d *ExpensesFirestore) FindByTriple(ctx context.Context, companyID, date, supplier string, amount float64) (*domain.Expense, error) {
	iter := d.expensesCollection(ctx).
		Where("companyId", "==", companyID).
		Where("date", "==", date).
		Where("supplier", "==", supplier).
		Where("amount", "==", amount).
		Limit(1).
		Documents(ctx)

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var expense domain.Expense
	if err := docSnap.DataTo(&expense); err != nil {
		return nil, err
	}

	expense.ID = docSnap.Ref.ID

	return &expense, nil
}
