package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigwell/scheduled-tasks/expenses/dal/mocks"
	"github.com/gigwell/scheduled-tasks/expenses/domain"
	"github.com/gigwell/scheduled-tasks/logger"
)

func TestCheckDuplicates(t *testing.T) {
	ctx := context.Background()

	stored := &domain.Expense{
		ID:        "exp-1",
		CompanyID: "company-1",
		Date:      "2024-01-05",
		Supplier:  "Ikea",
		Amount:    499,
	}

	t.Run("flags exact triple match", func(t *testing.T) {
		expensesDAL := &mocks.Expenses{}
		expensesDAL.On("FindByTriple", ctx, "company-1", "2024-01-05", "Ikea", 499.0).Return(stored, nil)

		s := NewExpenseServiceWithDeps(logger.FromContext, expensesDAL)

		results, err := s.CheckDuplicates(ctx, "company-1", []domain.ExpenseCandidate{
			{Date: "2024-01-05", Supplier: "Ikea", Amount: 499},
		})

		assert.NoError(t, err)

		if assert.Len(t, results, 1) {
			assert.True(t, results[0].IsDuplicate)
			assert.Equal(t, "exp-1", results[0].ExistingExpense.ID)
		}
	})

	t.Run("results stay index aligned", func(t *testing.T) {
		expensesDAL := &mocks.Expenses{}
		expensesDAL.On("FindByTriple", ctx, "company-1", "2024-01-05", "Ikea", 499.0).Return(stored, nil)
		expensesDAL.On("FindByTriple", ctx, "company-1", "2024-02-10", "SJ", 249.0).Return(nil, nil)

		s := NewExpenseServiceWithDeps(logger.FromContext, expensesDAL)

		results, err := s.CheckDuplicates(ctx, "company-1", []domain.ExpenseCandidate{
			{Date: "2024-02-10", Supplier: "SJ", Amount: 249},
			{Date: "2024-01-05", Supplier: "Ikea", Amount: 499},
		})

		assert.NoError(t, err)

		if assert.Len(t, results, 2) {
			assert.False(t, results[0].IsDuplicate)
			assert.True(t, results[1].IsDuplicate)
		}
	})

	t.Run("incomplete candidates are skipped", func(t *testing.T) {
		expensesDAL := &mocks.Expenses{}

		s := NewExpenseServiceWithDeps(logger.FromContext, expensesDAL)

		results, err := s.CheckDuplicates(ctx, "company-1", []domain.ExpenseCandidate{
			{Date: "", Supplier: "Ikea", Amount: 499},
			{Date: "2024-01-05", Supplier: "", Amount: 499},
			{Date: "2024-01-05", Supplier: "Ikea", Amount: 0},
		})

		assert.NoError(t, err)

		for _, result := range results {
			assert.False(t, result.IsDuplicate)
		}

		expensesDAL.AssertNotCalled(t, "FindByTriple")
	})
}

func TestSupplierHistory(t *testing.T) {
	ctx := context.Background()

	expensesDAL := &mocks.Expenses{}
	expensesDAL.On("ListExpenses", ctx, "company-1").Return([]*domain.Expense{
		{Supplier: "Spotify AB", Category: "Subscription", Currency: "USD"},
		{Supplier: "SJ AB", Category: "Travel", Currency: "SEK"},
		{Supplier: "spotify", Category: "Subscription", Currency: "USD"},
	}, nil)

	s := NewExpenseServiceWithDeps(logger.FromContext, expensesDAL)

	history, err := s.SupplierHistory(ctx, "company-1")

	assert.NoError(t, err)

	if assert.Len(t, history.Entries, 2) {
		assert.Equal(t, "spotify", history.Entries[0].Supplier)
		assert.Equal(t, 2, history.Entries[0].Count)
		assert.Equal(t, "sj", history.Entries[1].Supplier)
	}
}
