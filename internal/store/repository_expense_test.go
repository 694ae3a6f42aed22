package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExpenseRepo(t *testing.T) (ExpenseRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, DialectPostgres)
	return NewExpenseRepository(db, logger.Nop()), mock
}

var lunch = models.Expense{
	OwnerID:  7,
	Title:    "Lunch",
	Amount:   12.5,
	Category: "Food",
	Date:     models.NewDate(2024, 3, 5),
}

func TestCreateExpense_Success(t *testing.T) {
	repo, mock := newTestExpenseRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO expenses (owner_id,title,amount,category,expense_date,is_recurring) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id")).
		WithArgs(int64(7), "Lunch", 12.5, "Food", "2024-03-05", false).
		WillReturnRows(sqlmock.NewRows(expenseRowColumns).AddRow(1, 7, "Lunch", 12.5, "Food", "2024-03-05", false))

	created, err := repo.CreateExpense(context.Background(), lunch)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "2024-03-05", created.Date.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpense_DBError(t *testing.T) {
	repo, mock := newTestExpenseRepo(t)

	mock.ExpectQuery("INSERT INTO expenses").WillReturnError(errors.New("boom"))

	_, err := repo.CreateExpense(context.Background(), lunch)
	assert.Error(t, err)
}

func TestListExpenses_ScopedAndPaged(t *testing.T) {
	repo, mock := newTestExpenseRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM expenses WHERE owner_id = $1 ORDER BY expense_date DESC, id DESC LIMIT 10 OFFSET 20")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(expenseRowColumns).
			AddRow(2, 7, "Rent", 900.0, "Housing", "2024-03-01", true).
			AddRow(1, 7, "Lunch", 12.5, "Food", "2024-02-28", false))

	expenses, err := repo.ListExpenses(context.Background(), models.ExpenseListRequest{OwnerID: 7, Skip: 20, Limit: 10})

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Title)
	assert.True(t, expenses[0].IsRecurring)
}

func TestListExpenses_Empty(t *testing.T) {
	repo, mock := newTestExpenseRepo(t)

	mock.ExpectQuery("FROM expenses").WillReturnRows(sqlmock.NewRows(expenseRowColumns))

	expenses, err := repo.ListExpenses(context.Background(), models.ExpenseListRequest{OwnerID: 7, Limit: 100})

	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestListExpenses_ScanError(t *testing.T) {
	repo, mock := newTestExpenseRepo(t)

	mock.ExpectQuery("FROM expenses").
		WillReturnRows(sqlmock.NewRows(expenseRowColumns).AddRow(1, 7, "Lunch", 12.5, "Food", "not-a-date", false))

	_, err := repo.ListExpenses(context.Background(), models.ExpenseListRequest{OwnerID: 7, Limit: 100})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUpdateExpense(t *testing.T) {
	update := lunch
	update.ID = 3
	update.Amount = 20

	t.Run("owned", func(t *testing.T) {
		repo, mock := newTestExpenseRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE expenses SET title = $1, amount = $2, category = $3, expense_date = $4, is_recurring = $5 WHERE id = $6 AND owner_id = $7")).
			WithArgs("Lunch", 20.0, "Food", "2024-03-05", false, int64(3), int64(7)).
			WillReturnRows(sqlmock.NewRows(expenseRowColumns).AddRow(3, 7, "Lunch", 20.0, "Food", "2024-03-05", false))

		updated, err := repo.UpdateExpense(context.Background(), update)

		require.NoError(t, err)
		assert.Equal(t, 20.0, updated.Amount)
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock := newTestExpenseRepo(t)
		mock.ExpectQuery("UPDATE expenses").WillReturnRows(sqlmock.NewRows(expenseRowColumns))

		_, err := repo.UpdateExpense(context.Background(), update)
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestExpenseRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1 AND owner_id = $2")).
			WithArgs(int64(3), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteExpense(context.Background(), 7, 3))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestExpenseRepo(t)
		mock.ExpectExec("DELETE FROM expenses").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteExpense(context.Background(), 7, 3), ErrExpenseNotFound)
	})
}
