package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// expenseRepository is the SQL implementation of [ExpenseRepository].
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by db.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertExpenseQuery(r.db.builder, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanExpense(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error inserting expense")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context, request models.ExpenseListRequest) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpensesQuery(r.db.builder, request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ListExpenses").Msg("error selecting expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateExpenseQuery(r.db.builder, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanExpense(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, ErrExpenseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.UpdateExpense").Msg("error updating expense")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpenseQuery(r.db.builder, ownerID, expenseID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").Msg("error deleting expense")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// scanExpense reads the columns listed in expenseColumns.
func scanExpense(row rowScanner) (models.Expense, error) {
	var e models.Expense
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Amount, &e.Category, &e.Date, &e.IsRecurring); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}
