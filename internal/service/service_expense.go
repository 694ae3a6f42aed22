package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type expenseService struct {
	expenseRepository store.ExpenseRepository

	logger *logger.Logger
}

// NewExpenseService returns the expense service decorated with input
// validation.
func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return NewExpenseValidationService().Wrap(&expenseService{
		expenseRepository: expenseRepository,
		logger:            logger,
	})
}

func (e *expenseService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	created, err := e.expenseRepository.CreateExpense(ctx, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("error creating expense: %w", err)
	}
	return created, nil
}

func (e *expenseService) ListExpenses(ctx context.Context, request models.ExpenseListRequest) ([]models.Expense, error) {
	expenses, err := e.expenseRepository.ListExpenses(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	return expenses, nil
}

func (e *expenseService) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	updated, err := e.expenseRepository.UpdateExpense(ctx, expense)
	if errors.Is(err, store.ErrExpenseNotFound) {
		return models.Expense{}, ErrExpenseNotFound
	}
	if err != nil {
		return models.Expense{}, fmt.Errorf("error updating expense: %w", err)
	}
	return updated, nil
}

func (e *expenseService) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	err := e.expenseRepository.DeleteExpense(ctx, ownerID, expenseID)
	if errors.Is(err, store.ErrExpenseNotFound) {
		return ErrExpenseNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}
	return nil
}
