package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// ExpenseServiceWrapper defines middleware composition for ExpenseService.
// Implementations wrap an existing ExpenseService to add behavior such as
// validation.
type ExpenseServiceWrapper interface {
	Wrap(ExpenseService) ExpenseService // returns a decorated ExpenseService applying additional behavior
}

// ExpenseValidationService rejects malformed input before it reaches the
// wrapped ExpenseService. Every failure wraps ErrInvalidDataProvided.
type ExpenseValidationService struct {
	inner     ExpenseService
	validator validators.Validator
}

func NewExpenseValidationService() ExpenseServiceWrapper {
	return &ExpenseValidationService{
		validator: validators.NewExpenseValidator(),
	}
}

func (v *ExpenseValidationService) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := v.validator.Validate(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateExpense(ctx, expense)
}

func (v *ExpenseValidationService) ListExpenses(ctx context.Context, request models.ExpenseListRequest) ([]models.Expense, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListExpenses(ctx, request)
}

func (v *ExpenseValidationService) UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	err := v.validator.Validate(ctx, expense,
		validators.FieldExpenseID,
		validators.FieldOwnerID,
		validators.FieldTitle,
		validators.FieldAmount,
		validators.FieldCategory,
		validators.FieldDate,
	)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateExpense(ctx, expense)
}

func (v *ExpenseValidationService) DeleteExpense(ctx context.Context, ownerID, expenseID int64) error {
	target := models.Expense{ID: expenseID, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, target, validators.FieldExpenseID, validators.FieldOwnerID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteExpense(ctx, ownerID, expenseID)
}

func (v *ExpenseValidationService) Wrap(wrapped ExpenseService) ExpenseService {
	v.inner = wrapped
	return v
}
