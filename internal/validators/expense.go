// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldOwnerID   = "owner_id"
	FieldExpenseID = "id"
	FieldTitle     = "title"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldLimit     = "limit"
)

// MaxListLimit caps a single page of expenses.
const MaxListLimit = 1000

// ExpenseValidator implements the Validator interface for expense models:
// Expense and ExpenseListRequest, as values or pointers.
type ExpenseValidator struct{}

func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Expense:
		return v.validateExpense(value, fields...)
	case *models.Expense:
		return v.validateExpense(*value, fields...)

	case models.ExpenseListRequest:
		return v.validateListRequest(value, fields...)
	case *models.ExpenseListRequest:
		return v.validateListRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateExpense validates a single Expense.
//
// Default validated fields (when none specified):
// OwnerID, Title, Amount, Category, Date.
func (v *ExpenseValidator) validateExpense(expense models.Expense, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle, FieldAmount, FieldCategory, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if expense.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldExpenseID:
			if expense.ID <= 0 {
				return ErrInvalidExpenseID
			}
		case FieldTitle:
			if strings.TrimSpace(expense.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldAmount:
			if expense.Amount <= 0 || math.IsInf(expense.Amount, 0) || math.IsNaN(expense.Amount) {
				return ErrInvalidAmount
			}
		case FieldCategory:
			if strings.TrimSpace(expense.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldDate:
			if expense.Date.IsZero() {
				return ErrEmptyDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ExpenseValidator) validateListRequest(req models.ExpenseListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if req.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldLimit:
			if req.Limit == 0 || req.Limit > MaxListLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
