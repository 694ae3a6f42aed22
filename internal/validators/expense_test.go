package validators

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExpense() models.Expense {
	return models.Expense{
		OwnerID:  1,
		Title:    "Groceries",
		Amount:   42.5,
		Category: "food",
		Date:     models.NewDate(2026, 3, 14),
	}
}

func TestExpenseValidator_Dispatch(t *testing.T) {
	v := NewExpenseValidator()
	ctx := context.Background()
	e := validExpense()
	list := models.ExpenseListRequest{OwnerID: 1, Limit: 100}

	assert.NoError(t, v.Validate(ctx, e))
	assert.NoError(t, v.Validate(ctx, &e))
	assert.NoError(t, v.Validate(ctx, list))
	assert.NoError(t, v.Validate(ctx, &list))
	assert.ErrorIs(t, v.Validate(ctx, "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestExpenseValidator_Expense(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *models.Expense)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(e *models.Expense) {}},
		{name: "zero owner", mutate: func(e *models.Expense) { e.OwnerID = 0 }, wantErr: ErrInvalidOwnerID},
		{name: "blank title", mutate: func(e *models.Expense) { e.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "zero amount", mutate: func(e *models.Expense) { e.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(e *models.Expense) { e.Amount = -3 }, wantErr: ErrInvalidAmount},
		{name: "NaN amount", mutate: func(e *models.Expense) { e.Amount = math.NaN() }, wantErr: ErrInvalidAmount},
		{name: "empty category", mutate: func(e *models.Expense) { e.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "missing date", mutate: func(e *models.Expense) { e.Date = models.Date{} }, wantErr: ErrEmptyDate},
		{
			name:    "id checked only when requested",
			mutate:  func(e *models.Expense) {},
			fields:  []string{FieldExpenseID},
			wantErr: ErrInvalidExpenseID,
		},
		{
			name:   "field scoping skips other fields",
			mutate: func(e *models.Expense) { e.Title = "" },
			fields: []string{FieldAmount},
		},
		{
			name:    "unknown field",
			mutate:  func(e *models.Expense) {},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewExpenseValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)

			err := v.Validate(context.Background(), e, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpenseValidator_ListRequest(t *testing.T) {
	v := NewExpenseValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ExpenseListRequest{OwnerID: 5, Skip: 20, Limit: MaxListLimit}))
	assert.ErrorIs(t, v.Validate(ctx, models.ExpenseListRequest{OwnerID: 0, Limit: 10}), ErrInvalidOwnerID)
	assert.ErrorIs(t, v.Validate(ctx, models.ExpenseListRequest{OwnerID: 5, Limit: 0}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.ExpenseListRequest{OwnerID: 5, Limit: MaxListLimit + 1}), ErrInvalidLimit)
	assert.ErrorIs(t, v.Validate(ctx, models.ExpenseListRequest{OwnerID: 5, Limit: 1}, FieldTitle), ErrUnknownField)
}
