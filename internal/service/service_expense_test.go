// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/mock"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestExpenseService(t *testing.T) (ExpenseService, *mock.MockExpenseRepository) {
	t.Helper()
	repo := mock.NewMockExpenseRepository(gomock.NewController(t))
	return NewExpenseService(repo, logger.Nop()), repo
}

func sampleExpense() models.Expense {
	return models.Expense{
		OwnerID:  2,
		Title:    "Rent",
		Amount:   900,
		Category: "housing",
		Date:     models.NewDate(2026, 4, 1),
	}
}

// ─────────────────────────────────────────────
// CreateExpense
// ─────────────────────────────────────────────

func TestExpenseService_Create_Success(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	in := sampleExpense()
	out := in
	out.ID = 11

	repo.EXPECT().CreateExpense(gomock.Any(), in).Return(out, nil)

	got, err := svc.CreateExpense(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestExpenseService_Create_ValidationStopsBeforeStore(t *testing.T) {
	svc, _ := newTestExpenseService(t)
	in := sampleExpense()
	in.Amount = 0

	_, err := svc.CreateExpense(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidAmount)
}

func TestExpenseService_Create_StorageError(t *testing.T) {
	svc, repo := newTestExpenseService(t)

	repo.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(models.Expense{}, errDB)

	_, err := svc.CreateExpense(context.Background(), sampleExpense())
	assert.ErrorIs(t, err, errDB)
}

// ─────────────────────────────────────────────
// ListExpenses
// ─────────────────────────────────────────────

func TestExpenseService_List(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	req := models.ExpenseListRequest{OwnerID: 2, Skip: 0, Limit: 100}

	repo.EXPECT().ListExpenses(gomock.Any(), req).Return([]models.Expense{sampleExpense()}, nil)

	got, err := svc.ListExpenses(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestExpenseService_List_LimitTooLarge(t *testing.T) {
	svc, _ := newTestExpenseService(t)

	_, err := svc.ListExpenses(context.Background(), models.ExpenseListRequest{OwnerID: 2, Limit: 5000})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// UpdateExpense / DeleteExpense
// ─────────────────────────────────────────────

func TestExpenseService_Update_NotFound(t *testing.T) {
	svc, repo := newTestExpenseService(t)
	in := sampleExpense()
	in.ID = 99

	repo.EXPECT().UpdateExpense(gomock.Any(), in).Return(models.Expense{}, store.ErrExpenseNotFound)

	_, err := svc.UpdateExpense(context.Background(), in)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestExpenseService_Update_RequiresID(t *testing.T) {
	svc, _ := newTestExpenseService(t)

	_, err := svc.UpdateExpense(context.Background(), sampleExpense())
	assert.ErrorIs(t, err, validators.ErrInvalidExpenseID)
}

func TestExpenseService_Delete(t *testing.T) {
	svc, repo := newTestExpenseService(t)

	repo.EXPECT().DeleteExpense(gomock.Any(), int64(2), int64(11)).Return(nil)
	require.NoError(t, svc.DeleteExpense(context.Background(), 2, 11))

	repo.EXPECT().DeleteExpense(gomock.Any(), int64(2), int64(12)).Return(store.ErrExpenseNotFound)
	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), 2, 12), ErrExpenseNotFound)

	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), 2, 0), ErrInvalidDataProvided)
}
