package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleExpense() models.Expense {
	return models.Expense{
		ID:          3,
		OwnerID:     testUser.UserID,
		Title:       "Coffee",
		Amount:      4.5,
		Category:    "Food",
		Date:        models.NewDate(2026, 3, 14),
		IsRecurring: false,
	}
}

func TestCreateExpense(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectAuthorized()

	want := sampleExpense()
	input := want
	input.ID = 0
	m.expenses.EXPECT().CreateExpense(gomock.Any(), input).Return(want, nil)

	rec := doRequest(router, http.MethodPost, "/expenses/",
		`{"title":"Coffee","amount":4.5,"category":"Food","date":"2026-03-14","is_recurring":false}`, bearer())

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Expense
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, want, got)
}

func TestCreateExpense_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/expenses/", `{"title":"Coffee"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestListExpenses(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.expenses.EXPECT().
			ListExpenses(gomock.Any(), models.ExpenseListRequest{OwnerID: testUser.UserID, Skip: 0, Limit: 100}).
			Return(nil, nil)

		rec := doRequest(router, http.MethodGet, "/expenses/", "", bearer())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("paged", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.expenses.EXPECT().
			ListExpenses(gomock.Any(), models.ExpenseListRequest{OwnerID: testUser.UserID, Skip: 10, Limit: 5}).
			Return([]models.Expense{sampleExpense()}, nil)

		rec := doRequest(router, http.MethodGet, "/expenses/?skip=10&limit=5", "", bearer())

		require.Equal(t, http.StatusOK, rec.Code)
		var got []models.Expense
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 1)
	})

	t.Run("bad limit", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()

		rec := doRequest(router, http.MethodGet, "/expenses/?limit=-1", "", bearer())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	for _, query := range []string{"skip=-1", "skip=18446744073709551615", "limit=9223372036854775808"} {
		t.Run("out of range "+query, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.expectAuthorized()

			rec := doRequest(router, http.MethodGet, "/expenses/?"+query, "", bearer())
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateExpense(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()

		want := sampleExpense()
		m.expenses.EXPECT().UpdateExpense(gomock.Any(), want).Return(want, nil)

		rec := doRequest(router, http.MethodPut, "/expenses/3",
			`{"title":"Coffee","amount":4.5,"category":"Food","date":"2026-03-14"}`, bearer())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's expense", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.expenses.EXPECT().UpdateExpense(gomock.Any(), gomock.Any()).Return(models.Expense{}, service.ErrExpenseNotFound)

		rec := doRequest(router, http.MethodPut, "/expenses/99",
			`{"title":"Coffee","amount":4.5,"category":"Food","date":"2026-03-14"}`, bearer())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()

		rec := doRequest(router, http.MethodPut, "/expenses/abc", `{}`, bearer())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.expenses.EXPECT().DeleteExpense(gomock.Any(), testUser.UserID, int64(3)).Return(nil)

		rec := doRequest(router, http.MethodDelete, "/expenses/3", "", bearer())
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.expectAuthorized()
		m.expenses.EXPECT().DeleteExpense(gomock.Any(), testUser.UserID, int64(4)).Return(service.ErrExpenseNotFound)

		rec := doRequest(router, http.MethodDelete, "/expenses/4", "", bearer())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestExportCSV(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectAuthorized()

	recurring := sampleExpense()
	recurring.ID = 4
	recurring.Title = "Rent, March"
	recurring.Amount = 1200
	recurring.IsRecurring = true

	m.expenses.EXPECT().
		ListExpenses(gomock.Any(), models.ExpenseListRequest{OwnerID: testUser.UserID, Limit: exportLimit}).
		Return([]models.Expense{sampleExpense(), recurring}, nil)

	rec := doRequest(router, http.MethodGet, "/export/csv", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=expenses_alice.csv", rec.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Title", "Amount", "Category", "Date", "Recurring"},
		{"3", "Coffee", "4.5", "Food", "2026-03-14", "false"},
		{"4", "Rent, March", "1200", "Food", "2026-03-14", "true"},
	}, records)
}

func TestExportCSV_Empty(t *testing.T) {
	router, m := newTestRouter(t)
	m.expectAuthorized()
	m.expenses.EXPECT().ListExpenses(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := doRequest(router, http.MethodGet, "/export/csv", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ID,Title,Amount,Category,Date,Recurring\n", rec.Body.String())
}
