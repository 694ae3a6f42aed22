package http

import (
	"encoding/csv"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit = 100
	exportLimit      = validators.MaxListLimit
)

var csvHeader = []string{"ID", "Title", "Amount", "Category", "Date", "Recurring"}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var input models.ExpenseInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.ExpenseService.CreateExpense(ctx, input.ToExpense(ownerID, 0))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listExpenses returns one page of the caller's expenses, newest first.
// Query: skip (default 0), limit (default 100, at most 1000).
func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	skip, err := queryUint(r, "skip", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit", defaultListLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(ctx, models.ExpenseListRequest{
		OwnerID: ownerID,
		Skip:    skip,
		Limit:   limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}
	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	expenseID, err := expenseIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ExpenseInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.ExpenseService.UpdateExpense(ctx, input.ToExpense(ownerID, expenseID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	expenseID, err := expenseIDParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ExpenseService.DeleteExpense(ctx, ownerID, expenseID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exportCSV streams up to exportLimit of the caller's expenses as a CSV
// attachment.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	expenses, err := h.services.ExpenseService.ListExpenses(ctx, models.ExpenseListRequest{
		OwnerID: user.UserID,
		Limit:   exportLimit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", user.Username)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	if err = writer.Write(csvHeader); err != nil {
		log.Err(err).Msg("writing csv header failed")
		return
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Title,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Category,
			e.Date.String(),
			strconv.FormatBool(e.IsRecurring),
		}
		if err = writer.Write(record); err != nil {
			log.Err(err).Msg("writing csv record failed")
			return
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		log.Err(err).Msg("flushing csv failed")
	}
}

// queryUint reads a non-negative integer that fits a signed 64-bit SQL
// parameter.
func queryUint(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return uint64(value), nil
}

func expenseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id", ErrInvalidQueryParam)
	}
	return id, nil
}
