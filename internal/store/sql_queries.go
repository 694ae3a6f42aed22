package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	expensesTable = "expenses"
)

var (
	userColumns = []string{
		"id", "username", "email", "password_hash",
		"reset_code", "reset_code_expires_at", "created_at",
	}

	expenseColumns = []string{
		"id", "owner_id", "title", "amount", "category", "expense_date", "is_recurring",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

// buildSelectUserQuery selects a single user matching where.
func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, userID int64, passwordHash string) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSetResetCodeQuery(b sq.StatementBuilderType, userID int64, code string, expiresAt time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("reset_code", code).
		Set("reset_code_expires_at", expiresAt.UTC()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildCompleteResetQuery swaps in the new hash and clears the reset pair,
// guarded by the code still being current and unexpired.
func buildCompleteResetQuery(b sq.StatementBuilderType, userID int64, code, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("reset_code", sq.Expr("NULL")).
		Set("reset_code_expires_at", sq.Expr("NULL")).
		Where(sq.Eq{"id": userID, "reset_code": code}).
		Where(sq.Gt{"reset_code_expires_at": now.UTC()}).
		ToSql()
}

func buildClearResetCodeQuery(b sq.StatementBuilderType, userID int64, code string) (string, []any, error) {
	return b.Update(usersTable).
		Set("reset_code", sq.Expr("NULL")).
		Set("reset_code_expires_at", sq.Expr("NULL")).
		Where(sq.Eq{"id": userID, "reset_code": code}).
		ToSql()
}

func buildInsertExpenseQuery(b sq.StatementBuilderType, e models.Expense) (string, []any, error) {
	return b.Insert(expensesTable).
		Columns("owner_id", "title", "amount", "category", "expense_date", "is_recurring").
		Values(e.OwnerID, e.Title, e.Amount, e.Category, e.Date, e.IsRecurring).
		Suffix(returning(expenseColumns)).
		ToSql()
}

func buildListExpensesQuery(b sq.StatementBuilderType, req models.ExpenseListRequest) (string, []any, error) {
	return b.Select(expenseColumns...).
		From(expensesTable).
		Where(sq.Eq{"owner_id": req.OwnerID}).
		OrderBy("expense_date DESC", "id DESC").
		Limit(req.Limit).
		Offset(req.Skip).
		ToSql()
}

func buildUpdateExpenseQuery(b sq.StatementBuilderType, e models.Expense) (string, []any, error) {
	return b.Update(expensesTable).
		Set("title", e.Title).
		Set("amount", e.Amount).
		Set("category", e.Category).
		Set("expense_date", e.Date).
		Set("is_recurring", e.IsRecurring).
		Where(sq.Eq{"id": e.ID, "owner_id": e.OwnerID}).
		Suffix(returning(expenseColumns)).
		ToSql()
}

func buildDeleteExpenseQuery(b sq.StatementBuilderType, ownerID, expenseID int64) (string, []any, error) {
	return b.Delete(expensesTable).
		Where(sq.Eq{"id": expenseID, "owner_id": ownerID}).
		ToSql()
}
