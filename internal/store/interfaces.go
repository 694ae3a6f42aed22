package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository persists identity records. Every mutation is a single
// statement so concurrent processes never observe a half-written reset state.
type UserRepository interface {
	// CreateUser inserts a new identity and returns it with store-assigned
	// fields. Returns ErrIdentityAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdatePassword replaces the password hash without touching reset state.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// SetResetCode stores code and its expiry together, overwriting any
	// pending code.
	SetResetCode(ctx context.Context, userID int64, code string, expiresAt time.Time) error

	// CompleteReset sets passwordHash and clears the reset pair only if code
	// is still the stored one and has not expired at now. Returns
	// ErrResetCodeMismatch when nothing was updated.
	CompleteReset(ctx context.Context, userID int64, code, passwordHash string, now time.Time) error

	// ClearResetCode clears the reset pair only if code is still the stored
	// one. A newer code is left untouched.
	ClearResetCode(ctx context.Context, userID int64, code string) error
}

// ExpenseRepository persists expenses. All operations are scoped to the owner.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListExpenses(ctx context.Context, request models.ExpenseListRequest) ([]models.Expense, error)

	// UpdateExpense replaces every mutable field of an owned expense.
	// Returns ErrExpenseNotFound when no such expense belongs to the owner.
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)

	DeleteExpense(ctx context.Context, ownerID, expenseID int64) error
}

// ErrorClassificator maps driver errors onto store-level decisions.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
}
