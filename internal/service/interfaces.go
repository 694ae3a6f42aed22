package service

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns credential checks and the access-token lifecycle.
type AuthService interface {
	// Signup hashes the password and stores a new identity.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login returns the identity matching username and password, or
	// ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// IssueToken signs an access token for user.
	IssueToken(ctx context.Context, user models.User) (models.Token, error)

	// ResolveIdentity verifies tokenString and loads its subject.
	ResolveIdentity(ctx context.Context, tokenString string) (models.User, error)

	// ChangePassword replaces the password of userID after checking the
	// current one. Reset state is left untouched.
	ChangePassword(ctx context.Context, userID int64, request models.ChangePasswordRequest) error
}

// PasswordResetService drives the one-time-code password reset.
type PasswordResetService interface {
	// RequestPasswordReset issues a new code for the email's owner. An
	// unknown email is not an error.
	RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error

	// VerifyResetCode checks a code without consuming it.
	VerifyResetCode(ctx context.Context, request models.VerifyResetCodeRequest) error

	// ResetPassword verifies the code and, in the same step, stores the new
	// password and consumes the code.
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error
}

// ExpenseService manages expenses of a single owner.
type ExpenseService interface {
	CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListExpenses(ctx context.Context, request models.ExpenseListRequest) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, ownerID, expenseID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
