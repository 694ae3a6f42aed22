package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// Field names understood by CredentialsValidator.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldCode        = "code"
)

const (
	maxUsernameLength = 64
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

// CredentialsValidator checks the account and password-reset request bodies.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches on the request type. Supported types:
//   - models.SignupRequest
//   - models.ChangePasswordRequest
//   - models.ForgotPasswordRequest
//   - models.VerifyResetCodeRequest
//   - models.ResetPasswordRequest
//
// Pointers to each are accepted too. Returns ErrUnsupportedType otherwise.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.ChangePasswordRequest:
		return validatePassword(value.NewPassword)
	case *models.ChangePasswordRequest:
		return validatePassword(value.NewPassword)

	case models.ForgotPasswordRequest:
		return validateEmail(value.Email)
	case *models.ForgotPasswordRequest:
		return validateEmail(value.Email)

	case models.VerifyResetCodeRequest:
		return v.validateResetFields(value.Email, value.Code, "", FieldEmail, FieldCode)
	case *models.VerifyResetCodeRequest:
		return v.validateResetFields(value.Email, value.Code, "", FieldEmail, FieldCode)

	case models.ResetPasswordRequest:
		return v.validateResetFields(value.Email, value.Code, value.NewPassword, FieldEmail, FieldCode, FieldNewPassword)
	case *models.ResetPasswordRequest:
		return v.validateResetFields(value.Email, value.Code, value.NewPassword, FieldEmail, FieldCode, FieldNewPassword)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = validateUsername(req.Username)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *CredentialsValidator) validateResetFields(email, code, newPassword string, fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(email)
		case FieldCode:
			err = validateCode(code)
		case FieldNewPassword:
			err = validatePassword(newPassword)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" || username != strings.TrimSpace(username) || utf8.RuneCountInString(username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	return nil
}

// validateEmail accepts a bare address only: no display name, no brackets.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" || len(password) > maxPasswordBytes {
		return ErrInvalidPassword
	}
	return nil
}

// validateCode checks the shape of a submitted code after trimming the
// surrounding whitespace the comparison ignores as well.
func validateCode(code string) error {
	code = strings.TrimSpace(code)
	if len(code) != crypto.CodeLength {
		return ErrInvalidCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidCode
		}
	}
	return nil
}
