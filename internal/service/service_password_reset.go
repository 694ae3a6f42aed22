// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/notify"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// passwordResetService implements the reset state machine on top of the
// user record: no code stored, or a code pending until its expiry.
//
// All state changes are single conditional updates in the store. The
// service holds no state between calls.
type passwordResetService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	codes          crypto.CodeGenerator
	notifier       notify.Notifier
	validator      validators.Validator
	clock          utils.Clock

	codeTTL time.Duration

	logger *logger.Logger
}

func NewPasswordResetService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	codes crypto.CodeGenerator,
	notifier notify.Notifier,
	clock utils.Clock,
	cfg config.App,
	logger *logger.Logger,
) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		hasher:         hasher,
		codes:          codes,
		notifier:       notifier,
		validator:      validators.NewCredentialsValidator(),
		clock:          clock,
		codeTTL:        cfg.ResetCodeTTL,
		logger:         logger,
	}
}

// RequestPasswordReset stores a fresh code for the owner of the email and
// hands it to the notifier. A newer request overwrites a pending code.
//
// An unknown email returns nil, same as a known one, after the same code
// generation and reset-code update, aimed at a user id that never exists.
// Delivery failures are logged and do not undo the stored code.
func (s *passwordResetService) RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("password reset requested for an unknown email")
		s.issueUnmatchedCode(ctx)
		return nil
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	code, err := s.codes.Generate()
	if err != nil {
		log.Err(err).Msg("reset code generation failed")
		return fmt.Errorf("reset code generation failed: %w", err)
	}

	expiresAt := s.clock.Now().Add(s.codeTTL)
	if err = s.userRepository.SetResetCode(ctx, user.UserID, code, expiresAt); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		log.Err(err).Int64("user_id", user.UserID).Msg("storing reset code failed")
		return fmt.Errorf("storing reset code failed: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Time("expires_at", expiresAt).Msg("reset code issued")

	notification := models.ResetNotification{
		Email:     user.Email,
		Username:  user.Username,
		Code:      code,
		ExpiresAt: expiresAt,
		ValidFor:  s.codeTTL,
	}
	if err = s.notifier.SendResetCode(ctx, notification); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("reset code notification failed")
	}

	return nil
}

// noSuchUserID is never assigned by the store; identities start at 1.
const noSuchUserID int64 = 0

// issueUnmatchedCode does the work of a real request against no user, so a
// request for an unknown email costs about as much as one for a known email.
func (s *passwordResetService) issueUnmatchedCode(ctx context.Context) {
	code, err := s.codes.Generate()
	if err != nil {
		return
	}

	err = s.userRepository.SetResetCode(ctx, noSuchUserID, code, s.clock.Now().Add(s.codeTTL))
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Debug().Err(err).Msg("unmatched reset code update failed")
	}
}

// VerifyResetCode reports whether code is the pending, unexpired code of
// the email's owner. The code stays pending on success.
func (s *passwordResetService) VerifyResetCode(ctx context.Context, request models.VerifyResetCodeRequest) error {
	if err := s.validateResetRequest(ctx, request); err != nil {
		return err
	}

	_, err := s.checkResetCode(ctx, request.Email, request.Code)
	return err
}

// ResetPassword verifies the code and replaces the password.
//
// The final update only applies while the verified code is still stored
// and unexpired, so a code re-issued or consumed in between makes this call
// fail instead of completing with a stale code.
func (s *passwordResetService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validateResetRequest(ctx, request); err != nil {
		return err
	}

	user, err := s.checkResetCode(ctx, request.Email, request.Code)
	if err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(request.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = s.userRepository.CompleteReset(ctx, user.UserID, *user.ResetCode, passwordHash, s.clock.Now())
	if errors.Is(err, store.ErrResetCodeMismatch) {
		log.Info().Int64("user_id", user.UserID).Str("reason", "superseded").Msg("reset code rejected")
		return ErrInvalidOrExpiredResetCode
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("completing password reset failed")
		return fmt.Errorf("completing password reset failed: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset completed")
	return nil
}

// validateResetRequest rejects malformed requests. A code of the wrong
// shape gets the same answer as a wrong code.
func (s *passwordResetService) validateResetRequest(ctx context.Context, request any) error {
	err := s.validator.Validate(ctx, request)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidCode):
		return ErrInvalidOrExpiredResetCode
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}

// checkResetCode loads the email's owner and checks code against the
// pending one. An expired code is cleared on the way out.
//
// Every failure returns ErrInvalidOrExpiredResetCode; the reason is only
// logged.
func (s *passwordResetService) checkResetCode(ctx context.Context, email, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("reason", "unknown_email").Msg("reset code rejected")
		return models.User{}, ErrInvalidOrExpiredResetCode
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	userLog := log.With().Int64("user_id", user.UserID).Logger()

	if !user.HasPendingReset() {
		userLog.Info().Str("reason", "no_pending_reset").Msg("reset code rejected")
		return models.User{}, ErrInvalidOrExpiredResetCode
	}

	if !crypto.CodesEqual(*user.ResetCode, code) {
		userLog.Info().Str("reason", "mismatch").Msg("reset code rejected")
		return models.User{}, ErrInvalidOrExpiredResetCode
	}

	if !s.clock.Now().Before(*user.ResetCodeExpiresAt) {
		userLog.Info().Str("reason", "expired").Msg("reset code rejected")
		if err = s.userRepository.ClearResetCode(ctx, user.UserID, *user.ResetCode); err != nil {
			userLog.Err(err).Msg("clearing expired reset code failed")
		}
		return models.User{}, ErrInvalidOrExpiredResetCode
	}

	return user, nil
}
