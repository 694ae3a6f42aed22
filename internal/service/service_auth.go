package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/internal/validators"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and the access-token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	clock          utils.Clock

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	clock utils.Clock,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewCredentialsValidator(),
		clock:          clock,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new identity.
//
// Returns the persisted user (with a store-assigned UserID) or:
//   - ErrInvalidDataProvided if a field fails validation.
//   - ErrDuplicateIdentity if the username or email is taken.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("invalid signup data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrIdentityAlreadyExists) {
		log.Info().Str("username", request.Username).Msg("signup with an existing username or email")
		return models.User{}, ErrDuplicateIdentity
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing user.
//
// An unknown username still pays for a full hash comparison, so response
// time does not reveal which usernames exist. Both cases return
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(request.Password, "")
		log.Info().Str("username", request.Username).Msg("login for unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.PasswordHash) {
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// IssueToken signs an access token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires tokenDuration after
// the clock's current time.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey, a.clock.Now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveIdentity verifies tokenString and returns the identity it was
// issued for.
//
// Errors:
//   - ErrExpiredToken, ErrInvalidSignature, ErrMalformedToken from
//     verification.
//   - ErrUnknownSubject if the token is valid but the user is gone.
func (a *authService) ResolveIdentity(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.clock.Now())
	if err != nil {
		kind, mapped := mapTokenError(err)
		log.Info().Str("reason", kind).Msg("token rejected")
		return models.User{}, mapped
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("reason", "unknown_subject").Int64("user_id", token.UserID).Msg("token rejected")
		return models.User{}, ErrUnknownSubject
	}
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// ChangePassword checks currentPassword against the stored hash and stores
// a hash of the new one.
func (a *authService) ChangePassword(ctx context.Context, userID int64, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx).With().Int64("user_id", userID).Logger()

	if err := a.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUnknownSubject
	}
	if err != nil {
		log.Error().Err(err).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(request.CurrentPassword, user.PasswordHash) {
		log.Info().Msg("password change with a wrong current password")
		return ErrInvalidCredentials
	}

	passwordHash, err := a.hasher.Hash(request.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUnknownSubject
		}
		log.Error().Err(err).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Msg("password changed")
	return nil
}

// mapTokenError translates a verification failure into a short reason used
// in logs and a service error.
func mapTokenError(err error) (string, error) {
	switch {
	case errors.Is(err, utils.ErrTokenExpired):
		return "expired", ErrExpiredToken
	case errors.Is(err, utils.ErrTokenInvalidSignature):
		return "invalid_signature", ErrInvalidSignature
	default:
		return "malformed", ErrMalformedToken
	}
}
