package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/mock"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resetFixture struct {
	svc      PasswordResetService
	users    *mock.MockUserRepository
	hasher   *mock.MockPasswordHasher
	codes    *mock.MockCodeGenerator
	notifier *mock.MockNotifier
	clock    *utils.FixedClock
}

func newResetFixture(t *testing.T) resetFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := resetFixture{
		users:    mock.NewMockUserRepository(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
		codes:    mock.NewMockCodeGenerator(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
		clock:    utils.NewFixedClock(testNow),
	}
	f.svc = NewPasswordResetService(f.users, f.hasher, f.codes, f.notifier, f.clock, testAppConfig, logger.Nop())
	return f
}

func pendingUser(code string, expiresAt time.Time) models.User {
	return models.User{
		UserID:             7,
		Username:           "alice",
		Email:              "a@x.com",
		PasswordHash:       "old-hash",
		ResetCode:          &code,
		ResetCodeExpiresAt: &expiresAt,
	}
}

// ── RequestPasswordReset ─────────────────────────────────────────────────────

func TestPasswordReset_Request_KnownEmail(t *testing.T) {
	f := newResetFixture(t)
	expiresAt := testNow.Add(time.Hour)

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").
			Return(models.User{UserID: 7, Username: "alice", Email: "a@x.com"}, nil),
		f.codes.EXPECT().Generate().Return("004521", nil),
		f.users.EXPECT().SetResetCode(gomock.Any(), int64(7), "004521", expiresAt).Return(nil),
		f.notifier.EXPECT().SendResetCode(gomock.Any(), models.ResetNotification{
			Email:     "a@x.com",
			Username:  "alice",
			Code:      "004521",
			ExpiresAt: expiresAt,
			ValidFor:  time.Hour,
		}).Return(nil),
	)

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)
}

func TestPasswordReset_Request_UnknownEmailLooksTheSame(t *testing.T) {
	f := newResetFixture(t)

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrUserNotFound),
		f.codes.EXPECT().Generate().Return("918273", nil),
		f.users.EXPECT().SetResetCode(gomock.Any(), int64(0), "918273", testNow.Add(time.Hour)).
			Return(store.ErrUserNotFound),
	)
	f.notifier.EXPECT().SendResetCode(gomock.Any(), gomock.Any()).Times(0)

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ghost@x.com"})
	require.NoError(t, err)
}

func TestPasswordReset_Request_UnknownEmailIgnoresStoreFailure(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)
	f.codes.EXPECT().Generate().Return("918273", nil)
	f.users.EXPECT().SetResetCode(gomock.Any(), int64(0), "918273", gomock.Any()).Return(errDB)

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "ghost@x.com"})
	require.NoError(t, err)
}

func TestPasswordReset_Request_NotifierFailureKeepsCode(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{UserID: 7, Email: "a@x.com"}, nil)
	f.codes.EXPECT().Generate().Return("123456", nil)
	f.users.EXPECT().SetResetCode(gomock.Any(), int64(7), "123456", gomock.Any()).Return(nil)
	f.notifier.EXPECT().SendResetCode(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})
	require.NoError(t, err)
}

func TestPasswordReset_Request_StoreFailureSkipsNotifier(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{UserID: 7}, nil)
	f.codes.EXPECT().Generate().Return("123456", nil)
	f.users.EXPECT().SetResetCode(gomock.Any(), int64(7), "123456", gomock.Any()).Return(errDB)

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, errDB)
}

func TestPasswordReset_Request_InvalidEmail(t *testing.T) {
	f := newResetFixture(t)

	err := f.svc.RequestPasswordReset(context.Background(), models.ForgotPasswordRequest{Email: "not an email"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── VerifyResetCode ──────────────────────────────────────────────────────────

func TestPasswordReset_Verify(t *testing.T) {
	expiresAt := testNow.Add(time.Hour)

	tests := []struct {
		name      string
		code      string
		found     models.User
		findErr   error
		advance   time.Duration
		wantClear bool
		wantErr   error
	}{
		{name: "valid", code: "004521", found: pendingUser("004521", expiresAt), advance: 30 * time.Minute},
		{name: "surrounding whitespace", code: " 004521\t", found: pendingUser("004521", expiresAt)},
		{name: "wrong code", code: "004522", found: pendingUser("004521", expiresAt), wantErr: ErrInvalidOrExpiredResetCode},
		{name: "no pending reset", code: "004521", found: models.User{UserID: 7}, wantErr: ErrInvalidOrExpiredResetCode},
		{name: "unknown email", code: "004521", findErr: store.ErrUserNotFound, wantErr: ErrInvalidOrExpiredResetCode},
		{
			name:      "expired at the boundary",
			code:      "004521",
			found:     pendingUser("004521", expiresAt),
			advance:   time.Hour,
			wantClear: true,
			wantErr:   ErrInvalidOrExpiredResetCode,
		},
		{
			name:      "expired long ago",
			code:      "004521",
			found:     pendingUser("004521", expiresAt),
			advance:   3 * time.Hour,
			wantClear: true,
			wantErr:   ErrInvalidOrExpiredResetCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResetFixture(t)
			f.clock.Advance(tt.advance)

			f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(tt.found, tt.findErr)
			if tt.wantClear {
				f.users.EXPECT().ClearResetCode(gomock.Any(), int64(7), "004521").Return(nil)
			}

			err := f.svc.VerifyResetCode(context.Background(), models.VerifyResetCodeRequest{Email: "a@x.com", Code: tt.code})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPasswordReset_Verify_MalformedCodeLooksLikeWrongCode(t *testing.T) {
	f := newResetFixture(t)

	err := f.svc.VerifyResetCode(context.Background(), models.VerifyResetCodeRequest{Email: "a@x.com", Code: "12ab"})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredResetCode)
}

func TestPasswordReset_Verify_StoreError(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(models.User{}, errDB)

	err := f.svc.VerifyResetCode(context.Background(), models.VerifyResetCodeRequest{Email: "a@x.com", Code: "123456"})
	assert.ErrorIs(t, err, errDB)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestPasswordReset_Reset_Success(t *testing.T) {
	f := newResetFixture(t)
	f.clock.Advance(10 * time.Minute)

	gomock.InOrder(
		f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(pendingUser("004521", testNow.Add(time.Hour)), nil),
		f.hasher.EXPECT().Hash("n3w-pass").Return("new-hash", nil),
		f.users.EXPECT().CompleteReset(gomock.Any(), int64(7), "004521", "new-hash", testNow.Add(10*time.Minute)).Return(nil),
	)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		Email:       "a@x.com",
		Code:        "004521 ",
		NewPassword: "n3w-pass",
	})
	require.NoError(t, err)
}

func TestPasswordReset_Reset_SupersededCode(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(pendingUser("004521", testNow.Add(time.Hour)), nil)
	f.hasher.EXPECT().Hash("n3w-pass").Return("new-hash", nil)
	f.users.EXPECT().CompleteReset(gomock.Any(), int64(7), "004521", "new-hash", testNow).Return(store.ErrResetCodeMismatch)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		Email:       "a@x.com",
		Code:        "004521",
		NewPassword: "n3w-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredResetCode)
}

func TestPasswordReset_Reset_WrongCodeNeverHashes(t *testing.T) {
	f := newResetFixture(t)

	f.users.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").Return(pendingUser("004521", testNow.Add(time.Hour)), nil)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
		Email:       "a@x.com",
		Code:        "999999",
		NewPassword: "n3w-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidOrExpiredResetCode)
}

func TestPasswordReset_Reset_EmptyPassword(t *testing.T) {
	f := newResetFixture(t)

	err := f.svc.ResetPassword(context.Background(), models.ResetPasswordRequest{Email: "a@x.com", Code: "004521"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
