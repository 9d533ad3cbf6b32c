package services_test

import (
	"strings"
	"testing"
	"time"

	"babygrow_backend/internal/email"
	"babygrow_backend/internal/repositories"
	"babygrow_backend/internal/services"
	"babygrow_backend/internal/services/dto"
	"babygrow_backend/internal/token"
	"babygrow_backend/pkg/apperrors"
	"babygrow_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCodecKey   = "0123456789abcdef0123456789abcdef"
	testSigningKey = "test-signing-key"
	testBaseURL    = "http://127.0.0.1:8000"
)

func newAuthService(t *testing.T, mock *email.MockProvider) services.AuthService {
	t.Helper()
	return newAuthServiceWithClock(t, mock, time.Now)
}

func newAuthServiceWithClock(t *testing.T, mock *email.MockProvider, now func() time.Time) services.AuthService {
	t.Helper()

	codec, err := token.NewCodec([]byte(testCodecKey))
	require.NoError(t, err)

	signer := token.NewSigner([]byte(testSigningKey), 360*time.Second).WithClock(now)

	return services.NewAuthService(repositories.NewUserRepository(), codec, signer, mock, testBaseURL)
}

func registerRequest(username, theEmail string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        username,
		Email:           theEmail,
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func TestRegisterCreatesInactiveUser(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	mock := email.NewMockProvider()
	svc := newAuthService(t, mock)

	user, err := svc.Register(db, registerRequest("alice", "a@x.com"))
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	stored, err := repositories.NewUserRepository().FindByUsername(db, "alice")
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	// Письмо активации ушло и содержит ссылку с токеном
	sent := mock.LastSent()
	require.NotNil(t, sent)
	assert.Contains(t, sent.Body, testBaseURL+"/api/v1/auth/activate/")
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	t.Run("weak password", func(t *testing.T) {
		req := registerRequest("bob", "b@x.com")
		req.Password = "12345"
		req.PasswordConfirm = "12345"
		_, err := svc.Register(db, req)
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	})

	t.Run("confirm mismatch", func(t *testing.T) {
		req := registerRequest("bob", "b@x.com")
		req.PasswordConfirm = "secret2"
		_, err := svc.Register(db, req)
		assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	})

	t.Run("duplicate username", func(t *testing.T) {
		helpers.CreateUser(t, db, "taken", "taken@x.com", "secret1", true)
		_, err := svc.Register(db, registerRequest("taken", "other@x.com"))
		assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(db, registerRequest("fresh", "taken@x.com"))
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestActivateWithinWindow(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", false)

	signedToken, err := svc.ActivationToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Activate(db, signedToken))

	stored, err := repositories.NewUserRepository().FindByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	// Повторная активация не ошибка
	assert.NoError(t, svc.Activate(db, signedToken))
}

func TestActivateExpiredLink(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	mock := email.NewMockProvider()

	issuedAt := time.Now()
	issuer := newAuthServiceWithClock(t, mock, func() time.Time { return issuedAt })

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", false)
	signedToken, err := issuer.ActivationToken(user.ID)
	require.NoError(t, err)

	// За секунду до границы окна токен еще действует
	almostLate := newAuthServiceWithClock(t, mock, func() time.Time {
		return issuedAt.Add(359 * time.Second)
	})
	assert.NoError(t, almostLate.Activate(db, signedToken))

	tooLate := newAuthServiceWithClock(t, mock, func() time.Time {
		return issuedAt.Add(361 * time.Second)
	})
	err = tooLate.Activate(db, signedToken)
	assert.ErrorIs(t, err, apperrors.ErrActivationTokenExpired)
}

func TestActivateInvalidToken(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	for _, tok := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 200)} {
		err := svc.Activate(db, tok)
		assert.ErrorIs(t, err, apperrors.ErrActivationTokenInvalid, "token %q", tok)
	}
}

func TestActivateUserGone(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	user := helpers.CreateUser(t, db, "gone", "g@x.com", "secret1", false)
	signedToken, err := svc.ActivationToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, repositories.NewUserRepository().Delete(db, user.ID))

	err = svc.Activate(db, signedToken)
	assert.ErrorIs(t, err, apperrors.ErrActivationUserNotFound)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	helpers.CreateUser(t, db, "active", "active@x.com", "secret1", true)
	helpers.CreateUser(t, db, "inactive", "inactive@x.com", "secret1", false)

	t.Run("by username", func(t *testing.T) {
		resp, err := svc.Login(db, &dto.LoginRequest{Login: "active", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "active", resp.User.Username)
	})

	t.Run("by email", func(t *testing.T) {
		resp, err := svc.Login(db, &dto.LoginRequest{Login: "active@x.com", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(db, &dto.LoginRequest{Login: "active", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(db, &dto.LoginRequest{Login: "nobody", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := svc.Login(db, &dto.LoginRequest{Login: "inactive", Password: "secret1"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotActive)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	db := helpers.OpenTestDB(t)
	svc := newAuthService(t, email.NewMockProvider())

	user := helpers.CreateUser(t, db, "alice", "a@x.com", "secret1", true)

	err := svc.ChangePassword(db, user.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "secret2",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(db, user.ID, &dto.ChangePasswordRequest{
		OldPassword: "secret1",
		NewPassword: "secret2",
	}))

	_, err = svc.Login(db, &dto.LoginRequest{Login: "alice", Password: "secret2"})
	assert.NoError(t, err)
}
