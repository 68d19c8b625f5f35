package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/pkg/utils"
)

func newAuthFixture(t *testing.T) (*fakeUserRepo, *fakeMailer, AuthService) {
	t.Helper()
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	return users, mailer, NewAuthService(users, mailer)
}

func signUp(t *testing.T, svc AuthService, email, password string) {
	t.Helper()
	require.NoError(t, svc.SignUp(context.Background(), request_models.SignUpRequest{
		FirstName: "Jan", LastName: "Nowak", Email: email, Password: password,
	}))
}

func TestSignUpHashesPasswordAndDefaultsRole(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")

	user := users.users["jan@example.com"]
	require.NotNil(t, user)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "hunter2hunter2"))
	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	_, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")

	err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		FirstName: "Other", Email: "jan@example.com", Password: "different-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "jan@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "USER", resp.Role)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "jan@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	// Unknown email is indistinguishable from a bad password.
	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@example.com", Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	users.users["jan@example.com"].IsActive = false
	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "jan@example.com", Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, utils.ErrAccountDisabled)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	_, mailer, svc := newAuthFixture(t)

	// Unknown email still succeeds and sends nothing.
	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, mailer.otps)
}

func TestPasswordResetFlow(t *testing.T) {
	users, mailer, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")

	require.NoError(t, svc.ForgotPassword(context.Background(), "jan@example.com"))
	require.Len(t, mailer.otps, 1)

	user := users.users["jan@example.com"]
	require.NotNil(t, user.ResetOtp)
	otp := *user.ResetOtp

	assert.ErrorIs(t, svc.VerifyOtp(context.Background(), "jan@example.com", "000000x"), utils.ErrOtpInvalid)
	require.NoError(t, svc.VerifyOtp(context.Background(), "jan@example.com", otp))

	require.NoError(t, svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Email: "jan@example.com", Otp: otp, NewPassword: "new-password-123",
	}))
	assert.NoError(t, utils.ComparePasswords(user.PasswordHash, "new-password-123"))
	assert.Nil(t, user.ResetOtp, "the OTP is consumed on reset")

	// The same code cannot be used twice.
	err := svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Email: "jan@example.com", Otp: otp, NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, utils.ErrOtpInvalid)
}

func TestExpiredOtpRejected(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")
	require.NoError(t, svc.ForgotPassword(context.Background(), "jan@example.com"))

	user := users.users["jan@example.com"]
	expired := time.Now().Add(-time.Minute).Unix()
	user.ResetOtpExpiresAt = &expired

	assert.ErrorIs(t, svc.VerifyOtp(context.Background(), "jan@example.com", *user.ResetOtp), utils.ErrOtpInvalid)
}

func TestListUsersStripsSecrets(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")
	require.NoError(t, svc.ForgotPassword(context.Background(), "jan@example.com"))

	listed, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].PasswordHash)
	assert.Nil(t, listed[0].ResetOtp)

	// The stored row keeps its secrets.
	assert.NotEmpty(t, users.users["jan@example.com"].PasswordHash)
}

func TestAddAndListAddresses(t *testing.T) {
	users, _, svc := newAuthFixture(t)
	signUp(t, svc, "jan@example.com", "hunter2hunter2")
	user := users.users["jan@example.com"]

	_, err := svc.AddAddress(context.Background(), "unknown-id", request_models.AddressRequest{Line1: "x", City: "y"})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	address, err := svc.AddAddress(context.Background(), user.ID.String(), request_models.AddressRequest{
		Line1: "ul. Dluga 5", City: "Krakow", Country: "PL",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, address.UserID)

	addresses, err := svc.ListAddresses(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Len(t, addresses, 1)
}
