package service

import (
	"context"
	"testing"

	"insygth/internal/config"
	"insygth/internal/dto"
	"insygth/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *stubUserRepo, *stubStaffRepo, *recordingNotifier) {
	t.Helper()
	users := newStubUserRepo()
	requests := newStubStaffRepo()
	notifier := &recordingNotifier{}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 24}
	return NewAuthService(users, requests, notifier, cfg), users, requests, notifier
}

func TestOwnerSignupIsImmediatelyActive(t *testing.T) {
	svc, _, requests, _ := newAuthFixture(t)

	biz := "Hisaab Foods"
	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name: "Owner", Email: "owner@example.com", Password: "password123",
		Role: "owner", BusinessName: &biz,
	})
	require.NoError(t, err)

	assert.True(t, resp.User.Active)
	assert.False(t, resp.PendingApproval)
	assert.Empty(t, requests.requests)

	signin, err := svc.Signin(context.Background(), dto.SigninRequest{
		Email: "owner@example.com", Password: "password123",
	}, "owner")
	require.NoError(t, err)
	assert.NotEmpty(t, signin.AccessToken)
	assert.NotEmpty(t, signin.RefreshToken)
	assert.Equal(t, "Bearer", signin.TokenType)
}

func TestStaffSignupIsPendingUntilApproved(t *testing.T) {
	svc, _, requests, notifier := newAuthFixture(t)

	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name: "Staff", Email: "staff@example.com", Password: "password123", Role: "staff",
	})
	require.NoError(t, err)

	assert.False(t, resp.User.Active)
	assert.True(t, resp.PendingApproval)
	require.Len(t, requests.requests, 1)
	for _, sr := range requests.requests {
		assert.Equal(t, model.StaffPending, sr.Status)
	}
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "staff_signup_request", notifier.events[0].Type)

	// Pending staff cannot sign in yet.
	_, err = svc.Signin(context.Background(), dto.SigninRequest{
		Email: "staff@example.com", Password: "password123",
	}, "staff")
	assert.ErrorIs(t, err, ErrAccountPending)
}

func TestSigninRejectsWrongRoleAndBadCredentials(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name: "Owner", Email: "owner@example.com", Password: "password123", Role: "owner",
	})
	require.NoError(t, err)

	_, err = svc.Signin(context.Background(), dto.SigninRequest{
		Email: "owner@example.com", Password: "password123",
	}, "staff")
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = svc.Signin(context.Background(), dto.SigninRequest{
		Email: "owner@example.com", Password: "wrong",
	}, "owner")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Signin(context.Background(), dto.SigninRequest{
		Email: "nobody@example.com", Password: "password123",
	}, "owner")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := dto.SignupRequest{Name: "Owner", Email: "owner@example.com", Password: "password123", Role: "owner"}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRefreshIssuesNewTokenPair(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name: "Owner", Email: "owner@example.com", Password: "password123", Role: "owner",
	})
	require.NoError(t, err)

	signin, err := svc.Signin(context.Background(), dto.SigninRequest{
		Email: "owner@example.com", Password: "password123",
	}, "owner")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: signin.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, signin.User.ID, refreshed.User.ID)

	// An access token is not a refresh token.
	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: signin.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
