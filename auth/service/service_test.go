package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yardlineiq/picksserver/internal/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := New(config.Auth{
		AdminPassword: "hunter2",
		Token:         "test-signing-secret",
		Expiration:    "1h",
	})
	require.NoError(t, err)
	return s
}

func TestService_SignInAdmin(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SignInAdmin("hunter2"))
	require.ErrorIs(t, s.SignInAdmin("hunter3"), ErrNotAuthorized)
	require.ErrorIs(t, s.SignInAdmin(""), ErrNotAuthorized)
}

func TestService_adminTokenRoundtrip(t *testing.T) {
	s := newTestService(t)

	cookie, err := s.GenerateAdminCookie("localhost")
	require.NoError(t, err)
	require.NoError(t, s.VerifyAdmin(cookie.Value))

	require.ErrorIs(t, s.VerifyAdmin(""), ErrNotAuthorized)
	require.ErrorIs(t, s.VerifyAdmin("not-a-token"), ErrNotAuthorized)
}

func TestService_subscriberTokenRoundtrip(t *testing.T) {
	s := newTestService(t)

	token, err := s.GenerateSubscriberToken("bob@test.com", time.Now().Add(time.Hour))
	require.NoError(t, err)

	email, err := s.SubscriberEmail(token)
	require.NoError(t, err)
	require.Equal(t, "bob@test.com", email)

	// A subscriber token must not open admin routes and vice versa.
	require.ErrorIs(t, s.VerifyAdmin(token), ErrForbidden)
	cookie, err := s.GenerateAdminCookie("localhost")
	require.NoError(t, err)
	_, err = s.SubscriberEmail(cookie.Value)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestService_expiredTokenRejected(t *testing.T) {
	s := newTestService(t)

	token, err := s.GenerateSubscriberToken("bob@test.com", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = s.SubscriberEmail(token)
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestNew_requiresPassword(t *testing.T) {
	_, err := New(config.Auth{Expiration: "1h"})
	require.Error(t, err)
}

func TestNew_generatesProcessLifetimeSecret(t *testing.T) {
	s, err := New(config.Auth{AdminPassword: "hunter2", Expiration: "1h"})
	require.NoError(t, err)

	cookie, err := s.GenerateAdminCookie("localhost")
	require.NoError(t, err)
	require.NoError(t, s.VerifyAdmin(cookie.Value))
}
