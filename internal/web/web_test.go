package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	authservice "github.com/yardlineiq/picksserver/auth/service"
	"github.com/yardlineiq/picksserver/internal/config"
	"github.com/yardlineiq/picksserver/internal/domain"
	"github.com/yardlineiq/picksserver/internal/payment"
	"github.com/yardlineiq/picksserver/internal/service"
	"github.com/yardlineiq/picksserver/internal/storage/mem"
	"github.com/yardlineiq/picksserver/internal/subscription"
)

type fakeGate struct {
	status string
}

func (g *fakeGate) CreateIntent(context.Context, int64, domain.PackageType, payment.Customer) (payment.Intent, error) {
	return payment.Intent{ID: "pi_test", ClientSecret: "cs_test"}, nil
}

func (g *fakeGate) Confirm(context.Context, string) (payment.Verification, error) {
	v := payment.Verification{Amount: 4900, Currency: "usd", Status: g.status}
	if g.status != "succeeded" {
		return v, fmt.Errorf("%w: status %q", domain.ErrPaymentNotCompleted, g.status)
	}
	return v, nil
}

func newTestServer(t *testing.T) (*Server, *fakeGate) {
	t.Helper()
	st := mem.New()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	seasonEnd := time.Now().Add(90 * 24 * time.Hour)
	ledger := service.New(st, st, st, subscription.NewPolicy(seasonEnd), "61%", log)
	auth, err := authservice.New(config.Auth{
		AdminPassword: "hunter2",
		Token:         "test-signing-secret",
		Expiration:    "1h",
	})
	require.NoError(t, err)
	gate := &fakeGate{status: "succeeded"}
	return New(ledger, gate, auth, config.Server{Host: "localhost", Port: 3000}, log), gate
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiberContentType, "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get(fiberContentType) == "application/json" {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

const fiberContentType = "Content-Type"

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	resp, body := doJSON(t, s, http.MethodPost, "/api/admin/signin", "", map[string]any{
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignup(t *testing.T) {
	s, _ := newTestServer(t)

	resp, body := doJSON(t, s, http.MethodPost, "/api/signup", "", map[string]any{
		"email": "Fan@Test.com",
		"name":  "Fan",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	require.Nil(t, body["alreadyRegistered"])

	resp, body = doJSON(t, s, http.MethodPost, "/api/signup", "", map[string]any{
		"email": "fan@test.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["alreadyRegistered"])

	resp, _ = doJSON(t, s, http.MethodPost, "/api/signup", "", map[string]any{
		"email": "nope",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{
		"/api/admin/stats",
		"/api/admin/subscribers",
		"/api/admin/export",
		"/api/admin/picks",
	} {
		resp, _ := doJSON(t, s, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp, _ := doJSON(t, s, http.MethodPost, "/api/admin/signin", "", map[string]any{
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPickLifecycle(t *testing.T) {
	s, _ := newTestServer(t)
	token := adminToken(t, s)

	resp, created := doJSON(t, s, http.MethodPost, "/api/admin/picks", token, map[string]any{
		"week":       5,
		"game":       "Chiefs @ Bills",
		"pick":       "Bills -2.5",
		"confidence": "High",
		"pickType":   "premium",
		"gameTime":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "pending", created["result"])
	id := int64(created["id"].(float64))

	// Invalid pick payloads are rejected.
	resp, _ = doJSON(t, s, http.MethodPost, "/api/admin/picks", token, map[string]any{
		"week": 5, "game": "x", "pick": "y", "confidence": "Certain", "pickType": "free",
		"gameTime": time.Now().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, resolved := doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/admin/picks/%d", id), token, map[string]any{
		"result": "win",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "win", resolved["result"])

	resp, _ = doJSON(t, s, http.MethodPut, fmt.Sprintf("/api/admin/picks/%d", id), token, map[string]any{
		"result": "loss",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, s, http.MethodPut, "/api/admin/picks/404", token, map[string]any{
		"result": "win",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, stats := doJSON(t, s, http.MethodGet, "/api/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), stats["totalPicks"])
	require.Equal(t, "100.0%", stats["winRate"])
}

func TestPicksGating(t *testing.T) {
	s, _ := newTestServer(t)
	token := adminToken(t, s)

	for _, pickType := range []string{"free", "premium"} {
		resp, _ := doJSON(t, s, http.MethodPost, "/api/admin/picks", token, map[string]any{
			"week":       5,
			"game":       "Chiefs @ Bills",
			"pick":       "Bills -2.5",
			"confidence": "High",
			"pickType":   pickType,
			"gameTime":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// Anonymous callers only see free picks, even asking for premium.
	resp, body := doJSON(t, s, http.MethodGet, "/api/picks?type=premium", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	picks := body["picks"].([]any)
	require.Len(t, picks, 1)
	require.Equal(t, "free", picks[0].(map[string]any)["pickType"])

	resp, _ = doJSON(t, s, http.MethodGet, "/api/picks?type=vip", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPaymentFlow(t *testing.T) {
	s, gate := newTestServer(t)
	admin := adminToken(t, s)

	resp, _ := doJSON(t, s, http.MethodPost, "/api/admin/picks", admin, map[string]any{
		"week":       5,
		"game":       "Chiefs @ Bills",
		"pick":       "Bills -2.5",
		"confidence": "High",
		"pickType":   "premium",
		"gameTime":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	customer := map[string]any{"name": "Bob", "email": "bob@test.com"}

	resp, intent := doJSON(t, s, http.MethodPost, "/api/payments/intent", "", map[string]any{
		"amount":       49.00,
		"packageType":  "monthly",
		"customerInfo": customer,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pi_test", intent["paymentIntentId"])
	require.Equal(t, "cs_test", intent["clientSecret"])

	resp, _ = doJSON(t, s, http.MethodPost, "/api/payments/intent", "", map[string]any{
		"amount":       49.00,
		"packageType":  "free",
		"customerInfo": customer,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A payment that has not succeeded grants nothing.
	gate.status = "requires_payment_method"
	resp, _ = doJSON(t, s, http.MethodPost, "/api/payments/confirm", "", map[string]any{
		"paymentIntentId": "pi_test",
		"packageType":     "monthly",
		"customerInfo":    customer,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	gate.status = "succeeded"
	resp, confirmed := doJSON(t, s, http.MethodPost, "/api/payments/confirm", "", map[string]any{
		"paymentIntentId": "pi_test",
		"packageType":     "monthly",
		"customerInfo":    customer,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, confirmed["success"])
	access, _ := confirmed["accessToken"].(string)
	require.NotEmpty(t, access)

	// The access token unlocks premium picks.
	resp, body := doJSON(t, s, http.MethodGet, "/api/picks?type=premium", access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	picks := body["picks"].([]any)
	require.Len(t, picks, 1)
	require.Equal(t, "premium", picks[0].(map[string]any)["pickType"])
}

func TestSubscribersExport(t *testing.T) {
	s, _ := newTestServer(t)
	token := adminToken(t, s)

	resp, _ := doJSON(t, s, http.MethodPost, "/api/signup", "", map[string]any{
		"email": "fan@test.com",
		"name":  "Fan",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, s, http.MethodGet, "/api/admin/subscribers", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	subs := body["subscribers"].([]any)
	require.Len(t, subs, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rawResp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rawResp.StatusCode)
	require.Equal(t, "text/csv", rawResp.Header.Get(fiberContentType))
	raw, err := io.ReadAll(rawResp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "fan@test.com")
}
