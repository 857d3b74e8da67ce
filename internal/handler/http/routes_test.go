package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhd-assistant/api/internal/service"
	"github.com/adhd-assistant/api/models"
)

// newTestServer builds the full router with a canned AuthService and
// serves it over httptest so route wiring is exercised end to end.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	auth := &mockAuthService{
		registerFn: func(_ context.Context, email, _ string, username *string) (models.User, error) {
			return models.User{ID: uuid.New(), Email: email, Username: username, IsActive: true}, nil
		},
		loginFn: func(_ context.Context, _, _ string) (models.TokenPair, error) {
			return stubPair(), nil
		},
		refreshFn: func(_ context.Context, _ string) (models.TokenPair, error) {
			return stubPair(), nil
		},
		currentUserFn: func(_ context.Context, accessToken string) (models.User, error) {
			if accessToken != "valid.access.token" {
				return models.User{}, service.ErrInvalidToken
			}
			return models.User{ID: uuid.New(), Email: "dana@example.com", IsActive: true}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	return server
}

func TestRoutes_HealthProbes(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	for _, path := range []string{"/", "/health"} {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), "path %q", path)
	}
}

func TestRoutes_LoginReturnsTokenTriple(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	var tokens models.TokenResponse
	resp, err := client.R().
		SetBody(models.LoginRequest{Email: "dana@example.com", Password: "Sup3r$ecret"}).
		SetResult(&tokens).
		Post("/api/auth/login")
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "signed.access.token", tokens.AccessToken)
	assert.Equal(t, "signed.refresh.token", tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)
}

func TestRoutes_RegisterCreated(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	resp, err := client.R().
		SetBody(models.RegisterRequest{Email: "dana@example.com", Password: "Sup3r$ecret"}).
		Post("/api/auth/register")
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode())
}

func TestRoutes_MeRequiresBearer(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	resp, err := client.R().Get("/api/auth/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, "Bearer", resp.Header().Get("WWW-Authenticate"))

	resp, err = client.R().
		SetAuthToken("valid.access.token").
		Get("/api/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestRoutes_WrongMethodHiddenAsNotFound(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	resp, err := client.R().Get("/api/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestRoutes_TraceIDPropagated(t *testing.T) {
	server := newTestServer(t)
	client := resty.New().SetBaseURL(server.URL)

	resp, err := client.R().
		SetHeader("X-Trace-ID", "trace-42").
		Get("/health")
	require.NoError(t, err)
	assert.Equal(t, "trace-42", resp.Header().Get("X-Trace-ID"))

	resp, err = client.R().Get("/health")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))
}
