package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValidator accepts exactly one token and returns a fixed user id.
type fakeValidator struct {
	token  string
	userID uuid.UUID
}

type fakeClaims struct{ userID uuid.UUID }

func (c *fakeClaims) GetUserID() uuid.UUID { return c.userID }

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{userID: v.userID}, nil
}

func echoUserID(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		require.NoError(t, err)
		fmt.Fprint(w, userID.String())
	})
}

func TestAuthMissingHeader(t *testing.T) {
	handler := Auth(&fakeValidator{})(echoUserID(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthBadHeaderFormat(t *testing.T) {
	handler := Auth(&fakeValidator{token: "good"})(echoUserID(t))

	for _, header := range []string{"good", "Basic good", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	handler := Auth(&fakeValidator{token: "good"})(echoUserID(t))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthValidToken(t *testing.T) {
	userID := uuid.New()
	handler := Auth(&fakeValidator{token: "good", userID: userID})(echoUserID(t))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthCaseInsensitiveBearer(t *testing.T) {
	handler := Auth(&fakeValidator{token: "good"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	adminID := uuid.New()
	lookup := func(_ context.Context, userID uuid.UUID) (string, error) {
		if userID == adminID {
			return "admin", nil
		}
		return "user", nil
	}

	handler := RequireRole("admin", lookup)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Admin passes
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, WithUserID(httptest.NewRequest("GET", "/", nil), adminID))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Plain user is forbidden
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, WithUserID(httptest.NewRequest("GET", "/", nil), uuid.New()))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No user id in context at all
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleLookupError(t *testing.T) {
	lookup := func(_ context.Context, _ uuid.UUID) (string, error) {
		return "", fmt.Errorf("db down")
	}

	handler := RequireRole("admin", lookup)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, WithUserID(httptest.NewRequest("GET", "/", nil), uuid.New()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetUserIDMissing(t *testing.T) {
	_, err := GetUserID(httptest.NewRequest("GET", "/", nil))
	assert.Error(t, err)
}
