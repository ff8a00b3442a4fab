package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
)

func TestAuth_PopulatesContext(t *testing.T) {
	var gotID int64
	var gotRole domain.Role
	var okID, okRole bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, okID = GetUserID(r.Context())
		gotRole, okRole = GetUserRole(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(HeaderUserID, "42")
	req.Header.Set(HeaderUserRole, "admin")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, okID)
	require.True(t, okRole)
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, domain.RoleAdmin, gotRole)
}

func TestAuth_RejectsMissingOrBadUserID(t *testing.T) {
	tests := []struct {
		name   string
		userID string
	}{
		{name: "missing header", userID: ""},
		{name: "not a number", userID: "abc"},
		{name: "zero", userID: "0"},
		{name: "negative", userID: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestAuth_UnknownRoleDefaultsToCustomer(t *testing.T) {
	var gotRole domain.Role

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = GetUserRole(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(HeaderUserID, "7")
	req.Header.Set(HeaderUserRole, "superuser")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, domain.RoleCustomer, gotRole)
}
