package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chefcheck/chefcheck/internal/models"
	"github.com/chefcheck/chefcheck/internal/utils"
)

const testSecret = "middleware-test-secret"

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	user := &models.User{ID: "u1", Email: "u@example.com", Name: "U", Role: role}
	access, _, err := utils.GenerateTokens(user, testSecret)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return access
}

func protectedHandler(auth *Auth, adminOnly bool) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if adminOnly {
		h = auth.RequireRole(models.RoleAdmin)(h)
	}
	return auth.Authenticate(h)
}

func TestAuthenticate_NoToken(t *testing.T) {
	auth := NewAuth(testSecret)
	req := httptest.NewRequest("POST", "/api/suppliers", nil)
	rec := httptest.NewRecorder()

	protectedHandler(auth, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	auth := NewAuth(testSecret)
	req := httptest.NewRequest("GET", "/api/suppliers", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	protectedHandler(auth, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for malformed header, got %d", rec.Code)
	}
}

func TestRequireRole_StaffBlockedFromAdminWrite(t *testing.T) {
	auth := NewAuth(testSecret)
	req := httptest.NewRequest("POST", "/api/suppliers", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStaff))
	rec := httptest.NewRecorder()

	protectedHandler(auth, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for staff on admin route, got %d", rec.Code)
	}
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	auth := NewAuth(testSecret)
	req := httptest.NewRequest("POST", "/api/suppliers", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	rec := httptest.NewRecorder()

	protectedHandler(auth, true).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestStaffAllowedOnAuthenticatedRoute(t *testing.T) {
	auth := NewAuth(testSecret)
	req := httptest.NewRequest("POST", "/api/temperature-logs", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStaff))
	rec := httptest.NewRecorder()

	protectedHandler(auth, false).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for staff on authenticated route, got %d", rec.Code)
	}
}

func TestClaimsHelpers(t *testing.T) {
	auth := NewAuth(testSecret)
	var gotID, gotName string

	h := auth.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserIDFrom(r.Context())
		gotName = UserNameFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleStaff))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "u1" {
		t.Errorf("expected user id u1 from context, got %q", gotID)
	}
	if gotName != "U" {
		t.Errorf("expected user name U from context, got %q", gotName)
	}
}
