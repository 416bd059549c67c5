package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kredinou/pkg/token"

	"github.com/labstack/echo/v4"
)

func authEcho(mw echo.MiddlewareFunc, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET("/me", handler, mw)
	return e
}

func getWithAuth(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUserAuth_ValidToken(t *testing.T) {
	iss := token.NewIssuer("unit-secret", token.AudienceUser, time.Hour)
	raw, _, err := iss.Issue("user-1", "marie@example.ht", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotID string
	e := authEcho(UserAuth(iss), func(c echo.Context) error {
		gotID = UserID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := getWithAuth(e, "Bearer "+raw)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if gotID != "user-1" {
		t.Fatalf("caller id on context: %q", gotID)
	}
}

func TestUserAuth_Rejections(t *testing.T) {
	iss := token.NewIssuer("unit-secret", token.AudienceUser, time.Hour)
	e := authEcho(UserAuth(iss), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// no header
	if rec := getWithAuth(e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header => want 401, got %d", rec.Code)
	}
	// wrong scheme
	if rec := getWithAuth(e, "Basic abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme => want 401, got %d", rec.Code)
	}
	// garbage token
	if rec := getWithAuth(e, "Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token => want 401, got %d", rec.Code)
	}

	// token signed with a different secret
	other := token.NewIssuer("other-secret", token.AudienceUser, time.Hour)
	raw, _, err := other.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if rec := getWithAuth(e, "Bearer "+raw); rec.Code != http.StatusUnauthorized {
		t.Fatalf("foreign secret => want 401, got %d", rec.Code)
	}

	// expired token
	stale := token.NewIssuer("unit-secret", token.AudienceUser, -time.Minute)
	raw, _, err = stale.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if rec := getWithAuth(e, "Bearer "+raw); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token => want 401, got %d", rec.Code)
	}
}

func TestAdminAuth_SetsIDAndRole(t *testing.T) {
	iss := token.NewIssuer("admin-secret", token.AudienceAdmin, time.Hour)
	raw, _, err := iss.Issue("adm-1", "admin@kredinou.ht", "superadmin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotID, gotRole string
	e := authEcho(AdminAuth(iss), func(c echo.Context) error {
		gotID = AdminID(c)
		gotRole = AdminRole(c)
		return c.NoContent(http.StatusOK)
	})

	rec := getWithAuth(e, "Bearer "+raw)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if gotID != "adm-1" || gotRole != "superadmin" {
		t.Fatalf("context: id=%q role=%q", gotID, gotRole)
	}
}

func TestAdminAuth_RejectsUserToken(t *testing.T) {
	// same secret, different audience: a user token must not open admin routes
	userIss := token.NewIssuer("shared-secret", token.AudienceUser, time.Hour)
	adminIss := token.NewIssuer("shared-secret", token.AudienceAdmin, time.Hour)

	raw, _, err := userIss.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	e := authEcho(AdminAuth(adminIss), func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if rec := getWithAuth(e, "Bearer "+raw); rec.Code != http.StatusUnauthorized {
		t.Fatalf("user token on admin route => want 401, got %d", rec.Code)
	}
}
