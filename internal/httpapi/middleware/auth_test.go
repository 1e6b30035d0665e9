package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin_AllowsAdminKey_BlocksPublicKey(t *testing.T) {
	keys := Keys{
		Public: []string{"pub_key"},
		Admin:  []string{"adm_key"},
	}

	// Admin key -> 200
	reqAdm := httptest.NewRequest(http.MethodPost, "/api/check/batch", nil)
	reqAdm.Header.Set("X-API-Key", "adm_key")
	recAdm := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recAdm, reqAdm)
	if recAdm.Code != http.StatusOK {
		t.Fatalf("admin key should pass; got %d", recAdm.Code)
	}

	// Public key -> 403
	reqPub := httptest.NewRequest(http.MethodPost, "/api/check/batch", nil)
	reqPub.Header.Set("X-API-Key", "pub_key")
	recPub := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recPub, reqPub)
	if recPub.Code != http.StatusForbidden {
		t.Fatalf("public key should be forbidden; got %d", recPub.Code)
	}

	// Missing key -> 403
	reqNone := httptest.NewRequest(http.MethodPost, "/api/check/batch", nil)
	recNone := httptest.NewRecorder()
	RequireAdmin(keys)(okHandler()).ServeHTTP(recNone, reqNone)
	if recNone.Code != http.StatusForbidden {
		t.Fatalf("missing key should be 403; got %d", recNone.Code)
	}
}

func TestRequireAny_PublicOrAdmin(t *testing.T) {
	keys := Keys{
		Public: []string{"pub_key"},
		Admin:  []string{"adm_key"},
	}

	for _, key := range []string{"pub_key", "adm_key"} {
		req := httptest.NewRequest(http.MethodPost, "/api/check", nil)
		req.Header.Set("X-API-Key", key)
		rec := httptest.NewRecorder()
		RequireAny(keys)(okHandler()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("key %q should pass; got %d", key, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/check", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	RequireAny(keys)(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key should be 401; got %d", rec.Code)
	}
}

func TestRequireAny_BearerHeader(t *testing.T) {
	keys := Keys{Public: []string{"pub_key"}}
	req := httptest.NewRequest(http.MethodPost, "/api/check", nil)
	req.Header.Set("Authorization", "Bearer pub_key")
	rec := httptest.NewRecorder()
	RequireAny(keys)(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer token should pass; got %d", rec.Code)
	}
}

func TestRequireAny_NoKeysConfiguredAllowsAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/check", nil)
	rec := httptest.NewRecorder()
	RequireAny(Keys{})(okHandler()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("no configured keys should allow all; got %d", rec.Code)
	}
}
