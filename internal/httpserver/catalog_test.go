package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain"
)

func TestListCategories(t *testing.T) {
	deps := testDeps()
	deps.CatalogSvc.(*stubCatalogSvc).categories = []domain.Category{
		{ID: "cat-1", Name: "Notebooks", Slug: "notebooks"},
	}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "notebooks") {
		t.Fatalf("expected category in body, got %s", rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	deps := testDeps()
	deps.CatalogSvc.(*stubCatalogSvc).err = domain.ErrNotFound
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
