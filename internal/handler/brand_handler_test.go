package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kapu/brandlens-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBrandStore struct {
	brand          *domain.Brand
	err            error
	gotBrandID     string
	gotDescription string
}

func (f *fakeBrandStore) UpdateDescription(_ context.Context, brandID, description string) (*domain.Brand, error) {
	f.gotBrandID = brandID
	f.gotDescription = description
	return f.brand, f.err
}

type fakeReports struct {
	report      *domain.VisibilityReport
	err         error
	invalidated []string
}

func (f *fakeReports) GetReport(_ context.Context, _ string) (*domain.VisibilityReport, error) {
	return f.report, f.err
}

func (f *fakeReports) InvalidateReport(_ context.Context, brandID string) error {
	f.invalidated = append(f.invalidated, brandID)
	return nil
}

type fakeHealth struct {
	connected bool
}

func (f *fakeHealth) IsConnected(_ context.Context) bool {
	return f.connected
}

func newTestRouter(store BrandStore, reports ReportProvider) *gin.Engine {
	return newTestRouterWithHealth(store, reports, nil)
}

func newTestRouterWithHealth(store BrandStore, reports ReportProvider, health HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBrandHandler(store, reports, health, zap.NewNop())
	h.Register(r)
	return r
}

func TestUpdateDescriptionSuccess(t *testing.T) {
	store := &fakeBrandStore{brand: &domain.Brand{ID: "b1", Name: "Acme"}}
	reports := &fakeReports{}
	router := newTestRouter(store, reports)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/brands/b1/description",
		strings.NewReader(`{"description":"  a fresh description  "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UpdateDescriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.BrandID)

	assert.Equal(t, "b1", store.gotBrandID)
	assert.Equal(t, "a fresh description", store.gotDescription, "description is trimmed before storage")
	assert.Equal(t, []string{"b1"}, reports.invalidated, "cached report is dropped after the update")
}

func TestUpdateDescriptionEmptyBody(t *testing.T) {
	router := newTestRouter(&fakeBrandStore{}, &fakeReports{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/brands/b1/description",
		strings.NewReader(`{"description":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestUpdateDescriptionUnknownBrand(t *testing.T) {
	router := newTestRouter(&fakeBrandStore{brand: nil}, &fakeReports{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/brands/missing/description",
		strings.NewReader(`{"description":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Brand not found")
}

func TestUpdateDescriptionStoreFailure(t *testing.T) {
	router := newTestRouter(&fakeBrandStore{err: assert.AnError}, &fakeReports{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/brands/b1/description",
		strings.NewReader(`{"description":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestGetReportSuccess(t *testing.T) {
	reports := &fakeReports{
		report: &domain.VisibilityReport{
			BrandID:   "b1",
			BrandName: "Acme",
			Personas: []domain.PersonaVisibility{
				{Name: "Developer", Visibility: 62},
			},
			MatrixPersonas: []string{"Developer"},
		},
	}
	router := newTestRouter(&fakeBrandStore{}, reports)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/brands/b1/report", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.BrandID)
	assert.Equal(t, "Acme", resp.BrandName)
	require.Len(t, resp.BrandReach.Personas, 1)
	assert.Equal(t, "Developer", resp.BrandReach.Personas[0].Name)
	assert.Equal(t, []string{"Developer"}, resp.Matrix.Personas)
}

func TestGetReportUnknownBrand(t *testing.T) {
	router := newTestRouter(&fakeBrandStore{}, &fakeReports{report: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/brands/missing/report", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHealth(t *testing.T) {
	router := newTestRouterWithHealth(&fakeBrandStore{}, &fakeReports{}, &fakeHealth{connected: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealthCacheDown(t *testing.T) {
	router := newTestRouterWithHealth(&fakeBrandStore{}, &fakeReports{}, &fakeHealth{connected: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Cache unavailable")
}
