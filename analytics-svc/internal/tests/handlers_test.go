package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "coffeehouse-pos/analytics-svc/internal/api/http"
	"coffeehouse-pos/analytics-svc/internal/domain"
	"coffeehouse-pos/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(svc *mocks.AnalyticsInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(svc).RegisterRoutes(r)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(mocks.NewAnalyticsInterface(t))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetTopToday(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopToday", 10).Return([]domain.ItemSales{
		{MenuItemID: 1, Name: "Latte", Category: "coffee", Score: 12},
	}, nil)

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/top-today", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []domain.ItemSales
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Latte", items[0].Name)
}

func TestGetTopAllTime_CustomLimit(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopAllTime", 3).Return([]domain.ItemSales{}, nil)

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/top-alltime?limit=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestGetTopToday_BadLimitFallsBack(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopToday", 10).Return([]domain.ItemSales{}, nil)

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/top-today?limit=banana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTopToday_ErrorBecomesEmptyList(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("TopToday", 10).Return(nil, errors.New("redis down"))

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/top-today", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestGetRevenue(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("RevenueByDate", "2026-08-31").Return(&domain.RevenueReport{
		Date:       "2026-08-31",
		Revenue:    15500,
		OrderCount: 2,
	}, nil)

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/revenue?date=2026-08-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report domain.RevenueReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, int64(15500), report.Revenue)
	assert.Equal(t, 2, report.OrderCount)
}

func TestGetRevenue_BadDate(t *testing.T) {
	router := setupTestRouter(mocks.NewAnalyticsInterface(t))

	req := httptest.NewRequest("GET", "/api/analytics/revenue?date=31-08-2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategorySales(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("CategorySales").Return(map[string]int64{
		"coffee": 14, "tea": 0, "frappe": 0, "snack": 6, "dessert": 0,
	}, nil)

	router := setupTestRouter(mockSvc)
	req := httptest.NewRequest("GET", "/api/analytics/category-sales", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var sales map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sales))
	assert.Equal(t, int64(14), sales["coffee"])
	assert.Equal(t, int64(0), sales["dessert"])
}
