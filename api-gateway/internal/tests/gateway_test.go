package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffeehouse-pos/api-gateway/internal/gateway"
	"coffeehouse-pos/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() gateway.Config {
	return gateway.Config{
		KioskSvcURL:     "http://kiosk-svc",
		AdminSvcURL:     "http://admin-svc",
		AnalyticsSvcURL: "http://analytics-svc",
	}
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_MenuReadGoesToKiosk(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "kiosk-svc" && req.Method == http.MethodGet
	})).Return(okResponse(`[{"id":1,"name":"Latte"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Latte")
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_MenuWriteGoesToAdmin(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "admin-svc" && req.Method == http.MethodPut
	})).Return(okResponse(`{"id":3}`), nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/menu/3", strings.NewReader(`{"price":4500}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_OrderPlacementGoesToKiosk(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "kiosk-svc"
	})).Return(okResponse(`{"id":42}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_OrderManagementGoesToAdmin(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "admin-svc"
	})).Return(okResponse(`{"order_id":42,"status":"ready","updated":true}`), nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/orders/42/status", strings.NewReader(`{"status":"ready"}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_TrackingGoesToKiosk(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		// Query strings survive the hop.
		return req.URL.Host == "kiosk-svc" && req.URL.RawQuery == "order_id=42"
	})).Return(okResponse(`{}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/track?order_id=42", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_AnalyticsGoesToAnalytics(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "analytics-svc"
	})).Return(okResponse(`[]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-today", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig(), mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	mockClient.AssertExpectations(t)
}
