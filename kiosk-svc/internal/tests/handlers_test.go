package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "coffeehouse-pos/kiosk-svc/internal/api/http"
	"coffeehouse-pos/kiosk-svc/internal/domain"
	"coffeehouse-pos/kiosk-svc/internal/mocks"
	"coffeehouse-pos/kiosk-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(kiosk *mocks.KioskServiceInterface, tracker *mocks.TrackerInterface) *mux.Router {
	handler := httpapi.NewHandler(kiosk, tracker)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getMenu(t *testing.T) {
	kiosk := mocks.NewKioskServiceInterface(t)
	router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

	kiosk.On("Menu").Return([]domain.MenuItem{
		{ID: 1, Name: "Espresso", Category: "coffee", Price: 3000},
		{ID: 2, Name: "Latte", Category: "coffee", Price: 5000},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/menu", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var menu []domain.MenuItem
	json.NewDecoder(recorder.Body).Decode(&menu)
	assert.Len(t, menu, 2)
}

func TestHandler_registerCustomer(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(kiosk *mocks.KioskServiceInterface)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Aye Chan","phone":"09-111-222","password":"secret"}`,
			prepareMocks: func(kiosk *mocks.KioskServiceInterface) {
				kiosk.On("Register", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "duplicate_phone",
			payload: `{"name":"Aye Chan","phone":"09-111-222","password":"secret"}`,
			prepareMocks: func(kiosk *mocks.KioskServiceInterface) {
				kiosk.On("Register", mock.Anything, mock.Anything).
					Return(service.ErrDuplicatePhone).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(kiosk *mocks.KioskServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			kiosk := mocks.NewKioskServiceInterface(t)
			testCase.prepareMocks(kiosk)
			router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

			req := httptest.NewRequest("POST", "/api/customers/register", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_loginCustomer(t *testing.T) {
	kiosk := mocks.NewKioskServiceInterface(t)
	router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

	kiosk.On("Login", mock.Anything, "09-111-222", "wrong").
		Return(nil, service.ErrInvalidCredentials).Once()

	req := httptest.NewRequest("POST", "/api/customers/login",
		bytes.NewBufferString(`{"phone":"09-111-222","password":"wrong"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_placeOrder(t *testing.T) {
	kiosk := mocks.NewKioskServiceInterface(t)
	router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

	placed := &domain.Order{ID: 100, CustomerName: "Aye Chan", Total: 11000, Status: domain.StatusPending}
	kiosk.On("PlaceOrder", mock.Anything, mock.Anything).Return(placed, nil).Once()

	payload := `{"customer_name":"Aye Chan","table_number":"T4","items":[{"menu_item_id":1,"quantity":2}]}`
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":11000`)
}

func TestHandler_placeOrder_emptyCart(t *testing.T) {
	kiosk := mocks.NewKioskServiceInterface(t)
	router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

	kiosk.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(nil, service.ErrEmptyOrder).Once()

	req := httptest.NewRequest("POST", "/api/orders",
		bytes.NewBufferString(`{"customer_name":"Aye Chan","items":[]}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_getOrder_notFound(t *testing.T) {
	kiosk := mocks.NewKioskServiceInterface(t)
	router := setupTestRouter(kiosk, mocks.NewTrackerInterface(t))

	kiosk.On("GetOrder", mock.Anything, int64(404)).
		Return(nil, service.ErrOrderNotFound).Once()

	req := httptest.NewRequest("GET", "/api/orders/404", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_track(t *testing.T) {
	tracker := mocks.NewTrackerInterface(t)
	router := setupTestRouter(mocks.NewKioskServiceInterface(t), tracker)

	tracked := &domain.Order{ID: 100, Status: domain.StatusPending}
	tracker.On("Track", mock.Anything, "sess-1", int64(100)).Return(tracked, nil).Once()

	req := httptest.NewRequest("POST", "/api/track",
		bytes.NewBufferString(`{"session_id":"sess-1","order_id":100}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_trackingStatus(t *testing.T) {
	tracker := mocks.NewTrackerInterface(t)
	router := setupTestRouter(mocks.NewKioskServiceInterface(t), tracker)

	order := &domain.Order{ID: 100, Status: domain.StatusReady}
	notifications := []domain.Notification{{ID: 1, Title: "Order ready!", Type: "success", Urgent: true}}
	tracker.On("Status", mock.Anything, "sess-1").Return(order, notifications, nil).Once()

	req := httptest.NewRequest("GET", "/api/track/sess-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Order ready!")
}

func TestHandler_stopTracking(t *testing.T) {
	tracker := mocks.NewTrackerInterface(t)
	router := setupTestRouter(mocks.NewKioskServiceInterface(t), tracker)

	tracker.On("StopTracking", mock.Anything, "sess-1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/track/sess-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
