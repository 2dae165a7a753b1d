package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"coffeehouse-pos/kiosk-svc/internal/domain"
	"coffeehouse-pos/kiosk-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Kiosk   service.KioskServiceInterface
	Tracker service.TrackerInterface
}

func NewHandler(kiosk service.KioskServiceInterface, tracker service.TrackerInterface) *Handler {
	return &Handler{Kiosk: kiosk, Tracker: tracker}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/customers/register", h.registerCustomer).Methods("POST")
	r.HandleFunc("/api/customers/login", h.loginCustomer).Methods("POST")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")

	r.HandleFunc("/api/track", h.trackOrder).Methods("POST")
	r.HandleFunc("/api/track/{sessionId}", h.trackingStatus).Methods("GET")
	r.HandleFunc("/api/track/{sessionId}/read", h.markNotificationsRead).Methods("POST")
	r.HandleFunc("/api/track/{sessionId}", h.stopTracking).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "kiosk-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Kiosk.Menu()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Kiosk.Register(r.Context(), &customer); err != nil {
		if errors.Is(err, service.ErrDuplicatePhone) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) loginCustomer(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := h.Kiosk.Login(r.Context(), creds.Phone, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req service.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Kiosk.PlaceOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrUnknownMenuItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Kiosk.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) trackOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"session_id"`
		OrderID   int64  `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.OrderID == 0 {
		http.Error(w, "session_id and order_id are required", http.StatusBadRequest)
		return
	}

	order, err := h.Tracker.Track(r.Context(), req.SessionID, req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) trackingStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	order, notifications, err := h.Tracker.Status(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "No tracked order", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order":         order,
		"notifications": notifications,
	})
}

func (h *Handler) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.Tracker.MarkRead(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stopTracking(w http.ResponseWriter, r *http.Request) {
	if err := h.Tracker.StopTracking(r.Context(), mux.Vars(r)["sessionId"]); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
