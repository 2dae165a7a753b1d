package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu      service.MenuServiceInterface
	Orders    service.OrderServiceInterface
	Reports   service.ReportServiceInterface
	Dashboard service.DashboardInterface

	// AdminEmail is the single address allowed through the login gate.
	AdminEmail string
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface, reports service.ReportServiceInterface, dashboard service.DashboardInterface, adminEmail string) *Handler {
	return &Handler{Menu: menu, Orders: orders, Reports: reports, Dashboard: dashboard, AdminEmail: adminEmail}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/admin/login", h.login).Methods("POST")

	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/receipt", h.getReceipt).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getQRCode).Methods("GET")

	r.HandleFunc("/api/dashboard/orders", h.dashboardOrders).Methods("GET")
	r.HandleFunc("/api/dashboard/alerts", h.dashboardAlerts).Methods("GET")

	r.HandleFunc("/api/reports/daily", h.dailyReport).Methods("GET")
	r.HandleFunc("/api/reports/daily", h.clearDailyReport).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "admin-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(strings.TrimSpace(creds.Email), h.AdminEmail) {
		http.Error(w, "not an admin account", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"email": h.AdminEmail, "role": "admin"})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.Add(r.Context(), &item); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = id

	if err := h.Menu.Update(r.Context(), item); err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := h.Menu.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Get(id)
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

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order_id": id,
		"status":   req.Status,
		"updated":  updated,
	})
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	receipt, err := h.Orders.Receipt(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	png, err := h.Orders.QRCode(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) dashboardOrders(w http.ResponseWriter, r *http.Request) {
	orders, refreshed := h.Dashboard.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"orders":       orders,
		"refreshed_at": refreshed.Format(time.RFC3339),
	})
}

func (h *Handler) dashboardAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Alerts())
}

func (h *Handler) dailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := h.Reports.Daily(date)
	if err != nil {
		if errors.Is(err, service.ErrBadDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) clearDailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	deleted, err := h.Reports.ClearDaily(r.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrBadDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "deleted": deleted})
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidCategory) ||
		errors.Is(err, service.ErrNegativePrice) ||
		errors.Is(err, service.ErrImageTooLarge)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
