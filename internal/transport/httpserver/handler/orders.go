package handler

import (
	"net/http"
	"time"

	ordersdomain "garments-api/internal/domain/orders"
	"github.com/go-chi/chi/v5"
)

type createOrderRequest struct {
	UserID      string  `json:"user_id"`
	UserType    string  `json:"user_type"`
	OrgUserID   *string `json:"org_user_id"`
	TotalAmount float64 `json:"total_amount"`
}

type updateStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserType    string    `json:"user_type"`
	OrgUserID   *string   `json:"org_user_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type orderCreatedResponse struct {
	envelope
	OrderID string `json:"order_id"`
}

type orderDetailResponse struct {
	envelope
	Order orderResponse `json:"order"`
}

type ordersResponse struct {
	envelope
	Orders []orderResponse `json:"orders"`
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeRequest(w, r, &req, "user_id", "user_type", "total_amount"); err != nil {
		h.fail(w, "orders.create", err, "Failed to create order")
		return
	}

	order, err := h.Orders.CreateOrder(r.Context(), ordersdomain.CreateOrderInput{
		UserID:      req.UserID,
		UserType:    req.UserType,
		OrgUserID:   req.OrgUserID,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		h.fail(w, "orders.create", err, "Failed to create order", "user_id", req.UserID, "user_type", req.UserType)
		return
	}
	writeJSON(w, http.StatusOK, orderCreatedResponse{envelope: ok("Order created successfully"), OrderID: order.ID})
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		h.fail(w, "orders.get", err, "Failed to fetch order", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, orderDetailResponse{envelope: ok(""), Order: mapOrder(*order)})
}

func (h *Handlers) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := decodeRequest(w, r, &req, "order_id", "status"); err != nil {
		h.fail(w, "orders.update_status", err, "Failed to update order status")
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), req.OrderID, req.Status); err != nil {
		h.fail(w, "orders.update_status", err, "Failed to update order status", "id", req.OrderID)
		return
	}
	writeJSON(w, http.StatusOK, ok("Order status updated successfully"))
}

func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		h.fail(w, "orders.list", err, "Failed to fetch orders")
		return
	}
	writeJSON(w, http.StatusOK, ordersResponse{envelope: ok(""), Orders: mapOrders(orders)})
}

func (h *Handlers) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	userType := chi.URLParam(r, "user_type")
	orders, err := h.Orders.ListOrdersByUser(r.Context(), userID, userType)
	if err != nil {
		h.fail(w, "orders.list_by_user", err, "Failed to fetch orders", "user_id", userID, "user_type", userType)
		return
	}
	writeJSON(w, http.StatusOK, ordersResponse{envelope: ok(""), Orders: mapOrders(orders)})
}

func mapOrders(orders []ordersdomain.Order) []orderResponse {
	items := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, mapOrder(order))
	}
	return items
}

func mapOrder(order ordersdomain.Order) orderResponse {
	return orderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		UserType:    order.UserType,
		OrgUserID:   order.OrgUserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
