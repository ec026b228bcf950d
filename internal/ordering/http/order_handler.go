package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/repository"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler is the read-only HTTP surface of the ordering service. Orders
// are only ever created by the checkout consumers, never over HTTP.
type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

func (h *OrderHandler) Routes(r chi.Router) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/{userName}", h.ListOrders)
		r.Get("/id/{id}", h.GetOrder)
	})
}

type orderResponse struct {
	ID            int     `json:"id"`
	UserName      string  `json:"userName"`
	TotalPrice    float64 `json:"totalPrice"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	EmailAddress  string  `json:"emailAddress"`
	AddressLine   string  `json:"addressLine"`
	Country       string  `json:"country"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zipCode"`
	PaymentMethod int     `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:            order.ID,
		UserName:      order.UserName,
		TotalPrice:    order.TotalPrice,
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		EmailAddress:  order.EmailAddress,
		AddressLine:   order.AddressLine,
		Country:       order.Country,
		State:         order.State,
		ZipCode:       order.ZipCode,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if userName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "userName is required")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), userName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "order id must be an integer")
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "order_not_found", "no order exists with this id")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: code, Message: message})
}
