package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/basket/service"
)

type BasketHandler struct {
	service *service.BasketService
}

func NewBasketHandler(service *service.BasketService) *BasketHandler {
	return &BasketHandler{service: service}
}

// Routes mounts both API versions. The versions differ only in the checkout
// contract; basket CRUD is V1 only.
func (h *BasketHandler) Routes(r chi.Router) {
	r.Route("/api/v1/basket", func(r chi.Router) {
		r.Get("/{userName}", h.GetBasket)
		r.Post("/", h.UpdateBasket)
		r.Delete("/{userName}", h.DeleteBasket)
		r.Post("/checkout", h.Checkout)
	})
	r.Route("/api/v2/basket", func(r chi.Router) {
		r.Post("/checkout", h.CheckoutV2)
	})
}

type basketResponse struct {
	UserName   string                    `json:"userName"`
	Items      []domain.ShoppingCartItem `json:"items"`
	TotalPrice float64                   `json:"totalPrice"`
}

func toBasketResponse(cart *domain.ShoppingCart) basketResponse {
	return basketResponse{
		UserName:   cart.UserName,
		Items:      cart.Items,
		TotalPrice: cart.TotalPrice(),
	}
}

// GET /api/v1/basket/{userName}
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if userName == "" {
		respondError(w, http.StatusBadRequest, "missing_user_name", "userName is required")
		return
	}

	cart, err := h.service.GetBasket(r.Context(), userName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBasketResponse(cart))
}

type updateBasketRequest struct {
	UserName string                    `json:"userName"`
	Items    []domain.ShoppingCartItem `json:"items"`
}

// POST /api/v1/basket
func (h *BasketHandler) UpdateBasket(w http.ResponseWriter, r *http.Request) {
	var req updateBasketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserName == "" {
		respondError(w, http.StatusBadRequest, "missing_user_name", "userName is required")
		return
	}

	cart, err := h.service.UpdateBasket(r.Context(), &domain.ShoppingCart{
		UserName: req.UserName,
		Items:    req.Items,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBasketResponse(cart))
}

// DELETE /api/v1/basket/{userName}
func (h *BasketHandler) DeleteBasket(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")
	if userName == "" {
		respondError(w, http.StatusBadRequest, "missing_user_name", "userName is required")
		return
	}

	if err := h.service.DeleteBasket(r.Context(), userName); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// POST /api/v1/basket/checkout
func (h *BasketHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.BasketCheckout
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserName == "" {
		respondError(w, http.StatusBadRequest, "missing_user_name", "userName is required")
		return
	}

	if err := h.service.Checkout(r.Context(), &req); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// POST /api/v2/basket/checkout
func (h *BasketHandler) CheckoutV2(w http.ResponseWriter, r *http.Request) {
	var req domain.BasketCheckoutV2
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserName == "" {
		respondError(w, http.StatusBadRequest, "missing_user_name", "userName is required")
		return
	}

	if err := h.service.CheckoutV2(r.Context(), &req); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
