package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/discount"
	"github.com/deb240485/Ecommerce-Microservices/internal/basket/repository"
	"github.com/deb240485/Ecommerce-Microservices/pkg/rabbitmq"
)

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

// handleServiceError maps pipeline failures onto HTTP statuses. A missing
// cart and an unreachable collaborator are both client-visible failures with
// no side effects, so checkout stays retryable.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "basket_not_found", "no basket exists for this user")
	case errors.Is(err, discount.ErrDiscountUnavailable):
		respondError(w, http.StatusServiceUnavailable, "discount_unavailable", "discount lookup failed, try again")
	case errors.Is(err, rabbitmq.ErrPublishFailed):
		respondError(w, http.StatusBadGateway, "publish_failed", "checkout could not be accepted, try again")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}
