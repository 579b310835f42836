package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/resumehub/resume-builder/internal/server/middleware"
	"github.com/resumehub/resume-builder/internal/types"
)

// handleCreateOrder registers a checkout order with the payment gateway and
// returns its id for the embedded checkout widget.
func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.payments == nil {
		err := &ErrUpstreamUnavailable{Service: "payment gateway"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	order, err := s.payments.CreateOrder(r.Context(), req.Amount, req.Currency, req.PlanType)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to create order: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

// handleVerifyPayment checks the checkout result signature server-side and
// grants the premium entitlement on success. The client-reported result is
// never trusted without the signature.
func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.payments == nil {
		err := &ErrUpstreamUnavailable{Service: "payment gateway"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if !s.payments.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Printf("Payment signature verification failed for user %s order %s", userID, req.OrderID)
		s.errorResponse(w, http.StatusBadRequest, "Payment signature verification failed")
		return
	}

	if err := s.db.UpsertSubscription(r.Context(), userID, true, req.PlanType); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to activate subscription: "+err.Error())
		return
	}

	log.Printf("Premium activated for user %s (plan %s)", userID, req.PlanType)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"is_premium": true,
		"plan_type":  req.PlanType,
	})
}

// handleGetSubscription reports the caller's entitlement.
func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sub, err := s.db.GetSubscription(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if sub == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"is_premium": false})
		return
	}

	s.jsonResponse(w, http.StatusOK, sub)
}
