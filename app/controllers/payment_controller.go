package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursehub/app/dto"
	"coursehub/app/middleware"
	"coursehub/app/models"
	"coursehub/app/services"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

func (c *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	var req dto.CreatePaymentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.CourseID == nil || req.Amount == nil {
		writeMessage(w, http.StatusBadRequest, "course ID and amount are required")
		return
	}
	p, err := c.Payments.Create(principal.UserID, *req.CourseID, *req.Amount, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "course not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.PaymentCreatedResponse{PaymentID: p.PaymentID, Message: "payment created"})
}

func (c *PaymentController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid payment ID format")
		return
	}
	p, err := c.Payments.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "payment not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid payment ID format")
		return
	}
	var req dto.UpdatePaymentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	fields := map[string]interface{}{}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, "no data provided for update")
		return
	}
	if err := c.Payments.Update(principal.UserID, id, fields); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			writeMessage(w, http.StatusBadRequest, "invalid payment status")
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "payment not found or you are not authorized to update this payment")
		default:
			writeInternal(w, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, "payment updated")
}

func (c *PaymentController) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid payment ID format")
		return
	}
	if err := c.Payments.Delete(principal.UserID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "payment not found or you are not authorized to delete this payment")
			return
		}
		writeInternal(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "payment deleted")
}

func (c *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	payments, err := c.Payments.List(principal.UserID)
	if err != nil {
		writeInternal(w, err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
