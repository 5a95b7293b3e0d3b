package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"coursehub/app/dto"
	"coursehub/app/middleware"
	"coursehub/app/services"
)

type EnrollmentController struct {
	Enrollments *services.EnrollmentService
}

func NewEnrollmentController(enrollments *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: enrollments}
}

func (c *EnrollmentController) Enroll(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	var req dto.EnrollRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.CourseID == nil {
		writeMessage(w, http.StatusBadRequest, "course ID is required")
		return
	}
	e, err := c.Enrollments.Enroll(principal.UserID, *req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "course not found")
		case errors.Is(err, services.ErrConflict):
			writeMessage(w, http.StatusBadRequest, "already enrolled in this course")
		default:
			writeInternal(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, dto.EnrollResponse{EnrollmentID: e.EnrollmentID, Message: "enrollment successful"})
}

func (c *EnrollmentController) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid enrollment ID format")
		return
	}
	var req dto.UpdateEnrollmentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.EnrollmentDate == nil {
		writeMessage(w, http.StatusBadRequest, "enrollment date is required")
		return
	}
	date, err := time.Parse(time.RFC3339, *req.EnrollmentDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid enrollment date format")
		return
	}
	if err := c.Enrollments.UpdateDate(principal, id, date); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "enrollment not found")
		case errors.Is(err, services.ErrForbidden):
			writeMessage(w, http.StatusForbidden, "access forbidden: cannot update another user's enrollment")
		default:
			writeInternal(w, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, "enrollment updated")
}

func (c *EnrollmentController) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid enrollment ID format")
		return
	}
	if err := c.Enrollments.Delete(principal, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "enrollment not found")
		case errors.Is(err, services.ErrForbidden):
			writeMessage(w, http.StatusForbidden, "access forbidden: cannot delete another user's enrollment")
		default:
			writeInternal(w, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, "enrollment deleted")
}
