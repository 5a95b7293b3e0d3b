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

type AssessmentController struct {
	Assessments *services.AssessmentService
}

func NewAssessmentController(assessments *services.AssessmentService) *AssessmentController {
	return &AssessmentController{Assessments: assessments}
}

func (c *AssessmentController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssessmentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.CourseID == nil || req.Title == "" || req.Type == "" || len(req.Questions) == 0 {
		writeMessage(w, http.StatusBadRequest, "course ID, title, type, and questions are required")
		return
	}
	a, err := c.Assessments.Create(*req.CourseID, req.Title, req.Type, req.Questions)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeMessage(w, http.StatusBadRequest, "invalid assessment type")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.AssessmentCreatedResponse{AssessmentID: a.AssessmentID, Message: "assessment created"})
}

func (c *AssessmentController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid assessment ID format")
		return
	}
	a, err := c.Assessments.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (c *AssessmentController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid assessment ID format")
		return
	}
	var req dto.UpdateAssessmentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Questions != nil {
		fields["questions"] = req.Questions
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, "no data provided for update")
		return
	}
	if err := c.Assessments.Update(id, fields); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			writeMessage(w, http.StatusBadRequest, "invalid assessment type")
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "assessment not found")
		default:
			writeInternal(w, err)
		}
		return
	}
	writeMessage(w, http.StatusOK, "assessment updated")
}

func (c *AssessmentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid assessment ID format")
		return
	}
	if err := c.Assessments.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "assessment deleted")
}

func (c *AssessmentController) Submit(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	var req dto.SubmitAssessmentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.AssessmentID == nil || req.CourseID == nil || len(req.Answers) == 0 {
		writeMessage(w, http.StatusBadRequest, "assessment ID, course ID, and answers are required")
		return
	}
	sub, err := c.Assessments.Submit(principal.UserID, *req.AssessmentID, *req.CourseID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.SubmitAssessmentResponse{
		Message:        "assessment submitted successfully",
		Score:          sub.Score,
		CompletionDate: sub.CompletionDate,
	})
}

func (c *AssessmentController) GetSubmission(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid assessment ID format")
		return
	}
	sub, err := c.Assessments.GetSubmission(principal.UserID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (c *AssessmentController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	subs, err := c.Assessments.ListSubmissions(principal.UserID)
	if err != nil {
		writeInternal(w, err)
		return
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}
