package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coursehub/app/dto"
	"coursehub/app/middleware"
	"coursehub/app/models"
	"coursehub/app/services"
)

// Prices above this are only reachable through an explicit priceRange.
const defaultMaxPrice = 1e6

type CourseController struct {
	Courses *services.CourseService
}

func NewCourseController(courses *services.CourseService) *CourseController {
	return &CourseController{Courses: courses}
}

func (c *CourseController) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	var req dto.CreateCourseRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Price == nil || req.Duration == "" {
		writeMessage(w, http.StatusBadRequest, "all fields are required")
		return
	}
	course, err := c.Courses.Create(r.Context(), principal.UserID, req.Title, req.Description, req.Category, *req.Price, req.Duration)
	if err != nil {
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.CourseCreatedResponse{CourseID: course.CourseID, Message: "course created"})
}

func (c *CourseController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid course ID format")
		return
	}
	course, err := c.Courses.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "course not found")
			return
		}
		writeInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (c *CourseController) Search(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	priceRange := r.URL.Query().Get("priceRange")

	minPrice, maxPrice := 0.0, defaultMaxPrice
	if priceRange != "" {
		parts := strings.SplitN(priceRange, "-", 2)
		if len(parts) != 2 {
			writeMessage(w, http.StatusBadRequest, "invalid price range format")
			return
		}
		var err1, err2 error
		minPrice, err1 = strconv.ParseFloat(parts[0], 64)
		maxPrice, err2 = strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			writeMessage(w, http.StatusBadRequest, "invalid price range format")
			return
		}
		if minPrice > maxPrice {
			writeMessage(w, http.StatusBadRequest, "minimum price cannot be greater than maximum price")
			return
		}
	}
	courses, err := c.Courses.Search(category, minPrice, maxPrice)
	if err != nil {
		writeInternal(w, err)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

func (c *CourseController) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid course ID format")
		return
	}
	var req dto.UpdateCourseRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, "no data provided for update")
		return
	}
	if err := c.Courses.Update(r.Context(), principal.UserID, id, fields); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "course not found or you are not the instructor")
			return
		}
		writeInternal(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "course updated")
}

func (c *CourseController) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid course ID format")
		return
	}
	if err := c.Courses.Delete(r.Context(), principal.UserID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "course not found or you are not the instructor")
			return
		}
		writeInternal(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "course deleted")
}
