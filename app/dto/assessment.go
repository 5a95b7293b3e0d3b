package dto

import (
	"time"

	"coursehub/app/models"
)

type CreateAssessmentRequest struct {
	CourseID  *int64            `json:"courseId"`
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Questions []models.Question `json:"questions"`
}

type AssessmentCreatedResponse struct {
	AssessmentID int64  `json:"assessmentId"`
	Message      string `json:"message"`
}

type UpdateAssessmentRequest struct {
	Title     *string           `json:"title"`
	Type      *string           `json:"type"`
	Questions []models.Question `json:"questions"`
}

type SubmitAssessmentRequest struct {
	AssessmentID *int64   `json:"assessmentId"`
	CourseID     *int64   `json:"courseId"`
	Answers      []string `json:"answers"`
}

type SubmitAssessmentResponse struct {
	Message        string    `json:"message"`
	Score          float64   `json:"score"`
	CompletionDate time.Time `json:"completionDate"`
}
