package models

import "time"

const (
	AssessmentTypeQuiz = "quiz"
	AssessmentTypeTest = "test"
)

func ValidAssessmentType(t string) bool {
	return t == AssessmentTypeQuiz || t == AssessmentTypeTest
}

type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer"`
}

type Assessment struct {
	AssessmentID int64      `gorm:"primaryKey;autoIncrement:false" json:"assessmentId"`
	CourseID     int64      `gorm:"index;not null" json:"courseId"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Type         string     `gorm:"size:16;not null" json:"type"`
	Questions    []Question `gorm:"serializer:json" json:"questions"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}

// Submission is one student's graded answer set for an assessment.
type Submission struct {
	SubmissionID   int64     `gorm:"primaryKey;autoIncrement:false" json:"submissionId"`
	StudentID      int64     `gorm:"index;not null" json:"studentId"`
	AssessmentID   int64     `gorm:"index;not null" json:"assessmentId"`
	CourseID       int64     `gorm:"not null" json:"courseId"`
	Answers        []string  `gorm:"serializer:json" json:"answers"`
	Score          float64   `gorm:"not null" json:"score"`
	CompletionDate time.Time `gorm:"not null" json:"completionDate"`
}
