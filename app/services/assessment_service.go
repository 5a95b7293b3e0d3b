package services

import (
	"encoding/json"
	"errors"
	"time"

	"coursehub/app/models"
	"coursehub/app/repo"

	"gorm.io/gorm"
)

type AssessmentService struct {
	assessments *repo.AssessmentRepository
	submissions *repo.SubmissionRepository
	counters    *repo.CounterRepository
}

func NewAssessmentService(assessments *repo.AssessmentRepository, submissions *repo.SubmissionRepository, counters *repo.CounterRepository) *AssessmentService {
	return &AssessmentService{assessments: assessments, submissions: submissions, counters: counters}
}

func (s *AssessmentService) Create(courseID int64, title, typ string, questions []models.Question) (*models.Assessment, error) {
	if !models.ValidAssessmentType(typ) {
		return nil, ErrValidation
	}
	id, err := s.counters.Next("assessment_id")
	if err != nil {
		return nil, err
	}
	a := &models.Assessment{
		AssessmentID: id,
		CourseID:     courseID,
		Title:        title,
		Type:         typ,
		Questions:    questions,
	}
	if err := s.assessments.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) Get(id int64) (*models.Assessment, error) {
	a, err := s.assessments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) Update(id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrValidation
	}
	if typ, ok := fields["type"].(string); ok && !models.ValidAssessmentType(typ) {
		return ErrValidation
	}
	// Map updates bypass the model's JSON serializer, so encode by hand.
	if questions, ok := fields["questions"].([]models.Question); ok {
		encoded, err := json.Marshal(questions)
		if err != nil {
			return err
		}
		fields["questions"] = string(encoded)
	}
	matched, err := s.assessments.Update(id, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AssessmentService) Delete(id int64) error {
	matched, err := s.assessments.Delete(id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// Submit grades the answers against the assessment's answer key and stores
// the result. The score is the percentage of questions answered correctly;
// missing answers count as wrong.
func (s *AssessmentService) Submit(studentID, assessmentID, courseID int64, answers []string) (*models.Submission, error) {
	a, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	id, err := s.counters.Next("submission_id")
	if err != nil {
		return nil, err
	}
	sub := &models.Submission{
		SubmissionID:   id,
		StudentID:      studentID,
		AssessmentID:   assessmentID,
		CourseID:       courseID,
		Answers:        answers,
		Score:          score(a.Questions, answers),
		CompletionDate: time.Now().UTC(),
	}
	if err := s.submissions.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func score(questions []models.Question, answers []string) float64 {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.Answer {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(questions))
}

func (s *AssessmentService) GetSubmission(studentID, assessmentID int64) (*models.Submission, error) {
	sub, err := s.submissions.FindByStudentAndAssessment(studentID, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *AssessmentService) ListSubmissions(studentID int64) ([]models.Submission, error) {
	return s.submissions.ListByStudent(studentID)
}
