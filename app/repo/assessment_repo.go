package repo

import (
	"coursehub/app/models"

	"gorm.io/gorm"
)

type AssessmentRepository struct{ db *gorm.DB }

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(a *models.Assessment) error { return r.db.Create(a).Error }

func (r *AssessmentRepository) FindByID(id int64) (*models.Assessment, error) {
	var a models.Assessment
	if err := r.db.Where("assessment_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) Update(id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Assessment{}).
		Where("assessment_id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *AssessmentRepository) Delete(id int64) (int64, error) {
	res := r.db.Where("assessment_id = ?", id).Delete(&models.Assessment{})
	return res.RowsAffected, res.Error
}

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(s *models.Submission) error { return r.db.Create(s).Error }

func (r *SubmissionRepository) FindByStudentAndAssessment(studentID, assessmentID int64) (*models.Submission, error) {
	var s models.Submission
	if err := r.db.Where("student_id = ? AND assessment_id = ?", studentID, assessmentID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) ListByStudent(studentID int64) ([]models.Submission, error) {
	var subs []models.Submission
	return subs, r.db.Where("student_id = ?", studentID).Find(&subs).Error
}
