package repo

import (
	"time"

	"coursehub/app/models"

	"gorm.io/gorm"
)

type EnrollmentRepository struct{ db *gorm.DB }

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(e *models.Enrollment) error { return r.db.Create(e).Error }

func (r *EnrollmentRepository) FindByID(id int64) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.Where("enrollment_id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) CountByUserAndCourse(userID, courseID int64) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
}

func (r *EnrollmentRepository) UpdateDate(id int64, date time.Time) (int64, error) {
	res := r.db.Model(&models.Enrollment{}).
		Where("enrollment_id = ?", id).
		Update("enrolled_at", date)
	return res.RowsAffected, res.Error
}

func (r *EnrollmentRepository) Delete(id int64) (int64, error) {
	res := r.db.Where("enrollment_id = ?", id).Delete(&models.Enrollment{})
	return res.RowsAffected, res.Error
}
