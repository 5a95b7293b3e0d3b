package repo

import (
	"coursehub/app/models"

	"gorm.io/gorm"
)

type CourseRepository struct{ db *gorm.DB }

func NewCourseRepository(db *gorm.DB) *CourseRepository { return &CourseRepository{db: db} }

func (r *CourseRepository) Create(c *models.Course) error { return r.db.Create(c).Error }

func (r *CourseRepository) FindByID(id int64) (*models.Course, error) {
	var c models.Course
	if err := r.db.Where("course_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateOwned applies fields to a course only when it belongs to the given
// instructor; returns the number of matched rows.
func (r *CourseRepository) UpdateOwned(courseID, instructorID int64, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Course{}).
		Where("course_id = ? AND instructor_id = ?", courseID, instructorID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *CourseRepository) DeleteOwned(courseID, instructorID int64) (int64, error) {
	res := r.db.Where("course_id = ? AND instructor_id = ?", courseID, instructorID).
		Delete(&models.Course{})
	return res.RowsAffected, res.Error
}

func (r *CourseRepository) Search(category string, minPrice, maxPrice float64) ([]models.Course, error) {
	q := r.db.Where("price >= ? AND price <= ?", minPrice, maxPrice)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var courses []models.Course
	return courses, q.Find(&courses).Error
}
