package services

import (
	"errors"
	"time"

	"coursehub/app/models"
	"coursehub/app/repo"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	enrollments *repo.EnrollmentRepository
	courses     *repo.CourseRepository
	counters    *repo.CounterRepository
}

func NewEnrollmentService(enrollments *repo.EnrollmentRepository, courses *repo.CourseRepository, counters *repo.CounterRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses, counters: counters}
}

func (s *EnrollmentService) Enroll(studentID, courseID int64) (*models.Enrollment, error) {
	if _, err := s.courses.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	count, err := s.enrollments.CountByUserAndCourse(studentID, courseID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}
	id, err := s.counters.Next("enrollment_id")
	if err != nil {
		return nil, err
	}
	e := &models.Enrollment{
		EnrollmentID: id,
		UserID:       studentID,
		CourseID:     courseID,
		EnrolledAt:   time.Now().UTC(),
	}
	if err := s.enrollments.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateDate rewrites the enrollment date. Students may only touch their own
// enrollments; instructors may touch any.
func (s *EnrollmentService) UpdateDate(principal *models.User, enrollmentID int64, date time.Time) error {
	e, err := s.enrollments.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if principal.Role == models.RoleStudent && principal.UserID != e.UserID {
		return ErrForbidden
	}
	matched, err := s.enrollments.UpdateDate(enrollmentID, date)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EnrollmentService) Delete(principal *models.User, enrollmentID int64) error {
	e, err := s.enrollments.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if principal.Role == models.RoleStudent && principal.UserID != e.UserID {
		return ErrForbidden
	}
	matched, err := s.enrollments.Delete(enrollmentID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}
