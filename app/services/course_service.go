package services

import (
	"context"
	"errors"

	"coursehub/app/cache"
	"coursehub/app/models"
	"coursehub/app/repo"

	"gorm.io/gorm"
)

type CourseService struct {
	courses  *repo.CourseRepository
	counters *repo.CounterRepository
	cache    *cache.CourseCache
}

func NewCourseService(courses *repo.CourseRepository, counters *repo.CounterRepository, cache *cache.CourseCache) *CourseService {
	return &CourseService{courses: courses, counters: counters, cache: cache}
}

func (s *CourseService) Create(ctx context.Context, instructorID int64, title, description, category string, price float64, duration string) (*models.Course, error) {
	id, err := s.counters.Next("course_id")
	if err != nil {
		return nil, err
	}
	c := &models.Course{
		CourseID:     id,
		Title:        title,
		Description:  description,
		Category:     category,
		Price:        price,
		Duration:     duration,
		InstructorID: instructorID,
	}
	if err := s.courses.Create(c); err != nil {
		return nil, err
	}
	s.cache.Set(ctx, c)
	return c, nil
}

func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	if c, ok := s.cache.Get(ctx, id); ok {
		return c, nil
	}
	c, err := s.courses.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cache.Set(ctx, c)
	return c, nil
}

// Update applies the given fields to a course owned by the instructor. A
// missing course and a course owned by someone else are both reported as
// ErrNotFound, matching the filtered update.
func (s *CourseService) Update(ctx context.Context, instructorID, courseID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrValidation
	}
	matched, err := s.courses.UpdateOwned(courseID, instructorID, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	s.cache.Invalidate(ctx, courseID)
	return nil
}

func (s *CourseService) Delete(ctx context.Context, instructorID, courseID int64) error {
	matched, err := s.courses.DeleteOwned(courseID, instructorID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	s.cache.Invalidate(ctx, courseID)
	return nil
}

func (s *CourseService) Search(category string, minPrice, maxPrice float64) ([]models.Course, error) {
	if minPrice > maxPrice {
		return nil, ErrValidation
	}
	return s.courses.Search(category, minPrice, maxPrice)
}
