package services

import (
	"errors"
	"time"

	"coursehub/app/models"
	"coursehub/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	payments *repo.PaymentRepository
	courses  *repo.CourseRepository
	counters *repo.CounterRepository
}

func NewPaymentService(payments *repo.PaymentRepository, courses *repo.CourseRepository, counters *repo.CounterRepository) *PaymentService {
	return &PaymentService{payments: payments, courses: courses, counters: counters}
}

func (s *PaymentService) Create(userID, courseID int64, amount float64, status string) (*models.Payment, error) {
	if _, err := s.courses.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if status == "" {
		status = models.PaymentStatusPending
	}
	id, err := s.counters.Next("payment_id")
	if err != nil {
		return nil, err
	}
	p := &models.Payment{
		PaymentID:   id,
		UserID:      userID,
		CourseID:    courseID,
		Amount:      amount,
		Status:      status,
		Reference:   uuid.NewString(),
		PaymentDate: time.Now().UTC(),
	}
	if err := s.payments.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Get(id int64) (*models.Payment, error) {
	p, err := s.payments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update is scoped to the caller's own payments; a payment owned by someone
// else reports ErrNotFound, same as a missing one.
func (s *PaymentService) Update(userID, paymentID int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return ErrValidation
	}
	if status, ok := fields["status"].(string); ok {
		if status != models.PaymentStatusPending && status != models.PaymentStatusCompleted {
			return ErrValidation
		}
	}
	matched, err := s.payments.UpdateOwned(paymentID, userID, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PaymentService) Delete(userID, paymentID int64) error {
	matched, err := s.payments.DeleteOwned(paymentID, userID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PaymentService) List(userID int64) ([]models.Payment, error) {
	return s.payments.ListByUser(userID)
}
