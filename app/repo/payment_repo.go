package repo

import (
	"coursehub/app/models"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(p *models.Payment) error { return r.db.Create(p).Error }

func (r *PaymentRepository) FindByID(id int64) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.Where("payment_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateOwned applies fields only when the payment belongs to the given user.
func (r *PaymentRepository) UpdateOwned(paymentID, userID int64, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Payment{}).
		Where("payment_id = ? AND user_id = ?", paymentID, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) DeleteOwned(paymentID, userID int64) (int64, error) {
	res := r.db.Where("payment_id = ? AND user_id = ?", paymentID, userID).Delete(&models.Payment{})
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) ListByUser(userID int64) ([]models.Payment, error) {
	var payments []models.Payment
	return payments, r.db.Where("user_id = ?", userID).Find(&payments).Error
}
