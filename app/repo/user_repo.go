package repo

import (
	"coursehub/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id int64) (*models.User, error) {
	var u models.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
