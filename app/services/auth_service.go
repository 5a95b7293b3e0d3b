package services

import (
	"errors"

	jwtutil "coursehub/app/jwt"
	"coursehub/app/models"
	"coursehub/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users    *repo.UserRepository
	counters *repo.CounterRepository
	signer   *jwtutil.Signer
}

func NewAuthService(users *repo.UserRepository, counters *repo.CounterRepository, signer *jwtutil.Signer) *AuthService {
	return &AuthService{users: users, counters: counters, signer: signer}
}

// Signup creates a user with a freshly salted password hash and an id from
// the user_id counter. A failed insert after allocation leaves a gap in the
// sequence; allocation and insert are deliberately not one transaction.
func (s *AuthService) Signup(username, email, password, phone string, role models.Role) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id, err := s.counters.Next("user_id")
	if err != nil {
		return nil, err
	}
	u := &models.User{
		UserID:       id,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the password with bcrypt's constant-time comparison and
// issues a signed token. Unknown email and wrong password are not
// distinguished.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.signer.Sign(u.UserID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) FindByID(id int64) (*models.User, error) {
	return s.users.FindByID(id)
}
