// Package auth authenticates dashboard operators against the admin_users
// table and issues signed bearer tokens.
package auth

import (
	"errors"
	"log"

	"nisapoti-admin/internal/models"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Login(email, password string) (*models.AdminUser, string, error)
}

type service struct {
	adminRepo repositories.AdminUserRepository
}

func NewService(adminRepo repositories.AdminUserRepository) Service {
	return &service{adminRepo: adminRepo}
}

// Login verifies the password against the stored bcrypt hash and returns
// the account with a fresh token. Unknown emails, inactive accounts and
// wrong passwords all collapse into the same credentials error.
func (s *service) Login(email, password string) (*models.AdminUser, string, error) {
	user, err := s.adminRepo.GetActiveByEmail(email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Login lookup failed: %v", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		log.Printf("Token generation failed for admin %d: %v", user.ID, err)
		return nil, "", err
	}

	return user, token, nil
}
