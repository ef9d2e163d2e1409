package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tableside/entity"
	"tableside/repository"
	"tableside/utils"
)

// AuthService handles login and token issuance for staff accounts.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Login checks the credentials and returns a signed JWT plus the user. A bad
// username and a bad password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ValidationError{Message: "invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ValidationError{Message: "invalid credentials"}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Superuser, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, NotFoundError{Resource: "user"}
	}
	return u, nil
}
