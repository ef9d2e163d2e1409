package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tableside/entity"
	"tableside/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type CreateUserReq struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Create provisions a staff account. There is no self-registration; only an
// admin reaches this, and the service re-checks that.
func (s *UserService) Create(actor Actor, req *CreateUserReq) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, ForbiddenError{}
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ValidationError{Field: "username", Message: "username is required"}
	}
	if !entity.ValidRole(req.Role) {
		return nil, ValidationError{Field: "role", Message: "invalid role"}
	}
	if req.Password == "" {
		return nil, ValidationError{Field: "password", Message: "password is required"}
	}

	count, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ValidationError{Field: "username", Message: "username already taken"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
