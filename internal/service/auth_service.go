package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pathfinder-backend-V1.0/internal/model"
	"pathfinder-backend-V1.0/internal/repository"
	"pathfinder-backend-V1.0/utilities"
)

// AuthService interface
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, string, string, error)
	Refresh(refreshToken string) (string, string, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(user *model.User) error {
	existingUser, err := s.userRepo.GetUserByEmail(user.Email)
	if err == nil && existingUser != nil {
		return errors.New("email already in use")
	}

	if user.Password == "" {
		return errors.New("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}
	user.Password = string(hashed)

	if err := s.userRepo.CreateUser(user); err != nil {
		return errors.New("failed to store user in database")
	}

	user.Password = ""
	return nil
}

func (s *authService) Login(email, password string) (*model.User, string, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", "", errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := utilities.GenerateTokens(user)
	if err != nil {
		return nil, "", "", errors.New("failed to generate tokens")
	}

	user.Password = ""
	return user, accessToken, refreshToken, nil
}

func (s *authService) Refresh(refreshToken string) (string, string, error) {
	accessToken, newRefresh, err := utilities.RefreshTokens(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}
	return accessToken, newRefresh, nil
}
