package services

import (
	"strings"

	"inventori/internal/models"
	"inventori/internal/repository"
)

type UserService interface {
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(id uint, fullName string) (*models.User, error)
	SetProfilePicture(id uint, url string) (*models.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userServiceImpl) UpdateProfile(id uint, fullName string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(fullName); trimmed != "" {
		user.FullName = trimmed
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) SetProfilePicture(id uint, url string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	user.ProfilePicURL = url
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
