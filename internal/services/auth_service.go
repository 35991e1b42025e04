package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"inventori/internal/config"
	"inventori/internal/models"
	"inventori/internal/repository"
)

var (
	ErrEmailInUse         = errors.New("this email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var digitRegex = regexp.MustCompile(`\d`)

// Claims is the JWT payload for a user session.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(fullName, email, password, confirmPassword string) (*models.User, error)
	Login(email, password string) (string, *models.User, error)
	ChangePassword(userID uint, currentPassword, newPassword, confirmPassword string) error
	ValidateToken(tokenString string) (*Claims, error)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, configuration *config.Configuration) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		secret:   []byte(configuration.Auth.JWTSecret),
		tokenTTL: time.Duration(configuration.Auth.TokenTTLMins) * time.Minute,
	}
}

// ValidateSignUp mirrors the sign-up form rules: full name present, a sane
// email shape, a password of at least six characters containing a digit, and
// a matching confirmation.
func ValidateSignUp(fullName, email, password, confirmPassword string) error {
	if strings.TrimSpace(fullName) == "" {
		return errors.New("full name is required")
	}
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("please enter a valid email address")
	}
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if !digitRegex.MatchString(password) {
		return errors.New("password must contain at least one number")
	}
	if confirmPassword == "" {
		return errors.New("please confirm your password")
	}
	if password != confirmPassword {
		return errors.New("passwords do not match")
	}
	return nil
}

func (s *authServiceImpl) Register(fullName, email, password, confirmPassword string) (*models.User, error) {
	if err := ValidateSignUp(fullName, email, password, confirmPassword); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authServiceImpl) ChangePassword(userID uint, currentPassword, newPassword, confirmPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}
	if len(newPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if !digitRegex.MatchString(newPassword) {
		return errors.New("password must contain at least one number")
	}
	if confirmPassword == "" {
		return errors.New("please confirm your password")
	}
	if newPassword != confirmPassword {
		return errors.New("passwords do not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Update(user)
}

func (s *authServiceImpl) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "inventori",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authServiceImpl) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
