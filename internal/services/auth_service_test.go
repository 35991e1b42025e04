package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"inventori/internal/config"
	"inventori/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, ok := args.Get(0).(*models.User)
	if !ok {
		return nil, args.Error(1)
	}
	return user, args.Error(1)
}

func testAuthConfig() *config.Configuration {
	return &config.Configuration{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLMins: 60},
	}
}

func TestValidateSignUp(t *testing.T) {
	assert.NoError(t, ValidateSignUp("Dana Cruz", "dana@example.com", "secret1", "secret1"))

	assert.Error(t, ValidateSignUp("", "dana@example.com", "secret1", "secret1"))
	assert.Error(t, ValidateSignUp("Dana Cruz", "not-an-email", "secret1", "secret1"))
	assert.Error(t, ValidateSignUp("Dana Cruz", "dana@example.com", "sec1", "sec1"))
	assert.Error(t, ValidateSignUp("Dana Cruz", "dana@example.com", "nodigits", "nodigits"))
	assert.Error(t, ValidateSignUp("Dana Cruz", "dana@example.com", "secret1", "secret2"))
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	mockRepo.On("FindByEmail", "dana@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := service.Register("Dana Cruz", "dana@example.com", "secret1", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, "Dana Cruz", user.FullName)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailInUse(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	existing := &models.User{BaseModel: models.BaseModel{ID: 1}, Email: "dana@example.com"}
	mockRepo.On("FindByEmail", "dana@example.com").Return(existing, nil)

	user, err := service.Register("Dana Cruz", "dana@example.com", "secret1", "secret1")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, Email: "dana@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "dana@example.com").Return(user, nil)

	token, loggedIn, err := service.Login("dana@example.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), loggedIn.ID)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, Email: "dana@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "dana@example.com").Return(user, nil)

	token, loggedIn, err := service.Login("dana@example.com", "wrong")

	assert.Empty(t, token)
	assert.Nil(t, loggedIn)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	mockRepo.On("FindByEmail", "nobody@example.com").Return(nil, nil)

	_, _, err := service.Login("nobody@example.com", "secret1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	otherService := NewAuthService(mockRepo, &config.Configuration{
		Auth: config.AuthConfig{JWTSecret: "other-secret", TokenTTLMins: 60},
	})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, Email: "dana@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "dana@example.com").Return(user, nil)

	token, _, err := otherService.Login("dana@example.com", "secret1")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, PasswordHash: string(hash)}
	mockRepo.On("FindByID", uint(7)).Return(user, nil)
	mockRepo.On("Update", user).Return(nil)

	err := service.ChangePassword(7, "secret1", "newpass2", "newpass2")

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass2")))
}

func TestAuthService_ChangePassword_ConfirmMismatch(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, PasswordHash: string(hash)}
	mockRepo.On("FindByID", uint(7)).Return(user, nil)

	err := service.ChangePassword(7, "secret1", "newpass2", "newpass3")
	assert.Error(t, err)

	err = service.ChangePassword(7, "secret1", "newpass2", "")
	assert.Error(t, err)

	// The stored hash is untouched on a rejected change.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, testAuthConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: 7}, PasswordHash: string(hash)}
	mockRepo.On("FindByID", uint(7)).Return(user, nil)

	err := service.ChangePassword(7, "wrong", "newpass2", "newpass2")

	assert.Error(t, err)
}
