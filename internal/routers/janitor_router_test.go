package routers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"inventori/cmd"
	"inventori/internal/models"
	"inventori/internal/services"
)

type stubAuthService struct{}

func (stubAuthService) Register(fullName, email, password, confirmPassword string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (stubAuthService) Login(email, password string) (string, *models.User, error) {
	return "", nil, errors.New("not implemented")
}

func (stubAuthService) ChangePassword(userID uint, currentPassword, newPassword, confirmPassword string) error {
	return errors.New("not implemented")
}

func (stubAuthService) ValidateToken(tokenString string) (*services.Claims, error) {
	return nil, errors.New("invalid token")
}

func TestJanitorCleanRequiresAuth(t *testing.T) {
	app := fiber.New()
	server := &cmd.Server{AuthService: stubAuthService{}}
	SetupJanitorRouter(app, server)

	req := httptest.NewRequest(http.MethodPost, "/janitor/clean", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/janitor/clean", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
