package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventori/internal/models"
	"inventori/internal/services"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ownerID uint) (services.BoxStats, []models.Box) {
	args := m.Called(ownerID)
	return args.Get(0).(services.BoxStats), args.Get(1).([]models.Box)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	app := testApp()
	mockService := new(MockDashboardService)
	handler := NewDashboardHandler(mockService)

	app.Get("/dashboard", handler.GetDashboard)

	modified := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	recent := []models.Box{
		{BaseModel: models.BaseModel{ID: 2}, Name: "Desk Drawer", Category: models.CategoryDevices, LastModifiedAt: &modified},
		{BaseModel: models.BaseModel{ID: 1}, Name: "Attic Crate", Category: models.CategoryPapers},
	}
	stats := services.BoxStats{TotalBoxes: 4, MostUsedCategory: models.CategoryDevices}
	mockService.On("GetDashboard", uint(1)).Return(stats, recent)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var payload struct {
		TotalBoxes       int     `json:"total_boxes"`
		MostUsedCategory *string `json:"most_used_category"`
		RecentBoxes      []struct {
			Name          string `json:"name"`
			CategoryEmoji string `json:"category_emoji"`
			FormattedDate string `json:"formatted_last_modified"`
		} `json:"recent_boxes"`
	}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, 4, payload.TotalBoxes)
	assert.NotNil(t, payload.MostUsedCategory)
	assert.Equal(t, "Devices", *payload.MostUsedCategory)
	assert.Len(t, payload.RecentBoxes, 2)
	assert.Equal(t, "Desk Drawer", payload.RecentBoxes[0].Name)
	assert.Equal(t, "💻", payload.RecentBoxes[0].CategoryEmoji)
	assert.Equal(t, "May 20, 2025", payload.RecentBoxes[0].FormattedDate)
	mockService.AssertExpectations(t)
}

func TestDashboardHandler_GetDashboard_Empty(t *testing.T) {
	app := testApp()
	mockService := new(MockDashboardService)
	handler := NewDashboardHandler(mockService)

	app.Get("/dashboard", handler.GetDashboard)

	mockService.On("GetDashboard", uint(1)).Return(services.BoxStats{}, []models.Box{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, float64(0), payload["total_boxes"])
	assert.Nil(t, payload["most_used_category"])
}
