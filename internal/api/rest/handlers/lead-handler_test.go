package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BrickByte/lms_service/internal/api/rest/handlers"
	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLeadService struct{ mock.Mock }

func (m *MockLeadService) Capture(input dto.LeadRequest) (*domain.Lead, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func TestGenerateLeadHandler(t *testing.T) {
	svc := &MockLeadService{}
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	handlers.NewLeadHandler(svc).SetupRoutes(app)

	svc.On("Capture", dto.LeadRequest{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "1234567890",
		Org:      "crc",
	}).Return(&domain.Lead{ID: 3, FullName: "jane doe", Email: "jane@x.com", Phone: "1234567890", Org: "crc"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lead/",
		strings.NewReader(`{"fullName":"Jane Doe","email":"jane@x.com","phone":"1234567890","org":"crc"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Successfully Submitted")
	assert.Contains(t, string(out), `"jane@x.com"`)
}

func TestGenerateLeadHandler_DuplicateConflict(t *testing.T) {
	svc := &MockLeadService{}
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	handlers.NewLeadHandler(svc).SetupRoutes(app)

	svc.On("Capture", mock.Anything).Return(nil, apperr.Conflict("Email already registered"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lead/",
		strings.NewReader(`{"fullName":"Jane Doe","email":"jane@x.com","phone":"1234567890","org":"crc"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"success":false`)
	assert.Contains(t, string(out), "Email already registered")
}
