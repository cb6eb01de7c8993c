package services_test

import (
	"testing"

	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/BrickByte/lms_service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockLeadRepo struct{ mock.Mock }

func (m *MockLeadRepo) CreateLead(lead *domain.Lead) (*domain.Lead, error) {
	args := m.Called(lead)
	if args.Get(0) == nil {
		if args.Error(1) != nil {
			return nil, args.Error(1)
		}
		return lead, nil
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepo) FindLeadByEmailAndOrg(email, org string) (*domain.Lead, error) {
	args := m.Called(email, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func leadInput() dto.LeadRequest {
	return dto.LeadRequest{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "1234567890",
		Org:      "crc",
	}
}

func TestCapture_Success(t *testing.T) {
	repo := &MockLeadRepo{}
	producer := &MockProducer{}
	svc := services.NewLeadService(repo, producer)

	repo.On("FindLeadByEmailAndOrg", "jane@x.com", "crc").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateLead", mock.AnythingOfType("*domain.Lead")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Lead).ID = 3
		}).
		Return(nil, nil)
	producer.On("PublishMessage", []byte("lead.created"), mock.Anything).Return(nil)

	lead, err := svc.Capture(leadInput())
	require.NoError(t, err)
	assert.Equal(t, uint(3), lead.ID)
	assert.Equal(t, "jane doe", lead.FullName)
	assert.Equal(t, domain.OrgCRC, lead.Org)
	producer.AssertCalled(t, "PublishMessage", []byte("lead.created"), mock.Anything)
}

func TestCapture_MissingFields(t *testing.T) {
	svc := services.NewLeadService(&MockLeadRepo{}, &MockProducer{})

	input := leadInput()
	input.Phone = ""
	_, err := svc.Capture(input)
	assert.Equal(t, 400, appErrStatus(t, err))
	assert.EqualError(t, err, "Please fill in all fields")

	input = leadInput()
	input.Org = "acme"
	_, err = svc.Capture(input)
	assert.Equal(t, 400, appErrStatus(t, err))
}

func TestCapture_DuplicatePerOrg(t *testing.T) {
	repo := &MockLeadRepo{}
	svc := services.NewLeadService(repo, &MockProducer{})

	repo.On("FindLeadByEmailAndOrg", "jane@x.com", "crc").
		Return(&domain.Lead{ID: 1, Email: "jane@x.com", Org: "crc"}, nil)

	_, err := svc.Capture(leadInput())
	assert.Equal(t, 400, appErrStatus(t, err))
	assert.EqualError(t, err, "Email already registered")
	repo.AssertNotCalled(t, "CreateLead", mock.Anything)
}
