package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/BrickByte/lms_service/internal/helper/utils"
	"github.com/BrickByte/lms_service/internal/interfaces"
	"github.com/BrickByte/lms_service/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LeadService interface {
	Capture(input dto.LeadRequest) (*domain.Lead, error)
}

type leadService struct {
	repo     repository.LeadRepository
	producer interfaces.ProducerHandler
}

func NewLeadService(repo repository.LeadRepository, producer interfaces.ProducerHandler) LeadService {
	return &leadService{
		repo:     repo,
		producer: producer,
	}
}

func validOrg(org string) bool {
	switch org {
	case domain.OrgCRC, domain.OrgM3M, domain.OrgGodrej, domain.OrgBotani:
		return true
	}
	return false
}

func (s *leadService) Capture(input dto.LeadRequest) (*domain.Lead, error) {
	fullName := strings.ToLower(strings.TrimSpace(input.FullName))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)
	org := strings.ToLower(strings.TrimSpace(input.Org))

	if fullName == "" || email == "" || phone == "" {
		return nil, apperr.Validation("Please fill in all fields")
	}
	if !utils.ValidFullName(fullName) {
		return nil, apperr.Validation("Full name must be between 5 and 50 characters")
	}
	if !utils.ValidEmail(email) {
		return nil, apperr.Validation("Please fill in a valid email address")
	}
	if !utils.ValidPhone(phone) {
		return nil, apperr.Validation("Please fill in a valid phone number")
	}
	if org != "" && !validOrg(org) {
		return nil, apperr.Validation("Invalid org")
	}

	// one lead per (email, org)
	if existing, err := s.repo.FindLeadByEmailAndOrg(email, org); err == nil && existing != nil && existing.ID != 0 {
		return nil, apperr.Conflict("Email already registered")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("User not registered, Server issue")
	}

	lead, err := s.repo.CreateLead(&domain.Lead{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Org:      org,
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, apperr.Internal("User not registered, Server issue")
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"lead_id":%d,"email":"%s","org":"%s"}`, lead.ID, lead.Email, lead.Org)
		_ = s.producer.PublishMessage([]byte("lead.created"), []byte(payload))
	}

	log.Info().Uint("lead_id", lead.ID).Str("org", lead.Org).Msg("lead captured")
	return lead, nil
}
