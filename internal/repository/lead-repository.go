package repository

import (
	"errors"

	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LeadRepository interface {
	CreateLead(lead *domain.Lead) (*domain.Lead, error)
	FindLeadByEmailAndOrg(email, org string) (*domain.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateLead(lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, errors.New("nil lead")
	}

	if err := r.db.Create(lead).Error; err != nil {
		log.Error().Err(err).Msg("create lead failed")
		return nil, err
	}

	return lead, nil
}

func (r *leadRepository) FindLeadByEmailAndOrg(email, org string) (*domain.Lead, error) {
	lead := &domain.Lead{}

	if err := r.db.Where("email = ? AND org = ?", email, org).First(lead).Error; err != nil {
		return nil, err
	}

	return lead, nil
}
