package repository

import (
	"errors"
	"time"

	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindUserByResetToken(hash string, now time.Time) (*domain.User, error)
	SaveUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// IsDuplicateKey reports whether err is a postgres unique violation, which
// the service layer surfaces as a conflict on email or phone.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Error().Err(err).Msg("create user failed")
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.Preload("Todos").First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.Preload("Todos").First(user, userID).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// FindUserByResetToken matches on the stored sha256 hash and a still-valid
// expiry; a consumed or expired token never matches.
func (r *userRepository) FindUserByResetToken(hash string, now time.Time) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.
		Where("reset_token_hash = ? AND reset_token_expires_at > ?", hash, now).
		First(user).Error
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("save user failed")
		return err
	}
	return nil
}
