package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/domain"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/BrickByte/lms_service/internal/helper"
	"github.com/BrickByte/lms_service/internal/helper/utils"
	"github.com/BrickByte/lms_service/internal/interfaces"
	"github.com/BrickByte/lms_service/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type UserService interface {
	// Auth
	Register(ctx context.Context, input dto.RegisterRequest, avatarPath string) (*domain.User, string, error)
	Login(input dto.UserLogin) (*domain.User, string, error)
	ForgotPassword(email string, resetBaseURL string) error
	ResetPassword(token, password string) error
	ChangePassword(userID uint, oldPassword, newPassword string) error

	// Profile
	GetProfile(userID uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, input dto.UpdateUserRequest, avatarPath string) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	uploader interfaces.Uploader
	mailer   interfaces.Mailer
	producer interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	auth helper.Auth,
	uploader interfaces.Uploader,
	mailer interfaces.Mailer,
	producer interfaces.ProducerHandler,
) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		uploader: uploader,
		mailer:   mailer,
		producer: producer,
	}
}

func validRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee:
		return true
	}
	return false
}

func validBranch(branch string) bool {
	switch branch {
	case domain.BranchMarketing, domain.BranchEstate, domain.BranchMining:
		return true
	}
	return false
}

func (u *userService) Register(ctx context.Context, input dto.RegisterRequest, avatarPath string) (*domain.User, string, error) {
	fullName := strings.ToLower(strings.TrimSpace(input.FullName))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)
	role := strings.ToUpper(strings.TrimSpace(input.Role))
	branch := strings.ToUpper(strings.TrimSpace(input.Branch))
	profile := strings.ToLower(strings.TrimSpace(input.Profile))

	if fullName == "" || email == "" || phone == "" || input.Password == "" {
		return nil, "", apperr.Validation("Please fill in all fields")
	}
	if !utils.ValidFullName(fullName) {
		return nil, "", apperr.Validation("Full name must be between 5 and 50 characters")
	}
	if !utils.ValidEmail(email) {
		return nil, "", apperr.Validation("Please fill in a valid email address")
	}
	if !utils.ValidPhone(phone) {
		return nil, "", apperr.Validation("Please fill in a valid phone number")
	}
	if len(input.Password) < 8 {
		return nil, "", apperr.Validation("Password must be at least 8 characters long")
	}
	if role != "" && !validRole(role) {
		return nil, "", apperr.Validation("Invalid role")
	}
	if branch != "" && !validBranch(branch) {
		return nil, "", apperr.Validation("Invalid branch")
	}

	if existing, err := u.repo.FindUserByEmail(email); err == nil && existing != nil && existing.ID != 0 {
		return nil, "", apperr.Conflict("User already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.Internal("User registeration failed, Please try again later")
	}

	hashedPassword, err := u.auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperr.Internal("Failed to hash password")
	}

	todos := make([]domain.TodoItem, 0, len(input.Todo))
	for _, t := range input.Todo {
		status := strings.ToUpper(strings.TrimSpace(t.Status))
		if status == "" {
			status = domain.TodoPending
		}
		star := strings.ToUpper(strings.TrimSpace(t.Star))
		if star == "" {
			star = domain.TodoStarNo
		}
		todos = append(todos, domain.TodoItem{
			Title:  t.Title,
			Status: status,
			Star:   star,
		})
	}

	newUser := &domain.User{
		FullName:        fullName,
		Email:           email,
		Phone:           phone,
		PasswordHash:    hashedPassword,
		Role:            role,
		Profile:         profile,
		Branch:          branch,
		AvatarPublicID:  email,
		AvatarSecureURL: domain.DefaultAvatarURL,
		Todos:           todos,
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, "", apperr.Conflict("User already exists")
		}
		return nil, "", apperr.Internal("User registeration failed, Please try again later")
	}

	// Avatar upload happens after the record exists; an upload failure leaves
	// the user with the placeholder pair (accepted partial outcome).
	if avatarPath != "" {
		res, upErr := u.uploader.UploadFile(ctx, "user", avatarPath)
		if upErr != nil {
			log.Error().Err(upErr).Uint("user_id", usr.ID).Msg("avatar upload failed")
			return nil, "", apperr.Upload("Problem with file upload")
		}
		usr.AvatarPublicID = res.PublicID
		usr.AvatarSecureURL = res.SecureURL
		if err := u.repo.SaveUser(usr); err != nil {
			return nil, "", apperr.Internal("User registeration failed, Please try again later")
		}
		removeTempFile(avatarPath)
	}

	if u.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"email":"%s"}`, usr.ID, usr.Email)
		_ = u.producer.PublishMessage([]byte("user.registered"), []byte(payload))
	}

	token, err := u.auth.GenerateToken(usr.ID, usr.Email, usr.Role)
	if err != nil {
		return nil, "", apperr.Internal("Could not generate token")
	}

	log.Info().Uint("user_id", usr.ID).Str("email", usr.Email).Msg("user registered")
	return usr, token, nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password

	if email == "" || password == "" {
		return nil, "", apperr.Validation("Please fill in all fields")
	}

	// same message for unknown email and wrong password
	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, "", apperr.Auth("Invalid email or password")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", apperr.Auth("Invalid email or password")
	}

	token, err := u.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperr.Internal("Could not generate token")
	}

	log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

func (u *userService) GetProfile(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, apperr.Validation("Invalid user id")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User does not exist")
		}
		return nil, apperr.Internal("Failed to fetch User profile")
	}

	return user, nil
}

func (u *userService) ForgotPassword(email string, resetBaseURL string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return apperr.Validation("Please enter your email")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil {
		return apperr.NotFound("User not found")
	}

	plain, hash, err := helper.MintResetSecret()
	if err != nil {
		return apperr.Internal("Failed to generate reset token")
	}

	exp := time.Now().Add(resetTokenTTL)
	user.ResetTokenHash = hash
	user.ResetTokenExpiresAt = &exp
	if err := u.repo.SaveUser(user); err != nil {
		return apperr.Internal("Failed to save reset token")
	}

	resetURL := resetBaseURL + plain
	if err := u.mailer.SendResetEmail(user.Email, resetURL); err != nil {
		// roll back so the half-issued token can never be consumed
		user.ResetTokenHash = ""
		user.ResetTokenExpiresAt = nil
		if saveErr := u.repo.SaveUser(user); saveErr != nil {
			log.Error().Err(saveErr).Uint("user_id", user.ID).Msg("reset token rollback failed")
		}
		return apperr.Email("Email could not be sent")
	}

	log.Info().Uint("user_id", user.ID).Msg("password reset email sent")
	return nil
}

func (u *userService) ResetPassword(token, password string) error {
	token = strings.TrimSpace(token)
	if token == "" || password == "" {
		return apperr.Validation("Please enter your password")
	}
	if len(password) < 8 {
		return apperr.Validation("Password must be at least 8 characters long")
	}

	hash := helper.HashResetSecret(token)
	user, err := u.repo.FindUserByResetToken(hash, time.Now())
	if err != nil || user == nil {
		return apperr.InvalidToken("Invalid token or token has expired. Please try again")
	}
	if user.ResetTokenExpiresAt == nil || !time.Now().Before(*user.ResetTokenExpiresAt) {
		return apperr.InvalidToken("Invalid token or token has expired. Please try again")
	}

	hashedPassword, err := u.auth.HashPassword(password)
	if err != nil {
		return apperr.Internal("Failed to hash password")
	}

	user.PasswordHash = hashedPassword
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = nil

	if err := u.repo.SaveUser(user); err != nil {
		return apperr.Internal("Failed to update password")
	}

	log.Info().Uint("user_id", user.ID).Msg("password reset completed")
	return nil
}

func (u *userService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperr.Validation("Please enter your old and new password")
	}
	if len(newPassword) < 8 {
		return apperr.Validation("Password must be at least 8 characters long")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return apperr.NotFound("User does not exist")
	}

	if err := u.auth.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return apperr.Auth("Old password is incorrect")
	}

	hashedPassword, err := u.auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal("Failed to hash password")
	}

	user.PasswordHash = hashedPassword
	if err := u.repo.SaveUser(user); err != nil {
		return apperr.Internal("Failed to update password")
	}

	return nil
}

func (u *userService) UpdateProfile(ctx context.Context, userID uint, input dto.UpdateUserRequest, avatarPath string) (*domain.User, error) {
	if userID == 0 {
		return nil, apperr.Validation("Invalid user id")
	}

	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return nil, apperr.NotFound("User does not exist")
	}

	if input.FullName != nil {
		fn := strings.ToLower(strings.TrimSpace(*input.FullName))
		if !utils.ValidFullName(fn) {
			return nil, apperr.Validation("Full name must be between 5 and 50 characters")
		}
		user.FullName = fn
	}

	if avatarPath != "" {
		res, upErr := u.uploader.UploadFile(ctx, "lms", avatarPath)
		if upErr != nil {
			log.Error().Err(upErr).Uint("user_id", user.ID).Msg("avatar upload failed")
			return nil, apperr.Upload("Problem with file upload")
		}

		// destroy the old image only after the new one is live; best effort
		oldPublicID := user.AvatarPublicID
		if oldPublicID != "" && oldPublicID != user.Email {
			if err := u.uploader.Destroy(ctx, oldPublicID); err != nil {
				log.Warn().Err(err).Str("public_id", oldPublicID).Msg("old avatar destroy failed")
			}
		}

		user.AvatarPublicID = res.PublicID
		user.AvatarSecureURL = res.SecureURL
		removeTempFile(avatarPath)
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, apperr.Internal("Failed to update user")
	}

	return user, nil
}

func removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("temp file cleanup failed")
	}
}
