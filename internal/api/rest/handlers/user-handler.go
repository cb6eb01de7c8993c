package handlers

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BrickByte/lms_service/internal/api/rest/middleware"
	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/BrickByte/lms_service/internal/helper"
	"github.com/BrickByte/lms_service/internal/helper/utils"
	"github.com/BrickByte/lms_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	uploadDir        = "uploads"
	maxAvatarSize    = 5 * 1024 * 1024
	sessionCookieTTL = 7 * 24 * time.Hour
)

var allowedAvatarExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UserHandler struct {
	svc           services.UserService
	auth          helper.Auth
	secureCookies bool
}

func NewUserHandler(svc services.UserService, auth helper.Auth, secureCookies bool) *UserHandler {
	return &UserHandler{
		svc:           svc,
		auth:          auth,
		secureCookies: secureCookies,
	}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	user := app.Group("/api/v1/user")

	user.Post("/register", h.Register)
	user.Post("/login", h.Login)
	user.Get("/logout", h.Logout)
	user.Post("/forgot", h.ForgotPassword)
	user.Post("/reset/:token", h.ResetPassword)

	gate := middleware.AuthMiddleware(h.auth)
	user.Get("/me", gate, h.Me)
	user.Post("/change-password", gate, h.ChangePassword)
	user.Put("/update/:id", gate, h.UpdateUser)
}

func (h *UserHandler) setSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *UserHandler) clearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		MaxAge:   0,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

// saveAvatarTemp stages an uploaded avatar under uploads/ before the remote
// upload; the service removes the file once Cloudinary has it.
func (h *UserHandler) saveAvatarTemp(ctx *fiber.Ctx) (string, error) {
	file, err := ctx.FormFile("avatar")
	if err != nil || file == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedAvatarExt[ext] {
		return "", apperr.Validation("Only jpg/jpeg/png/webp files are allowed")
	}
	if file.Size > maxAvatarSize {
		return "", apperr.Validation("File too large (max 5MB)")
	}

	path := filepath.Join(uploadDir, uuid.NewString()+ext)
	if err := ctx.SaveFile(file, path); err != nil {
		return "", apperr.Internal("Cannot save uploaded file")
	}
	return path, nil
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please provide valid inputs")
	}

	avatarPath, err := h.saveAvatarTemp(ctx)
	if err != nil {
		return err
	}

	user, token, err := h.svc.Register(ctx.Context(), requestBody, avatarPath)
	if err != nil {
		return err
	}

	h.setSessionCookie(ctx, token)
	return utils.ResponseSuccessData(ctx, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"user": user,
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please fill in all fields")
	}

	user, token, err := h.svc.Login(requestBody)
	if err != nil {
		return err
	}

	h.setSessionCookie(ctx, token)
	return utils.ResponseSuccessData(ctx, fiber.StatusOK, "User logged in successfully", fiber.Map{
		"user": user,
	})
}

func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	h.clearSessionCookie(ctx)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "User logged out successfully")
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return apperr.Unauthenticated()
	}

	user, err := h.svc.GetProfile(claims.UserID)
	if err != nil {
		return err
	}

	return utils.ResponseSuccessData(ctx, fiber.StatusOK, "User profile fetched successfully", fiber.Map{
		"user": user,
	})
}

func (h *UserHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please enter your email")
	}

	resetBaseURL := ctx.BaseURL() + "/api/v1/user/reset/"
	if err := h.svc.ForgotPassword(requestBody.Email, resetBaseURL); err != nil {
		return err
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Email sent to "+strings.ToLower(strings.TrimSpace(requestBody.Email))+" successfully")
}

func (h *UserHandler) ResetPassword(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	var requestBody dto.ResetPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please enter your password")
	}

	if err := h.svc.ResetPassword(token, requestBody.Password); err != nil {
		return err
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password updated successfully")
}

func (h *UserHandler) ChangePassword(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return apperr.Unauthenticated()
	}

	var requestBody dto.ChangePasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please enter your old and new password")
	}

	if err := h.svc.ChangePassword(claims.UserID, requestBody.OldPassword, requestBody.NewPassword); err != nil {
		return err
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Password updated successfully")
}

func (h *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return apperr.Validation("Invalid user id")
	}

	var requestBody dto.UpdateUserRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return apperr.Validation("Please provide valid inputs")
	}

	avatarPath, err := h.saveAvatarTemp(ctx)
	if err != nil {
		return err
	}

	user, err := h.svc.UpdateProfile(ctx.Context(), uint(id), requestBody, avatarPath)
	if err != nil {
		return err
	}

	return utils.ResponseSuccessData(ctx, fiber.StatusOK, "User updated successfully", fiber.Map{
		"user": user,
	})
}
