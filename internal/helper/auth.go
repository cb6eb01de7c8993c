package helper

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/BrickByte/lms_service/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is the single error returned for every session token
// failure; callers must not learn whether the signature or the expiry broke.
var ErrInvalidToken = errors.New("invalid session token")

type Auth struct {
	Secret   string
	TokenTTL time.Duration
}

func SetupAuth(secret string) Auth {
	return Auth{
		Secret:   secret,
		TokenTTL: 7 * 24 * time.Hour,
	}
}

func (a Auth) GenerateToken(userID uint, email, role string) (string, error) {
	if userID == 0 || email == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(a.TokenTTL).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.AuthResponse, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthResponse{}, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return dto.AuthResponse{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return dto.AuthResponse{}, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return dto.AuthResponse{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return dto.AuthResponse{}, ErrInvalidToken
	}

	out := dto.AuthResponse{
		UserID: uint(id),
		Email:  email,
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.Iat = iat
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.Expiry = exp
	}
	return out, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (dto.AuthResponse, error) {
	u := ctx.Locals("user")
	claims, ok := u.(dto.AuthResponse)
	if !ok {
		return dto.AuthResponse{}, errors.New("missing auth user in context")
	}
	return claims, nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid email or password")
	}
	return nil
}

// MintResetSecret returns the plaintext reset secret handed to the user
// and the sha256 hash that gets persisted. Only the hash ever hits storage.
func MintResetSecret() (plain string, hash string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.New("failed to generate reset token")
	}
	plain = hex.EncodeToString(buf)
	return plain, HashResetSecret(plain), nil
}

func HashResetSecret(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
