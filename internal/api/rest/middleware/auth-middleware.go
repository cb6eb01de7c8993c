package middleware

import (
	"strings"

	"github.com/BrickByte/lms_service/internal/apperr"
	"github.com/BrickByte/lms_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the session JWT.
const SessionCookie = "token"

// AuthMiddleware is the session gate: it extracts the token cookie, verifies
// it and attaches the resolved claims for downstream handlers. Every failure
// mode gets the same 401 so callers cannot tell missing from expired from
// tampered.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies(SessionCookie))
		if tokenStr == "" {
			return apperr.Unauthenticated()
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return apperr.Unauthenticated()
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}
