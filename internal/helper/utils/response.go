package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// ResponseSuccessData merges extra payload fields (user, lead, ...) into the
// standard {success, message} envelope.
func ResponseSuccessData(ctx *fiber.Ctx, status int, msg string, data fiber.Map) error {
	body := fiber.Map{
		"success": true,
		"message": msg,
	}
	for k, v := range data {
		body[k] = v
	}
	return ctx.Status(status).JSON(body)
}
