package middleware

import (
	apimodels "tracker-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// BodyLimit отклоняет запросы с телом больше заданного размера,
// до передачи в обработчик
func BodyLimit(maxBytes int) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if len(ctx.Body()) > maxBytes {
			return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError("превышен допустимый размер запроса"))
		}
		return ctx.Next()
	}
}
