package apiv1

import (
	"tracker-backend/controllers"
	spacehandler "tracker-backend/lib/space/handler"
	apimodels "tracker-backend/models/api"
	spaceapimodels "tracker-backend/models/api/space"

	"github.com/gofiber/fiber/v2"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("org", func(router fiber.Router) {
		router.Post("register", controller.register)
	})
}

// @Summary Регистрация организации
// @Tags Регистрация организации
// @Description Создать организацию вместе с учетной записью администратора
// @Param	body				body		spaceapimodels.CreateOrganization	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org/register [post]
func (c *orgApiController) register(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateOrganization
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := spacehandler.Instance.CreateOrganizationSpace(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации организации")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}
