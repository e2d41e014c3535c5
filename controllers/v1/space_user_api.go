package apiv1

import (
	"tracker-backend/controllers"
	spaceusershandler "tracker-backend/lib/space/users/handler"
	"tracker-backend/middleware"
	apimodels "tracker-backend/models/api"
	spaceapimodels "tracker-backend/models/api/space"

	"github.com/gofiber/fiber/v2"
)

type spaceUserController struct {
	controllers.BaseAPIController
}

func InitSpaceUserRouters(app *fiber.App) {
	controller := spaceUserController{}
	app.Route("users", func(usersRootRoute fiber.Router) {
		usersRootRoute.Get("", controller.listUsers)
		usersRootRoute.Post("", controller.createUser)
		usersRootRoute.Route(":id", func(usersIDRoute fiber.Router) {
			usersIDRoute.Get("", controller.getUserByID)
			usersIDRoute.Put("", controller.updateUser)
			usersIDRoute.Delete("", controller.deleteUser)
		})
	})
}

// @Summary Создать нового пользователя
// @Tags Пользователи space
// @Description Создать нового пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		spaceapimodels.CreateUser	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/users [post]
func (c *spaceUserController) createUser(ctx *fiber.Ctx) error {
	var payload spaceapimodels.CreateUser
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.SpaceID = middleware.GetUserSpace(ctx)
	err := spaceusershandler.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Список пользователей
// @Tags Пользователи space
// @Description Список пользователей организации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"Страница"
// @Param   limit				query		int		false	"Записей на странице"
// @Success 200 {object} apimodels.Response{data=[]spaceapimodels.SpaceUser}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/users [get]
func (c *spaceUserController) listUsers(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	page, limit := pagination.GetPage()
	spaceID := middleware.GetUserSpace(ctx)
	list, err := spaceusershandler.Instance.GetListUsers(spaceID, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получить пользователя
// @Tags Пользователи space
// @Description Получить пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 					path 		string  true 	"space user ID"
// @Success 200 {object} apimodels.Response{data=spaceapimodels.SpaceUser}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/users/{id} [get]
func (c *spaceUserController) getUserByID(ctx *fiber.Ctx) error {
	userID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	result, err := spaceusershandler.Instance.GetByID(spaceID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Обновить пользователя
// @Tags Пользователи space
// @Description Обновить пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 					path 		string  true 	"space user ID"
// @Param	body				body		spaceapimodels.UpdateUser	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/users/{id} [put]
func (c *spaceUserController) updateUser(ctx *fiber.Ctx) error {
	userID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload spaceapimodels.UpdateUser
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = spaceusershandler.Instance.UpdateUser(spaceID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить пользователя
// @Tags Пользователи space
// @Description Удалить пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 					path 		string  true 	"space user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/users/{id} [delete]
func (c *spaceUserController) deleteUser(ctx *fiber.Ctx) error {
	userID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = spaceusershandler.Instance.DeleteUser(spaceID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
