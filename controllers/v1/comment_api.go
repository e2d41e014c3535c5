package apiv1

import (
	"tracker-backend/controllers"
	commenthandler "tracker-backend/lib/comment"
	"tracker-backend/middleware"
	apimodels "tracker-backend/models/api"
	commentapimodels "tracker-backend/models/api/comment"

	"github.com/gofiber/fiber/v2"
)

type commentApiController struct {
	controllers.BaseAPIController
}

func InitCommentApiRouters(app *fiber.App) {
	controller := commentApiController{}
	app.Route("comments", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Добавить комментарий
// @Tags Комментарии
// @Description Добавить комментарий к задаче, проекту или заявке на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		commentapimodels.CommentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/comments [post]
func (c *commentApiController) create(ctx *fiber.Ctx) error {
	var payload commentapimodels.CommentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	id, err := commenthandler.Instance.Create(spaceID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Комментарии сущности
// @Tags Комментарии
// @Description Дерево комментариев задачи, проекта или заявки на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		commentapimodels.CommentListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]commentapimodels.CommentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/comments/list [post]
func (c *commentApiController) list(ctx *fiber.Ctx) error {
	var payload commentapimodels.CommentListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := commenthandler.Instance.ListBySubject(spaceID, payload.SubjectType, payload.SubjectID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения комментариев")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удалить комментарий
// @Tags Комментарии
// @Description Удалить комментарий. Доступно только автору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/comments/{id} [delete]
func (c *commentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	err = commenthandler.Instance.Delete(spaceID, userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
