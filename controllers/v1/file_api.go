package apiv1

import (
	"io"
	"tracker-backend/controllers"
	fileshandler "tracker-backend/lib/files"
	"tracker-backend/middleware"
	apimodels "tracker-backend/models/api"
	filesapimodels "tracker-backend/models/api/files"

	"github.com/gofiber/fiber/v2"
)

type fileApiController struct {
	controllers.BaseAPIController
}

// предельный размер вложения
const maxUploadSize = 25 * 1024 * 1024

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Post("", middleware.BodyLimit(maxUploadSize), controller.upload)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.download)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Загрузить файл
// @Tags Файлы
// @Description Прикрепить файл к задаче, проекту или заявке на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"Файл"
// @Param   subject_type		formData	string 	true 	"Тип сущности (task/project/approval_request)"
// @Param   subject_id			formData	string 	true 	"ID сущности"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	subjectType := ctx.FormValue("subject_type")
	subjectID := ctx.FormValue("subject_id")
	if subjectType == "" || subjectID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана сущность файла"))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при чтении файла")
	}

	spaceID := middleware.GetUserSpace(ctx)
	userID := middleware.GetUserID(ctx)
	contentType := file.Header.Get(fiber.HeaderContentType)
	id, err := fileshandler.Instance.Upload(ctx.UserContext(), spaceID, userID, subjectType, subjectID, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Файлы сущности
// @Tags Файлы
// @Description Список файлов задачи, проекта или заявки на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		filesapimodels.FileListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/list [post]
func (c *fileApiController) list(ctx *fiber.Ctx) error {
	var payload filesapimodels.FileListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	spaceID := middleware.GetUserSpace(ctx)
	list, err := fileshandler.Instance.ListBySubject(spaceID, payload.SubjectType, payload.SubjectID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка файлов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачать файл
// @Tags Файлы
// @Description Скачать прикрепленный файл
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	rec, body, err := fileshandler.Instance.Download(ctx.UserContext(), spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания файла")
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Send(body)
}

// @Summary Удалить файл
// @Tags Файлы
// @Description Удалить прикрепленный файл
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/files/{id} [delete]
func (c *fileApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	spaceID := middleware.GetUserSpace(ctx)
	err = fileshandler.Instance.Delete(ctx.UserContext(), spaceID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
