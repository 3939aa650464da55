package apiv1

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"crewtime-backend/controllers"
	filestorage "crewtime-backend/lib/file-storage"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
)

type storageApiController struct {
	controllers.BaseAPIController
}

func InitStorageApiRouters(app *fiber.App) {
	controller := storageApiController{}
	app.Route("storage", func(router fiber.Router) {
		router.Post("upload", controller.upload)
		router.Get("download", controller.download)
		router.Delete("delete", controller.delete)
	})
}

// @Summary Upload a file
// @Tags Storage
// @Description Upload a binary file into the user's folder in object storage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   folder				query	string	true	"target folder"
// @Param   file		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/storage/upload [post]
func (c *storageApiController) upload(ctx *fiber.Ctx) error {
	folder := ctx.Query("folder")
	if folder == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("folder is required"))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()

	userID := middleware.GetUserID(ctx)
	contentType := file.Header.Get(fiber.HeaderContentType)
	objectKey, err := filestorage.Instance.UploadFile(ctx.UserContext(), userID, folder, file.Filename, contentType, buffer, file.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(objectKey))
}

// @Summary Download a file
// @Tags Storage
// @Description Download a file from the user's folder in object storage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   folder				query	string	true	"folder"
// @Param   name				query	string	true	"file name"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/storage/download [get]
func (c *storageApiController) download(ctx *fiber.Ctx) error {
	folder, name := ctx.Query("folder"), ctx.Query("name")
	if folder == "" || name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("folder and name are required"))
	}

	userID := middleware.GetUserID(ctx)
	body, err := filestorage.Instance.GetFile(ctx.UserContext(), userID, folder, name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to download file")
	}
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Delete a file
// @Tags Storage
// @Description Delete a file from the user's folder in object storage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   folder				query	string	true	"folder"
// @Param   name				query	string	true	"file name"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/storage/delete [delete]
func (c *storageApiController) delete(ctx *fiber.Ctx) error {
	folder, name := ctx.Query("folder"), ctx.Query("name")
	if folder == "" || name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("folder and name are required"))
	}

	userID := middleware.GetUserID(ctx)
	if err := filestorage.Instance.DeleteFile(ctx.UserContext(), userID, folder, name); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
