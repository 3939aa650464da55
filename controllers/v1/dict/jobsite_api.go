package dict

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	jobsiteprovider "crewtime-backend/lib/dicts/jobsite"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
	dictapimodels "crewtime-backend/models/api/dict"
)

type jobsiteDictApiController struct {
	controllers.BaseAPIController
}

func InitJobsiteDictApiRouters(app *fiber.App) {
	controller := jobsiteDictApiController{}
	app.Route("jobsite", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Get("qr/:qrCode", controller.getByQRCode)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", middleware.AdminRequired(), controller.update)
			idRouter.Delete("", middleware.AdminRequired(), controller.delete)
		})
	})
}

// @Summary List jobsites
// @Tags Dictionary. Jobsites
// @Description All jobsites with their cost codes
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobsiteView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite [get]
func (c *jobsiteDictApiController) list(ctx *fiber.Ctx) error {
	resp, err := jobsiteprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list jobsites")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a jobsite
// @Tags Dictionary. Jobsites
// @Description Create a jobsite
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dictapimodels.JobsiteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite [post]
func (c *jobsiteDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobsiteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobsiteprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create jobsite")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get a jobsite
// @Tags Dictionary. Jobsites
// @Description One jobsite by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.JobsiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite/{id} [get]
func (c *jobsiteDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := jobsiteprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load jobsite")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Find a jobsite by QR code
// @Tags Dictionary. Jobsites
// @Description Look a jobsite up by its QR code
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   qrCode          	path    string  				    	true         "QR code"
// @Success 200 {object} apimodels.Response{data=dictapimodels.JobsiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite/qr/{qrCode} [get]
func (c *jobsiteDictApiController) getByQRCode(ctx *fiber.Ctx) error {
	qrCode, err := c.GetIDByKey(ctx, "qrCode")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := jobsiteprovider.Instance.GetByQRCode(qrCode)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to find jobsite")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("jobsite not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a jobsite
// @Tags Dictionary. Jobsites
// @Description Update a jobsite
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		dictapimodels.JobsiteData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite/{id} [put]
func (c *jobsiteDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload dictapimodels.JobsiteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobsiteprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update jobsite")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a jobsite
// @Tags Dictionary. Jobsites
// @Description Delete a jobsite
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/jobsite/{id} [delete]
func (c *jobsiteDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = jobsiteprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete jobsite")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
