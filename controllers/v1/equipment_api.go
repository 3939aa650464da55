package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	equipmenthandler "crewtime-backend/lib/equipment"
	apimodels "crewtime-backend/models/api"
	equipmentapimodels "crewtime-backend/models/api/equipment"
)

type equipmentApiController struct {
	controllers.BaseAPIController
}

func InitEquipmentApiRouters(app *fiber.App) {
	controller := equipmentApiController{}
	app.Route("equipment", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get("qr/:qrCode", controller.getByQRCode)
	})
}

// @Summary Create equipment
// @Tags Equipment
// @Description Register a piece of equipment, optionally recording where it was hauled
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		equipmentapimodels.CreateEquipmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipment [post]
func (c *equipmentApiController) create(ctx *fiber.Ctx) error {
	var payload equipmentapimodels.CreateEquipmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := equipmenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create equipment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List equipment
// @Tags Equipment
// @Description Paged equipment list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]equipmentapimodels.EquipmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipment/list [post]
func (c *equipmentApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := equipmenthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list equipment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Find equipment by QR code
// @Tags Equipment
// @Description Look one piece of equipment up by its QR code
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   qrCode          	path    string  				    	true         "QR code"
// @Success 200 {object} apimodels.Response{data=equipmentapimodels.EquipmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipment/qr/{qrCode} [get]
func (c *equipmentApiController) getByQRCode(ctx *fiber.Ctx) error {
	qrCode, err := c.GetIDByKey(ctx, "qrCode")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := equipmenthandler.Instance.GetByQRCode(qrCode)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to find equipment")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("equipment not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
