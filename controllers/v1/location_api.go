package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	locationhandler "crewtime-backend/lib/location"
	connectionhub "crewtime-backend/lib/ws/connection-hub"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
	locationapimodels "crewtime-backend/models/api/location"
	wsmodels "crewtime-backend/models/ws"
)

type locationApiController struct {
	controllers.BaseAPIController
}

func InitLocationApiRouters(app *fiber.App) {
	controller := locationApiController{}
	app.Route("location", func(router fiber.Router) {
		router.Post("", controller.ingest)
		router.Get("latest", controller.latest)
		router.Post("history", controller.history)
		router.Get("latest/:userId", middleware.ManagerRequired(), controller.latestByUser)
		router.Post("history/:userId", middleware.ManagerRequired(), controller.historyByUser)
	})
}

// @Summary Report a location sample
// @Tags Location
// @Description Store the authenticated employee's current location
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		locationapimodels.LocationPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=locationapimodels.LocationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location [post]
func (c *locationApiController) ingest(ctx *fiber.Ctx) error {
	var payload locationapimodels.LocationPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := locationhandler.ValidatePayload(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	view, err := locationhandler.Instance.Save(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save location")
	}
	if connectionhub.Instance != nil {
		connectionhub.Instance.Broadcast(wsmodels.LocationUpdate{
			UserID:   userID,
			UserName: middleware.GetUserName(ctx),
			Location: view,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Own latest location
// @Tags Location
// @Description Latest stored location of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=locationapimodels.LocationView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/latest [get]
func (c *locationApiController) latest(ctx *fiber.Ctx) error {
	return c.sendLatest(ctx, middleware.GetUserID(ctx))
}

// @Summary Latest location of an employee
// @Tags Location
// @Description Latest stored location of the given employee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userId          	path    string  				    	true         "employee ID"
// @Success 200 {object} apimodels.Response{data=locationapimodels.LocationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/latest/{userId} [get]
func (c *locationApiController) latestByUser(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendLatest(ctx, userID)
}

func (c *locationApiController) sendLatest(ctx *fiber.Ctx, userID string) error {
	view, err := locationhandler.Instance.Latest(ctx.UserContext(), userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load latest location")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no location reported yet"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Own location history
// @Tags Location
// @Description Cursor-paged location history of the authenticated user, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		locationapimodels.HistoryRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]locationapimodels.LocationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/history [post]
func (c *locationApiController) history(ctx *fiber.Ctx) error {
	return c.sendHistory(ctx, middleware.GetUserID(ctx))
}

// @Summary Location history of an employee
// @Tags Location
// @Description Cursor-paged location history of the given employee, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userId          	path    string  				    	true         "employee ID"
// @Param	body				body		locationapimodels.HistoryRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]locationapimodels.LocationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/history/{userId} [post]
func (c *locationApiController) historyByUser(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.sendHistory(ctx, userID)
}

func (c *locationApiController) sendHistory(ctx *fiber.Ctx, userID string) error {
	var payload locationapimodels.HistoryRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := locationhandler.Instance.History(ctx.UserContext(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load location history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
