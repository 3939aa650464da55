package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	usershandler "crewtime-backend/lib/users"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
	userapimodels "crewtime-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("personnel", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Post("list", middleware.ManagerRequired(), controller.list)
		router.Get(":id", middleware.ManagerRequired(), controller.get)
		router.Delete(":id", middleware.AdminRequired(), controller.deactivate)
		router.Put("settings", controller.updateSettings)
		router.Put("contacts", controller.updateContacts)
	})
}

// @Summary Create an employee
// @Tags Personnel
// @Description Register an employee account with default settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.CreateUserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload userapimodels.CreateUserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create employee")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List employees
// @Tags Personnel
// @Description Paged employee list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel/list [post]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := usershandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get an employee
// @Tags Personnel
// @Description One employee profile by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Deactivate an employee
// @Tags Personnel
// @Description Mark the employee inactive; the account can no longer log in
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel/{id} [delete]
func (c *userApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = usershandler.Instance.Deactivate(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to deactivate employee")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update own settings
// @Tags Personnel
// @Description Partial update of the authenticated user's settings
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.SettingsUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel/settings [put]
func (c *userApiController) updateSettings(ctx *fiber.Ctx) error {
	var payload userapimodels.SettingsUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	if err := usershandler.Instance.UpdateSettings(userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update own contacts
// @Tags Personnel
// @Description Partial update of the authenticated user's contact details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		userapimodels.ContactsUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/personnel/contacts [put]
func (c *userApiController) updateContacts(ctx *fiber.Ctx) error {
	var payload userapimodels.ContactsUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := usershandler.Instance.UpdateContacts(userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update contacts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
