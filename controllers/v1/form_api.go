package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	formshandler "crewtime-backend/lib/forms"
	"crewtime-backend/middleware"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
	formapimodels "crewtime-backend/models/api/form"
)

type formApiController struct {
	controllers.BaseAPIController
}

func InitFormApiRouters(app *fiber.App) {
	controller := formApiController{}
	app.Route("forms", func(router fiber.Router) {
		router.Get("templates", controller.listTemplates)
		router.Post("templates", middleware.AdminRequired(), controller.createTemplate)
		router.Put("templates/:id", middleware.AdminRequired(), controller.updateTemplate)
		router.Post("", controller.saveDraft)
		router.Post("list", controller.list)
		router.Post("pending", middleware.ManagerRequired(), controller.pending)
		router.Post("approval", middleware.ManagerRequired(), controller.decide)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Post("submit", controller.submit)
			idRouter.Delete("", controller.deleteDraft)
		})
	})
}

// @Summary List form templates
// @Tags Forms
// @Description Active form templates available for submission
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.TemplateView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/templates [get]
func (c *formApiController) listTemplates(ctx *fiber.Ctx) error {
	activeOnly := !middleware.GetUserRole(ctx).AtLeast(models.UserRoleAdmin)
	list, err := formshandler.Instance.ListTemplates(activeOnly)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list form templates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a form template
// @Tags Forms
// @Description Create a form template with a JSON field schema
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.TemplateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/templates [post]
func (c *formApiController) createTemplate(ctx *fiber.Ctx) error {
	var payload formapimodels.TemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := formshandler.Instance.CreateTemplate(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create form template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a form template
// @Tags Forms
// @Description Replace a template's name, schema and active flag
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		formapimodels.TemplateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/templates/{id} [put]
func (c *formApiController) updateTemplate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload formapimodels.TemplateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := formshandler.Instance.UpdateTemplate(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update form template")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Save a form draft
// @Tags Forms
// @Description Save submission data against an active template without submitting it
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.SubmissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms [post]
func (c *formApiController) saveDraft(ctx *fiber.Ctx) error {
	var payload formapimodels.SubmissionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := formshandler.Instance.SaveDraft(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save form draft")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List own form submissions
// @Tags Forms
// @Description Paged form submissions of the authenticated user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/list [post]
func (c *formApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	list, err := formshandler.Instance.ListByUser(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list form submissions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List pending form submissions
// @Tags Forms
// @Description Paged form submissions awaiting approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]formapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/pending [post]
func (c *formApiController) pending(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := formshandler.Instance.ListPending(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list pending forms")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Decide on a form submission
// @Tags Forms
// @Description Approve or deny a pending submission and resolve its notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		formapimodels.ApprovalData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/approval [post]
func (c *formApiController) decide(ctx *fiber.Ctx) error {
	var payload formapimodels.ApprovalData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	approverID := middleware.GetUserID(ctx)
	hMsg, err := formshandler.Instance.Decide(payload, approverID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record form decision")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a form submission
// @Tags Forms
// @Description One form submission by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=formapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [get]
func (c *formApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := formshandler.Instance.GetSubmission(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load form submission")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("form submission not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit a form draft
// @Tags Forms
// @Description Move a draft to pending and notify approvers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id}/submit [post]
func (c *formApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := formshandler.Instance.Submit(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit form")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a form draft
// @Tags Forms
// @Description Delete an own draft submission
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/forms/{id} [delete]
func (c *formApiController) deleteDraft(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := formshandler.Instance.DeleteDraft(id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete form draft")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
