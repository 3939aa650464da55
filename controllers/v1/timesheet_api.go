package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	"crewtime-backend/db"
	pdfexport "crewtime-backend/lib/export/pdf"
	xlsexport "crewtime-backend/lib/export/xls"
	timesheethandler "crewtime-backend/lib/timesheet"
	timesheetstore "crewtime-backend/lib/timesheet/store"
	usersstore "crewtime-backend/lib/users/store"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
	timesheetapimodels "crewtime-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheet", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Post("submit", controller.submit)
		router.Put(":id", middleware.ManagerRequired(), controller.update)
		router.Post("approve", middleware.ManagerRequired(), controller.approve)
		router.Post("reject", middleware.ManagerRequired(), controller.reject)
		router.Post("pending", middleware.ManagerRequired(), controller.pending)
		router.Get("export/xlsx/:userId", middleware.ManagerRequired(), controller.exportXlsx)
		router.Get("export/pdf/:userId", middleware.ManagerRequired(), controller.exportPdf)
	})
}

// @Summary Create a timesheet draft
// @Tags Timesheets
// @Description Create a draft timesheet for the authenticated employee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.CreateTimeSheetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet [post]
func (c *timesheetApiController) create(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.CreateTimeSheetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := timesheethandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create timesheet")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List own timesheets
// @Tags Timesheets
// @Description Paged timesheet list of the authenticated employee
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]timesheetapimodels.TimeSheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/list [post]
func (c *timesheetApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	list, rowCount, err := timesheethandler.Instance.ListByUser(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list timesheets")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Submit drafts for approval
// @Tags Timesheets
// @Description Move the listed drafts to pending and notify approvers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.SubmitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/submit [post]
func (c *timesheetApiController) submit(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.SubmitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	submitted, hMsg, err := timesheethandler.Instance.Submit(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit timesheets")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(submitted))
}

// @Summary Update a timesheet
// @Tags Timesheets
// @Description Adjust time range, jobsite or cost code with an audit comment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body				body		timesheetapimodels.TimeSheetEditData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/{id} [put]
func (c *timesheetApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload timesheetapimodels.TimeSheetEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	editorID := middleware.GetUserID(ctx)
	hMsg, err := timesheethandler.Instance.Update(id, editorID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update timesheet")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve timesheets
// @Tags Timesheets
// @Description Approve an employee's timesheet batch and resolve the linked notifications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.ApproveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.ApproveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/approve [post]
func (c *timesheetApiController) approve(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.ApproveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	editorID := middleware.GetUserID(ctx)
	result, hMsg, err := timesheethandler.Instance.Approve(ctx.UserContext(), payload, editorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to approve timesheets")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Reject timesheets
// @Tags Timesheets
// @Description Reject an employee's timesheet batch and resolve the linked notifications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.ApproveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.ApproveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/reject [post]
func (c *timesheetApiController) reject(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.ApproveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	editorID := middleware.GetUserID(ctx)
	result, hMsg, err := timesheethandler.Instance.Reject(ctx.UserContext(), payload, editorID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reject timesheets")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary List pending timesheets
// @Tags Timesheets
// @Description Paged list of timesheets awaiting approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.TimeSheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/pending [post]
func (c *timesheetApiController) pending(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := timesheethandler.Instance.ListPending(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list pending timesheets")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export timesheets as xlsx
// @Tags Timesheets
// @Description Download an employee's timesheets for a period as a spreadsheet
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userId          	path    string  				    	true         "employee ID"
// @Param   from				query	string	false	"period start (RFC3339)"
// @Param   to					query	string	false	"period end (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/export/xlsx/{userId} [get]
func (c *timesheetApiController) exportXlsx(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	store := timesheetstore.NewInstance(db.DB)
	list, err := store.ListForExport(userID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load timesheets for export")
	}
	buf, err := xlsexport.Instance.ExportTimeSheetList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build xlsx export")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="timesheets.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Export timesheets as pdf
// @Tags Timesheets
// @Description Download an employee's timesheet report for a period as a PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userId          	path    string  				    	true         "employee ID"
// @Param   from				query	string	false	"period start (RFC3339)"
// @Param   to					query	string	false	"period end (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheet/export/pdf/{userId} [get]
func (c *timesheetApiController) exportPdf(ctx *fiber.Ctx) error {
	userID, err := c.GetIDByKey(ctx, "userId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	users := usersstore.NewInstance(db.DB)
	user, err := users.GetByID(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load employee")
	}
	if user == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("employee not found"))
	}
	store := timesheetstore.NewInstance(db.DB)
	from, to := ctx.Query("from"), ctx.Query("to")
	list, err := store.ListForExport(userID, from, to)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load timesheets for export")
	}
	pdfFile, err := pdfexport.GenerateTimeSheetReport(*user, list, from, to)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build pdf export")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="timesheets-%s.pdf"`, userID))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
