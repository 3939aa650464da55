package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"crewtime-backend/controllers"
	notificationhandler "crewtime-backend/lib/notification"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
	notificationapimodels "crewtime-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Put(":id/read", controller.markRead)
		router.Get("subscriptions", controller.subscriptions)
		router.Post("subscriptions", controller.subscribe)
		router.Delete("subscriptions", controller.unsubscribe)
	})
}

// @Summary List notifications
// @Tags Notifications
// @Description Paged notifications on the topics the user subscribes to
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	list, err := notificationhandler.Instance.ListForUser(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Mark a notification read
// @Tags Notifications
// @Description Record that the user has seen the notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	if err = notificationhandler.Instance.MarkRead(id, userID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to mark notification read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List topic subscriptions
// @Tags Notifications
// @Description Topics the user currently subscribes to
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/subscriptions [get]
func (c *notificationApiController) subscriptions(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := notificationhandler.Instance.Subscriptions(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list subscriptions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Subscribe to a topic
// @Tags Notifications
// @Description Subscribe the user to a notification topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		notificationapimodels.SubscriptionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/subscriptions [post]
func (c *notificationApiController) subscribe(ctx *fiber.Ctx) error {
	var payload notificationapimodels.SubscriptionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := notificationhandler.Instance.Subscribe(userID, payload.Topic); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to subscribe")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Unsubscribe from a topic
// @Tags Notifications
// @Description Remove the user's subscription to a notification topic
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		notificationapimodels.SubscriptionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/subscriptions [delete]
func (c *notificationApiController) unsubscribe(ctx *fiber.Ctx) error {
	var payload notificationapimodels.SubscriptionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := notificationhandler.Instance.Unsubscribe(userID, payload.Topic); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to unsubscribe")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
