package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"crewtime-backend/controllers"
	pushhandler "crewtime-backend/lib/push"
	"crewtime-backend/middleware"
	apimodels "crewtime-backend/models/api"
)

type tokenApiController struct {
	controllers.BaseAPIController
}

func InitTokenApiRouters(app *fiber.App) {
	controller := tokenApiController{}
	app.Route("tokens", func(router fiber.Router) {
		router.Post("", controller.replace)
	})
}

type tokenData struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

func (r tokenData) Validate() error {
	if r.Token == "" {
		return errors.New("token is required")
	}
	return nil
}

// @Summary Replace the device token
// @Tags Push tokens
// @Description Replace every stored device token of the user with the new one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		tokenData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tokens [post]
func (c *tokenApiController) replace(ctx *fiber.Ctx) error {
	var payload tokenData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := pushhandler.Instance.ReplaceToken(userID, payload.Token, payload.Platform); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to replace device token")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
