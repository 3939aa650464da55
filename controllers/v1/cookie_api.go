package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"crewtime-backend/controllers"
	apimodels "crewtime-backend/models/api"
)

type cookieApiController struct {
	controllers.BaseAPIController
}

func InitCookieApiRouters(app *fiber.App) {
	controller := cookieApiController{}
	app.Route("cookies", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Post("", controller.set)
		router.Put("", controller.set)
		router.Delete("", controller.delete)
	})
}

type cookieData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	// MaxAgeInSec of zero means a session cookie.
	MaxAgeInSec int `json:"max_age_in_sec"`
}

func (r cookieData) Validate() error {
	if r.Name == "" {
		return errors.New("cookie name is required")
	}
	return nil
}

// @Summary Read a cookie
// @Tags Cookies
// @Description Read a cookie value by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name				query	string	true	"cookie name"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/cookies [get]
func (c *cookieApiController) get(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("cookie name is required"))
	}

	value := ctx.Cookies(name)
	if value == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("cookie not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(value))
}

// @Summary Set a cookie
// @Tags Cookies
// @Description Write a cookie value keyed by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		cookieData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/cookies [post]
func (c *cookieApiController) set(ctx *fiber.Ctx) error {
	var payload cookieData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	cookie := fiber.Cookie{
		Name:     payload.Name,
		Value:    payload.Value,
		HTTPOnly: true,
	}
	if payload.MaxAgeInSec > 0 {
		cookie.Expires = time.Now().Add(time.Second * time.Duration(payload.MaxAgeInSec))
	}
	ctx.Cookie(&cookie)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a cookie
// @Tags Cookies
// @Description Expire a cookie by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name				query	string	true	"cookie name"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/cookies [delete]
func (c *cookieApiController) delete(ctx *fiber.Ctx) error {
	name := ctx.Query("name")
	if name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("cookie name is required"))
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
