package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	wsclient "crewtime-backend/lib/ws/client"
	connectionhub "crewtime-backend/lib/ws/connection-hub"
	"crewtime-backend/middleware"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		userID := middleware.GetUserID(ctx)
		ctx.Locals("userID", userID)
		return ctx.Next()
	})
	app.Get("/location", websocket.New(locationFeedHandler))
}

// @Summary Live crew location feed
// @Tags Websocket
// @Description Streams location updates of all reporting employees
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.LocationUpdate
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws/location [get]
func locationFeedHandler(c *websocket.Conn) {

	userID := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddWatcher(userID, c)
	defer func() {
		connectionhub.Instance.DeleteWatcher(userID)
	}()
	client.Dispatch()
}
