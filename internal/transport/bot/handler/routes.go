package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"tarkov_market/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnPrice, th.CommandEqual("price"))
	adminGroup.HandleMessage(h.OnWatch, th.CommandEqual("watch"))
	adminGroup.HandleMessage(h.OnUnwatch, th.CommandEqual("unwatch"))
	adminGroup.HandleMessage(h.OnWatches, th.CommandEqual("watches"))
}
