package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"tarkov_market/internal/domain/entity"
)

const startMessage = `💱 <b>Tarkov market watcher</b>

/price &lt;itemID&gt; — cheapest acquisition right now
/watch &lt;itemID&gt; &lt;thresholdRUB&gt; — alert when the price drops
/unwatch &lt;watchID&gt; — remove a watch
/watches — list active watches
/status — refresher status`

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	refresherStatus := "🔴 stopped"
	if h.refresher.IsRunning() {
		refresherStatus = "🟢 running"
	}

	watches, err := h.svc.ListWatches(ctx)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "⚠️ failed to list watches")
	}

	text := fmt.Sprintf(`📊 <b>Status</b>

🔄 <b>Refresher:</b> %s
👀 <b>Active watches:</b> %d`,
		refresherStatus,
		len(watches),
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnPrice(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, "usage: /price &lt;itemID&gt;")
	}

	item, quote, err := h.svc.CheapestPrice(ctx, parts[1], h.svc.ResolveOptions())
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "⚠️ "+err.Error())
	}

	if !quote.Usable() {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(
			"🚫 <b>%s</b> has no valid acquisition path under current settings", item.Name))
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(
		"💰 <b>%s</b>\ncheapest: %.0f ₽/unit via %s",
		item.Name, quote.PricePerUnit, quoteSource(quote)))
}

func (h *Handler) OnWatch(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 3 {
		return h.sendHTML(ctx, msg.Chat.ID, "usage: /watch &lt;itemID&gt; &lt;thresholdRUB&gt;")
	}

	threshold, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || threshold <= 0 {
		return h.sendHTML(ctx, msg.Chat.ID, "threshold must be a positive integer")
	}

	watch := entity.Watch{
		ItemID:       parts[1],
		ThresholdRUB: threshold,
		ChatID:       msg.Chat.ID,
	}

	if err := h.svc.CreateWatch(ctx, &watch); err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "⚠️ "+err.Error())
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf("✅ watch #%d created", watch.ID))
}

func (h *Handler) OnUnwatch(ctx *th.Context, msg telego.Message) error {
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, "usage: /unwatch &lt;watchID&gt;")
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "watch id must be an integer")
	}

	if err := h.svc.DeleteWatch(ctx, id); err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "⚠️ "+err.Error())
	}

	return h.sendHTML(ctx, msg.Chat.ID, "🗑 watch removed")
}

func (h *Handler) OnWatches(ctx *th.Context, msg telego.Message) error {
	watches, err := h.svc.ListWatches(ctx)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, "⚠️ "+err.Error())
	}

	if len(watches) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, "no active watches")
	}

	var sb strings.Builder
	sb.WriteString("👀 <b>Active watches</b>\n")
	for _, watch := range watches {
		fmt.Fprintf(&sb, "\n#%d %s ≤ %d ₽", watch.ID, watch.ItemID, watch.ThresholdRUB)
	}

	return h.sendHTML(ctx, msg.Chat.ID, sb.String())
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func quoteSource(quote entity.PriceQuote) string {
	switch {
	case quote.Barter != nil:
		return "barter @ " + quote.Barter.Trader
	case quote.Craft != nil:
		return "craft @ " + quote.Craft.Station
	case quote.Vendor != "":
		return quote.Vendor
	default:
		return quote.Type.String()
	}
}
