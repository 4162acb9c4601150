package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tarkov_market/internal/domain/entity"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run consumes deals until the channel closes or the context ends.
func (b *TelegramBot) Run(ctx context.Context, deals <-chan entity.Deal) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case deal, ok := <-deals:
			if !ok {
				return nil
			}
			if err := b.SendDeal(ctx, deal); err != nil {
				logger(ctx).Error("failed to send deal", "error", err)
			}
		}
	}
}

func (b *TelegramBot) SendDeal(ctx context.Context, deal entity.Deal) error {
	text := fmt.Sprintf(
		"📉 <b>PRICE DROP!</b>\n\n"+
			"🎒 <b>Item:</b> %s\n"+
			"💰 <b>Cheapest:</b> %.0f ₽ (%s)\n"+
			"🎯 <b>Watch threshold:</b> %d ₽\n"+
			"💾 <b>Below threshold by:</b> %d ₽",
		deal.Item.Name,
		deal.Quote.PricePerUnit,
		sourceLabel(deal.Quote),
		deal.Watch.ThresholdRUB,
		deal.SavedRUB,
	)

	chatID := deal.Watch.ChatID
	if chatID == 0 {
		chatID = b.chatID
	}

	msg := tu.Message(
		tu.ID(chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func sourceLabel(quote entity.PriceQuote) string {
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

// SendText sends a plain text message to the default chat.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
