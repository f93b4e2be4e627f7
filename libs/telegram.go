package libs

import (
	"context"
	"fmt"

	"doener-shop/models"
	"doener-shop/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier pushes new orders into the kitchen chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram configuration missing")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

func (t *TelegramNotifier) Name() string {
	return "telegram"
}

// TelegramMessage renders the order for the chat with Markdown parse mode,
// escaping customer input so only the labels are formatted.
func TelegramMessage(chatID int64, order models.OrderRecord) tgbotapi.MessageConfig {
	text := services.FormatOrderMessageWith(order, func(s string) string {
		return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
	})
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg
}

func (t *TelegramNotifier) NotifyOrder(ctx context.Context, order models.OrderRecord, summary string) error {
	msg := TelegramMessage(t.chatID, order)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send for order %s: %w", order.ID, err)
	}
	return nil
}
