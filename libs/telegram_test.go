package libs

import (
	"strings"
	"testing"

	"doener-shop/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestTelegramMessageEscapesCustomerText(t *testing.T) {
	order := models.OrderRecord{
		ID:           "o-1",
		CustomerName: "max_mustermann *vip*",
		Phone:        "0151 2345678",
		OrderType:    models.OrderTypePickup,
		Time:         models.TimeChoice{Mode: models.TimeASAP},
		Items: []models.OrderItem{
			{ItemID: 1, Name: "Döner [groß]", Quantity: 1, UnitPrice: 800, LineTotal: 800},
		},
		Subtotal: 800,
		Total:    800,
		Note:     "bitte `klingeln`",
	}

	msg := TelegramMessage(42, order)

	if msg.ParseMode != tgbotapi.ModeMarkdown {
		t.Fatalf("parse mode = %q", msg.ParseMode)
	}
	if msg.ChatID != 42 {
		t.Errorf("chat id = %d", msg.ChatID)
	}
	for _, want := range []string{
		`*Kunde:* max\_mustermann \*vip\*`,
		`Döner \[groß]`,
		"bitte \\`klingeln\\`",
		"*Gesamtbetrag:* 8,00 €",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("message missing %q:\n%s", want, msg.Text)
		}
	}
}
