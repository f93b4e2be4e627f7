package libs

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"doener-shop/models"

	"gopkg.in/gomail.v2"
)

type EmailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailService(cfg EmailConfig) (*EmailService, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	if cfg.To == "" {
		return nil, fmt.Errorf("order email recipient missing")
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		port = 587
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   from,
		to:     cfg.To,
	}, nil
}

func (s *EmailService) Name() string {
	return "email"
}

// NotifyOrder mails the order to the restaurant inbox.
func (s *EmailService) NotifyOrder(ctx context.Context, order models.OrderRecord, summary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", OrderEmailSubject(order))
	m.SetBody("text/plain", summary)
	m.AddAlternative("text/html", OrderEmailHTML(order, summary))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func OrderEmailSubject(order models.OrderRecord) string {
	kind := "Abholung"
	if order.OrderType == models.OrderTypeDelivery {
		kind = "Lieferung"
	}
	return fmt.Sprintf("Neue Bestellung (%s) - %s - %s €", kind, order.CustomerName, order.Total.Format())
}

func OrderEmailHTML(order models.OrderRecord, summary string) string {
	rows := strings.Builder{}
	for _, item := range order.Items {
		fmt.Fprintf(&rows, `
      <tr>
        <td style="padding: 12px; border-bottom: 1px solid #e5e7eb;">%dx %s</td>
        <td style="padding: 12px; border-bottom: 1px solid #e5e7eb; text-align: right; font-weight: bold;">%s €</td>
      </tr>`, item.Quantity, html.EscapeString(item.Name), item.LineTotal.Format())
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; background-color: #f9fafb; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .summary { background-color: #fff7ed; padding: 20px; margin: 20px 0; border-radius: 8px; white-space: pre-wrap; font-family: monospace; }
    </style>
</head>
<body>
    <div class="container">
        <h2 style="color: #f97316;">Neue Bestellung</h2>
        <p><strong>Kunde:</strong> %s<br><strong>Telefon:</strong> %s</p>
        <table style="width: 100%%; border-collapse: collapse;">%s
        </table>
        <p style="text-align: right;"><strong>Gesamtbetrag: %s €</strong></p>
        <div class="summary">%s</div>
    </div>
</body>
</html>
`,
		html.EscapeString(order.CustomerName),
		html.EscapeString(order.Phone),
		rows.String(),
		order.Total.Format(),
		html.EscapeString(summary),
	)
}
