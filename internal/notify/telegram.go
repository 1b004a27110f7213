// Package notify delivers staff alerts when a grievance is auto-escalated.
// Alerts are best-effort: a delivery failure is logged by the caller and
// never blocks the triage flow.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jandarpan/backend/internal/models"
)

type Notifier interface {
	GrievanceEscalated(g *models.Grievance) error
}

// TelegramNotifier posts escalation alerts to a staff chat.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier creates a notifier for the given bot token and staff
// chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	return &TelegramNotifier{BotAPI: bot, ChatID: chatID}, nil
}

func (n *TelegramNotifier) GrievanceEscalated(g *models.Grievance) error {
	text := fmt.Sprintf("Grievance %s (%s, priority %d) from %s escalated: pending since %s",
		g.ID, g.Category, g.Priority, g.Name, g.Date)
	msg := tgbotapi.NewMessage(n.ChatID, text)
	_, err := n.BotAPI.Send(msg)
	return err
}

// NoopNotifier is used when no Telegram token is configured.
type NoopNotifier struct{}

func (NoopNotifier) GrievanceEscalated(*models.Grievance) error { return nil }
