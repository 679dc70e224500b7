package app

import (
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers messages to a chat on a best-effort basis.
type Notifier struct {
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, logger *logrus.Entry) *Notifier {
	return &Notifier{telegramClient: tc, logger: logger}
}

// Notify sends message to chatID once and reports whether it was delivered.
// Failures are logged and never returned.
func (n *Notifier) Notify(chatID int64, message string) bool {
	err := n.telegramClient.SendMessage(chatID, message, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err != nil {
		n.logger.WithError(homework.WrapError(homework.KindDelivery, err, "Ошибка отправки сообщения в Telegram")).
			WithField("chat_id", chatID).
			Error("Failed to send message")
		return false
	}
	n.logger.WithField("chat_id", chatID).Debug("Message sent")
	return true
}
