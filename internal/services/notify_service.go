package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier pushes short event messages to an external channel.
type Notifier interface {
	Notify(text string) error
}

// TelegramNotifier sends to a fixed chat via a bot. With DryRun set
// it only logs, which keeps dev environments quiet.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	dryRun bool
}

func NewTelegramNotifier(token string, chatID int64, dryRun bool) (*TelegramNotifier, error) {
	n := &TelegramNotifier{chatID: chatID, dryRun: dryRun}
	if dryRun {
		return n, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	n.bot = bot
	return n, nil
}

func (n *TelegramNotifier) Notify(text string) error {
	if n.dryRun || n.bot == nil {
		logrus.Infof("[tg][dry-run] chat=%d text=%q", n.chatID, text)
		return nil
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
