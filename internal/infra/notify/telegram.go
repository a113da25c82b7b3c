package notify

import (
	"context"
	"log/slog"

	"resqcart/internal/pkg/config"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    messageSender
	chatID int64
}

func NewTelegramNotifier(cfg config.TelegramConfig, logger *slog.Logger) (*TelegramNotifier, error) {
	return newTelegramNotifierWith(cfg, logger, tgbotapi.NewBotAPI)
}

func newTelegramNotifierWith(cfg config.TelegramConfig, logger *slog.Logger, dial botDialer) (*TelegramNotifier, error) {
	api, err := dial(cfg.BotToken)
	if err != nil {
		return nil, errs.Wrap(err, "create telegram bot")
	}
	logger.Info("telegram notifier authorized", "account", api.Self.UserName, "chat_id", cfg.ChatID)
	return newTelegramNotifier(api, cfg.ChatID), nil
}

func newTelegramNotifier(bot messageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// NotifyRescueAlerts sends one message per alert and keeps going past failures.
func (n *TelegramNotifier) NotifyRescueAlerts(ctx context.Context, alerts []commands.RescueAlert) error {
	var failed []error
	for _, a := range alerts {
		if err := ctx.Err(); err != nil {
			failed = append(failed, err)
			break
		}
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, formatAlert(a))); err != nil {
			failed = append(failed, errs.Wrapf(err, "send alert %s", a.RequestID))
		}
	}
	return errs.Join(failed...)
}
