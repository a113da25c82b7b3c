// Package notify delivers food-bank alerts once the rescue requests behind them have committed.
package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"resqcart/internal/pkg/config"
	"resqcart/internal/usecase/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// botDialer authorizes a bot token; tgbotapi.NewBotAPI calls getMe.
type botDialer func(token string) (*tgbotapi.BotAPI, error)

// New picks Telegram when it is configured and falls back to structured logs otherwise.
// An unreachable Telegram API at startup also falls back, so alerts never block boot.
func New(cfg config.TelegramConfig, logger *slog.Logger) commands.RescueNotifier {
	return newNotifier(cfg, logger, tgbotapi.NewBotAPI)
}

func newNotifier(cfg config.TelegramConfig, logger *slog.Logger, dial botDialer) commands.RescueNotifier {
	if !cfg.Enabled() {
		logger.Info("telegram notifier disabled, food bank alerts go to the log")
		return NewLogNotifier(logger)
	}
	n, err := newTelegramNotifierWith(cfg, logger, dial)
	if err != nil {
		logger.Warn("telegram unavailable, food bank alerts go to the log", "error", err)
		return NewLogNotifier(logger)
	}
	return n
}

// formatAlert groups digits the way an English reader expects ("1,250 kg").
func formatAlert(a commands.RescueAlert) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("🚨 Food bank alert\n")
	fmt.Fprintf(&b, "Request: %s\n", a.RequestID)
	if a.DaysUntilExpiration != nil {
		fmt.Fprintf(&b, "Expires in %s\n", pluralDays(*a.DaysUntilExpiration))
	}
	p.Fprintf(&b, "Value: $%s, weight: %.1f kg\n", a.TotalValue.StringFixed(2), a.TotalWeight)
	b.WriteString("Items:")
	for _, it := range a.Items {
		p.Fprintf(&b, "\n- %s x%d %s (%s, expires %s)",
			it.Name, it.Quantity, it.Unit, it.Category, it.ExpirationDate.Format("2006-01-02"))
	}
	return b.String()
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
