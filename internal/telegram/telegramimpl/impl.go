package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/hony-redirect/internal/telegram"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/formatter"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	UserID int64
}

// New returns a bot backed client, or a Noop one when no token is configured.
func New(opts Opts) (telegram.Client, error) {
	log := opts.Logger.WithComponent("Telegram")
	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not set, alerts disabled")
		return Noop{}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		UserID: opts.Config.Telegram.User,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (tg *TelegramImpl) NotifyUser(message string) error {
	msg := tgbotapi.NewMessage(tg.UserID, formatter.EscapeMarkdownV2(message))
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.UserID,
			"error", err)
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	tg.Logger.Info("Message sent to user", "userID", tg.UserID)
	return nil
}

// Noop drops every message.
type Noop struct{}

var _ telegram.Client = Noop{}

func (Noop) NotifyUser(string) error { return nil }
