package tgbot

import (
	"context"

	"work_exchange/configs"
	"work_exchange/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	api     *tgbotapi.BotAPI
	config  configs.Bot
	handler handlers.CommandHandler
	logger  *zap.SugaredLogger
}

type Bot interface {
	// Start reads updates until the context is cancelled.
	Start(ctx context.Context) error
}

func NewBot(api *tgbotapi.BotAPI, config configs.Bot, handler handlers.CommandHandler, logger *zap.SugaredLogger) Bot {
	return &bot{
		api:     api,
		config:  config,
		handler: handler,
		logger:  logger,
	}
}

func (b *bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.UpdateTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Infow("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(ctx, update)
		}
	}
}

func (b *bot) handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorw("panic while handling update", "update_id", update.UpdateID, "panic", r)
		}
	}()

	for _, message := range b.handler.Handle(ctx, update) {
		if err := b.send(message); err != nil {
			b.logger.Errorw("failed to send message", "update_id", update.UpdateID, "error", err)
		}
	}
}

// send uses Request for methods Telegram answers with a bare true instead of a message.
func (b *bot) send(c tgbotapi.Chattable) error {
	switch c.(type) {
	case tgbotapi.CallbackConfig,
		tgbotapi.EditMessageReplyMarkupConfig,
		tgbotapi.EditMessageTextConfig,
		tgbotapi.DeleteMessageConfig:
		_, err := b.api.Request(c)
		return err
	}

	_, err := b.api.Send(c)
	return err
}
