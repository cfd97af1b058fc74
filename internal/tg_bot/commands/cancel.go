package commands

import (
	"context"

	"work_exchange/internal/fsm"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type cancelCommand struct {
	base
}

func NewCancelCommand(sessionStore fsm.Store, renderer views.Renderer, keyboards keyboards.Keyboards, logger *zap.SugaredLogger) Command {
	return &cancelCommand{
		base: base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
	}
}

func (c *cancelCommand) CanHandle(route string) bool {
	return route == RouteCancel
}

func (c *cancelCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	if err := c.sessionStore.Clear(ctx, request.ChatID); err != nil {
		c.logger.Errorw("failed to clear session", "chat_id", request.ChatID, "error", err)
		return c.failure(request)
	}

	return []tgbotapi.Chattable{c.reply(request, c.renderer.Text("input_cancel", request.Lang()), keyboards.RemoveReply())}
}
