package commands

import (
	"context"
	"errors"

	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type moderationCommand struct {
	base
	moderationService services.ModerationService
}

func NewModerationCommand(
	moderationService services.ModerationService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &moderationCommand{
		base:              base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		moderationService: moderationService,
	}
}

func (c *moderationCommand) CanHandle(route string) bool {
	return route == string(callbacks.PrefixAdmin)
}

func (c *moderationCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	lang := models.LanguageRussian
	target := services.ModerationTarget(request.Data.Field(0))
	action := services.ModerationAction(request.Data.Field(1))

	id, err := request.Data.Int64(2)
	if err != nil {
		c.logger.Warnw("received invalid moderation id", "data", request.Data.String(), "error", err)
		return nil
	}

	status, err := c.moderationService.Decide(ctx, target, action, id)

	var outcome string
	switch {
	case errors.Is(err, services.ErrAlreadyDecided):
		outcome = c.renderer.Text("already_decided", lang)
	case errors.Is(err, services.ErrNotFound):
		c.logger.Infow("moderated record not found", "target", target, "id", id)
		outcome = c.renderer.Text("not_found", lang)
	case err != nil:
		c.logger.Errorw("failed to moderate", "target", target, "action", action, "id", id, "error", err)
		return c.failure(request)
	default:
		c.logger.Infow("moderation decision made", "target", target, "id", id, "status", status, "admin_id", request.Profile.TelegramID)
		outcome = c.renderer.Bold("status", lang) + " " + c.renderer.Approval(status, lang)
	}

	strip := tgbotapi.NewEditMessageReplyMarkup(request.ChatID, request.MessageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})

	reply := c.reply(request, outcome, nil)
	reply.ReplyToMessageID = request.MessageID

	return []tgbotapi.Chattable{strip, reply}
}
