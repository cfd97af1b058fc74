package commands

import (
	"context"

	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type employerProfileCommand struct {
	base
	employerService services.EmployerService
}

func NewEmployerProfileCommand(
	employerService services.EmployerService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &employerProfileCommand{
		base:            base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		employerService: employerService,
	}
}

func (c *employerProfileCommand) CanHandle(route string) bool {
	return route == string(fsm.FlowEmployerProfile)
}

func (c *employerProfileCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	lang := models.LanguageHebrew

	phone, err := fsm.ValidatePhone(request.Text)
	if err != nil {
		return []tgbotapi.Chattable{c.replyText(request, "wrong_phone", lang)}
	}

	if _, err := c.employerService.SavePhone(request.Profile, phone); err != nil {
		c.logger.Errorw("failed to save employer", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}
	c.close(ctx, request)

	return []tgbotapi.Chattable{
		c.reply(request, c.renderer.Text("employer_phone_saved", lang), keyboards.RemoveReply()),
		c.mainMenu(request, models.RoleEmployer),
	}
}
