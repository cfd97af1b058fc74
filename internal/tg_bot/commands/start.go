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

type startCommand struct {
	base
	userService services.UserService
}

func NewStartCommand(
	userService services.UserService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &startCommand{
		base:        base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		userService: userService,
	}
}

func (c *startCommand) CanHandle(route string) bool {
	return route == RouteStart || route == string(callbacks.PrefixTarget)
}

func (c *startCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	if request.Data.Prefix == callbacks.PrefixTarget {
		return c.chooseRole(ctx, request)
	}

	c.close(ctx, request)

	if request.User != nil {
		hasProfile, err := c.userService.HasProfile(request.User)
		if err != nil {
			c.logger.Errorw("failed to check profile", "telegram_id", request.Profile.TelegramID, "error", err)
			return c.failure(request)
		}
		if hasProfile {
			return []tgbotapi.Chattable{c.mainMenu(request, request.User.Role)}
		}
	}

	// the role is unknown, so the greeting goes out in both languages
	text := c.renderer.Text("choose_option", models.LanguageRussian) + "\n" + c.renderer.Text("choose_option", models.LanguageHebrew)

	return []tgbotapi.Chattable{c.reply(request, text, c.keyboards.RoleChoice())}
}

func (c *startCommand) chooseRole(ctx context.Context, request *Request) []tgbotapi.Chattable {
	role := models.Role(request.Data.Field(0))
	if role != models.RoleWorker && role != models.RoleEmployer {
		c.logger.Warnw("received unknown role", "role", role)
		return nil
	}

	user, err := c.userService.ChooseRole(request.Profile.TelegramID, role)
	if errors.Is(err, services.ErrRoleLocked) {
		return c.alert(request, "role_locked", user.Role.Language())
	} else if err != nil {
		c.logger.Errorw("failed to choose role", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}
	request.User = user

	hasProfile, err := c.userService.HasProfile(user)
	if err != nil {
		c.logger.Errorw("failed to check profile", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}
	if hasProfile {
		return []tgbotapi.Chattable{c.mainMenu(request, role)}
	}

	if role == models.RoleEmployer {
		return c.open(ctx, request, fsm.Start(fsm.FlowEmployerProfile))
	}
	return c.open(ctx, request, fsm.Start(fsm.FlowWorkerProfile))
}
