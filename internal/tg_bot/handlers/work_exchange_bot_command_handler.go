package handlers

import (
	"context"
	"errors"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/commands"
	"work_exchange/internal/tg_bot/extension"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// rolePrefixes maps the callbacks that belong to one side of the marketplace.
var rolePrefixes = map[callbacks.Prefix]models.Role{
	callbacks.PrefixWorkerMenu:      models.RoleWorker,
	callbacks.PrefixWorkerPages:     models.RoleWorker,
	callbacks.PrefixWorkerDetails:   models.RoleWorker,
	callbacks.PrefixWorkerControl:   models.RoleWorker,
	callbacks.PrefixEmployerMenu:    models.RoleEmployer,
	callbacks.PrefixEmployerPages:   models.RoleEmployer,
	callbacks.PrefixEmployerDetails: models.RoleEmployer,
	callbacks.PrefixEmployerControl: models.RoleEmployer,
}

// flowPrefixes are answers to a step of the running flow.
var flowPrefixes = map[callbacks.Prefix]bool{
	callbacks.PrefixOccupation:    true,
	callbacks.PrefixPhoto:         true,
	callbacks.PrefixNotifications: true,
	callbacks.PrefixConfirm:       true,
	callbacks.PrefixRate:          true,
	callbacks.PrefixSkip:          true,
}

type workExchangeBotCommandHandler struct {
	adminConfig  configs.Admin
	userService  services.UserService
	sessionStore fsm.Store
	renderer     views.Renderer
	logger       *zap.SugaredLogger

	commands []commands.Command
}

func NewWorkExchangeBotCommandHandler(
	adminConfig configs.Admin,
	userService services.UserService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &workExchangeBotCommandHandler{
		adminConfig:  adminConfig,
		userService:  userService,
		sessionStore: sessionStore,
		renderer:     renderer,
		logger:       logger,
		commands:     commands,
	}
}

func (h *workExchangeBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	callbackQuery := update.CallbackQuery

	var (
		request = &commands.Request{}
		from    *tgbotapi.User
	)

	switch {
	case message != nil:
		request.ChatID = message.Chat.ID
		request.MessageID = message.MessageID
		from = message.From
	case callbackQuery != nil && callbackQuery.Message != nil:
		request.ChatID = callbackQuery.Message.Chat.ID
		request.MessageID = callbackQuery.Message.MessageID
		request.CallbackID = callbackQuery.ID
		request.Input = fsm.InputCallback
		from = callbackQuery.From

		data, err := callbacks.Parse(callbackQuery.Data)
		if err != nil {
			h.logger.Warnw("received invalid callback data", "data", callbackQuery.Data, "error", err)
			return []tgbotapi.Chattable{tgbotapi.NewCallback(callbackQuery.ID, "")}
		}
		request.Data = data
	default:
		h.logger.Debug("received unknown update")
		return nil
	}

	if from == nil {
		return nil
	}

	request.Profile = services.Profile{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	}

	if request.Data.Prefix == callbacks.PrefixAdmin {
		if !h.adminConfig.IsAdminChat(request.ChatID) {
			h.logger.Warnw("received moderation callback outside admin chats", "chat_id", request.ChatID, "telegram_id", from.ID)
			return answered(request, nil)
		}
		return answered(request, h.dispatch(ctx, string(callbacks.PrefixAdmin), request))
	}

	if from.ID != request.ChatID {
		h.logger.Debugw("ignoring update from a shared chat", "chat_id", request.ChatID)
		return answered(request, nil)
	}

	if err := h.userService.RefreshUsername(request.Profile); err != nil {
		h.logger.Errorw("failed to refresh username", "telegram_id", from.ID, "error", err)
	}

	user, err := h.userService.Get(from.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		h.logger.Errorw("failed to get user", "telegram_id", from.ID, "error", err)
		return answered(request, []tgbotapi.Chattable{extension.DefaultErrorMessage(request.ChatID)})
	}
	request.User = user

	session, err := h.sessionStore.Get(ctx, request.ChatID)
	if err != nil {
		h.logger.Errorw("failed to get session", "chat_id", request.ChatID, "error", err)
	}
	request.Session = session

	if message != nil {
		return h.handleMessage(ctx, message, request)
	}

	return answered(request, h.handleCallback(ctx, request))
}

func (h *workExchangeBotCommandHandler) handleMessage(ctx context.Context, message *tgbotapi.Message, request *commands.Request) []tgbotapi.Chattable {
	if message.IsCommand() {
		h.logger.Infow("received command", "chat_id", request.ChatID, "command", message.Command())
		return h.dispatch(ctx, message.Command(), request)
	}

	switch {
	case message.Contact != nil:
		request.Input = fsm.InputContact
		request.Text = message.Contact.PhoneNumber
	case len(message.Photo) > 0:
		// the last size is the largest
		request.Input = fsm.InputPhoto
		request.PhotoID = message.Photo[len(message.Photo)-1].FileID
	default:
		request.Input = fsm.InputText
		request.Text = message.Text
	}

	if request.Session == nil {
		if request.User == nil {
			return h.dispatch(ctx, commands.RouteStart, request)
		}
		return []tgbotapi.Chattable{extension.ErrorMessage(request.ChatID, h.renderer.Text("wrong_input", request.Lang()))}
	}

	if !request.Session.Accepts(request.Input) {
		h.logger.Infow("ignoring input", "chat_id", request.ChatID, "step", request.Session.Step, "input", request.Input)
		return nil
	}

	return h.dispatch(ctx, string(request.Session.Flow), request)
}

func (h *workExchangeBotCommandHandler) handleCallback(ctx context.Context, request *commands.Request) []tgbotapi.Chattable {
	prefix := request.Data.Prefix

	switch {
	case prefix == callbacks.PrefixNoop:
		return nil

	case prefix == callbacks.PrefixTarget:
		return h.dispatch(ctx, string(prefix), request)

	case flowPrefixes[prefix]:
		if request.Session == nil || !request.Session.Accepts(fsm.InputCallback) {
			h.logger.Infow("ignoring stale flow callback", "chat_id", request.ChatID, "data", request.Data.String())
			return nil
		}
		return h.dispatch(ctx, string(request.Session.Flow), request)
	}

	role, ok := rolePrefixes[prefix]
	if !ok {
		h.logger.Warnw("received unknown callback", "data", request.Data.String())
		return nil
	}
	if request.User == nil || request.User.Role != role {
		h.logger.Infow("ignoring callback of another role", "chat_id", request.ChatID, "data", request.Data.String())
		return nil
	}

	return h.dispatch(ctx, string(prefix), request)
}

func (h *workExchangeBotCommandHandler) dispatch(ctx context.Context, route string, request *commands.Request) []tgbotapi.Chattable {
	for _, command := range h.commands {
		if command.CanHandle(route) {
			return command.Handle(ctx, request)
		}
	}

	h.logger.Warnw("received unknown command", "route", route)
	return nil
}

// answered makes sure a callback query gets exactly one answer so the client stops its spinner.
func answered(request *commands.Request, replies []tgbotapi.Chattable) []tgbotapi.Chattable {
	if !request.IsCallback() {
		return replies
	}

	for _, reply := range replies {
		if _, ok := reply.(tgbotapi.CallbackConfig); ok {
			return replies
		}
	}

	return append([]tgbotapi.Chattable{tgbotapi.NewCallback(request.CallbackID, "")}, replies...)
}
