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

// Routes that are not callback prefixes or flow names.
const (
	RouteStart  = "start"
	RouteCancel = "cancel"
)

type Command interface {
	CanHandle(route string) bool
	Handle(ctx context.Context, request *Request) []tgbotapi.Chattable
}

// Request is a decoded update together with the state loaded for its chat.
type Request struct {
	ChatID    int64
	MessageID int
	Profile   services.Profile

	// User and Session are nil for unknown users and chats without a flow.
	User    *models.TelegramUser
	Session *fsm.Session

	Input fsm.Input
	// Text carries the message text or, for a shared contact, the phone number.
	Text       string
	PhotoID    string
	CallbackID string
	Data       callbacks.Data
}

func (r *Request) Role() models.Role {
	if r.User == nil {
		return ""
	}
	return r.User.Role
}

func (r *Request) Lang() models.Language {
	return r.Role().Language()
}

func (r *Request) IsCallback() bool {
	return r.CallbackID != ""
}

// base carries what every command needs to render replies and keep the session.
type base struct {
	sessionStore fsm.Store
	renderer     views.Renderer
	keyboards    keyboards.Keyboards
	logger       *zap.SugaredLogger
}

func (b base) reply(request *Request, text string, markup interface{}) tgbotapi.MessageConfig {
	message := tgbotapi.NewMessage(request.ChatID, text)
	message.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		message.ReplyMarkup = markup
	}
	return message
}

func (b base) replyText(request *Request, slug string, lang models.Language) tgbotapi.MessageConfig {
	return b.reply(request, b.renderer.Text(slug, lang), nil)
}

// edit replaces the message the callback came from.
func (b base) edit(request *Request, text string, markup tgbotapi.InlineKeyboardMarkup) tgbotapi.Chattable {
	if request.MessageID == 0 {
		return b.reply(request, text, markup)
	}

	message := tgbotapi.NewEditMessageTextAndMarkup(request.ChatID, request.MessageID, text, markup)
	message.ParseMode = tgbotapi.ModeMarkdown
	return message
}

func (b base) alert(request *Request, slug string, lang models.Language) []tgbotapi.Chattable {
	if !request.IsCallback() {
		return []tgbotapi.Chattable{b.replyText(request, slug, lang)}
	}
	return []tgbotapi.Chattable{tgbotapi.NewCallbackWithAlert(request.CallbackID, b.renderer.Text(slug, lang))}
}

func (b base) failure(request *Request) []tgbotapi.Chattable {
	return []tgbotapi.Chattable{b.replyText(request, "error", request.Lang())}
}

// notFound answers for records that vanished or belong to someone else.
func (b base) notFound(request *Request, err error) []tgbotapi.Chattable {
	b.logger.Infow("record is not available", "chat_id", request.ChatID, "data", request.Data.String(), "error", err)
	return b.alert(request, "not_found", request.Lang())
}

func (b base) mainMenu(request *Request, role models.Role) tgbotapi.MessageConfig {
	return b.reply(request, b.renderer.Text("choose_menu_section", role.Language()), b.keyboards.MainMenu(role))
}

// open stores the session and asks for its current step.
func (b base) open(ctx context.Context, request *Request, session *fsm.Session) []tgbotapi.Chattable {
	if err := b.sessionStore.Save(ctx, request.ChatID, session); err != nil {
		b.logger.Errorw("failed to save session", "chat_id", request.ChatID, "error", err)
		return b.failure(request)
	}
	return []tgbotapi.Chattable{b.prompt(request, session)}
}

func (b base) close(ctx context.Context, request *Request) {
	if err := b.sessionStore.Clear(ctx, request.ChatID); err != nil {
		b.logger.Errorw("failed to clear session", "chat_id", request.ChatID, "error", err)
	}
}

// flowLanguage is the language a flow talks in: workers in Russian, employers in Hebrew.
func flowLanguage(session *fsm.Session, request *Request) models.Language {
	switch session.Flow {
	case fsm.FlowWorkerProfile:
		return models.LanguageRussian
	case fsm.FlowEmployerProfile, fsm.FlowJob:
		return models.LanguageHebrew
	}
	return request.Lang()
}

func (b base) prompt(request *Request, session *fsm.Session) tgbotapi.Chattable {
	lang := flowLanguage(session, request)
	text := func(slug string) string { return b.renderer.Text(slug, lang) }

	switch session.Step {
	case fsm.StepName:
		return b.reply(request, text("input_name"), nil)
	case fsm.StepPhone:
		return b.reply(request, text("input_phone"), b.keyboards.PhoneRequest(lang))
	case fsm.StepPassportPhoto:
		return b.reply(request, text("input_passport_photo"), keyboards.RemoveReply())
	case fsm.StepOccupations:
		return b.reply(request, text("choose_occupations"), b.keyboards.Occupations(lang, session.Draft.Occupations))
	case fsm.StepAbout:
		return b.reply(request, text("input_about"), nil)
	case fsm.StepMinSalary:
		return b.reply(request, text("input_min_salary"), nil)
	case fsm.StepObjectPhotosConfirmation:
		return b.reply(request, text("object_photos_question"), b.keyboards.ObjectPhotos(lang))
	case fsm.StepObjectPhoto:
		return b.reply(request, text("input_object_photo"), nil)
	case fsm.StepNotifications:
		slug := "worker_notifications_question"
		if session.Flow == fsm.FlowJob {
			slug = "job_notifications_question"
		}
		return b.reply(request, text(slug), b.keyboards.Notifications(lang))
	case fsm.StepDescription:
		return b.reply(request, text("input_job_description"), nil)
	case fsm.StepRate:
		return b.reply(request, text("review_input_rate"), b.keyboards.Rates())
	case fsm.StepComment:
		return b.reply(request, text("review_input_comment"), b.keyboards.Skip(lang))
	}

	var draft string
	switch session.Flow {
	case fsm.FlowWorkerProfile:
		draft = b.renderer.WorkerDraft(session.Draft)
	case fsm.FlowJob:
		draft = b.renderer.JobDraft(session.Draft)
	default:
		draft = b.renderer.ReviewDraft(session.Draft, lang)
	}

	return b.reply(request, draft+"\n\n"+text("confirm_data"), b.keyboards.Confirm(lang))
}

// selectOccupation handles the occupation keyboard shared by the profile and job flows.
// The second result is false when the step is still running.
func (b base) selectOccupation(ctx context.Context, request *Request, session *fsm.Session) ([]tgbotapi.Chattable, bool) {
	lang := flowLanguage(session, request)
	slug := request.Data.Field(0)

	if slug != callbacks.OccupationConfirm {
		session.ToggleOccupation(slug)
		if err := b.sessionStore.Save(ctx, request.ChatID, session); err != nil {
			b.logger.Errorw("failed to save session", "chat_id", request.ChatID, "error", err)
			return b.failure(request), false
		}

		markup := tgbotapi.NewEditMessageReplyMarkup(request.ChatID, request.MessageID, b.keyboards.Occupations(lang, session.Draft.Occupations))
		return []tgbotapi.Chattable{markup}, false
	}

	if err := session.ConfirmOccupations(); errors.Is(err, fsm.ErrNoOccupations) {
		return b.alert(request, "occupations_required", lang), false
	}

	return nil, true
}

// parties resolves the worker or employer behind a Telegram account.
type parties struct {
	workerService   services.WorkerService
	employerService services.EmployerService
}

func (p parties) partyID(role models.Role, telegramID int64) (int64, error) {
	if role == models.RoleEmployer {
		employer, err := p.employerService.GetByTelegramID(telegramID)
		if err != nil {
			return 0, err
		}
		return employer.ID, nil
	}

	worker, err := p.workerService.GetByTelegramID(telegramID)
	if err != nil {
		return 0, err
	}
	return worker.ID, nil
}

// activeWorker returns the approved profile of the user or the alert explaining why there is none.
func (b base) activeWorker(request *Request, workerService services.WorkerService) (*models.Worker, []tgbotapi.Chattable) {
	lang := models.LanguageRussian

	worker, err := workerService.GetByTelegramID(request.Profile.TelegramID)
	if errors.Is(err, services.ErrNotFound) {
		return nil, b.alert(request, "worker_profile_error", lang)
	} else if err != nil {
		b.logger.Errorw("failed to get worker", "telegram_id", request.Profile.TelegramID, "error", err)
		return nil, b.failure(request)
	}

	switch {
	case worker.Approval.IsPending():
		return nil, b.alert(request, "profile_waiting", lang)
	case worker.Approval.IsDeclined():
		return nil, b.alert(request, "worker_check_failed", lang)
	}

	return worker, nil
}
