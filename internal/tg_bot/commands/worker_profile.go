package commands

import (
	"context"
	"strings"

	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// FileLinker resolves a Telegram file id to a download link.
type FileLinker interface {
	GetFileDirectURL(fileID string) (string, error)
}

type workerProfileCommand struct {
	base
	workerService services.WorkerService
	fileLinker    FileLinker
}

func NewWorkerProfileCommand(
	workerService services.WorkerService,
	fileLinker FileLinker,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &workerProfileCommand{
		base:          base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		workerService: workerService,
		fileLinker:    fileLinker,
	}
}

func (c *workerProfileCommand) CanHandle(route string) bool {
	return route == string(fsm.FlowWorkerProfile)
}

func (c *workerProfileCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	session := request.Session
	lang := models.LanguageRussian

	switch session.Step {
	case fsm.StepName:
		name := strings.TrimSpace(request.Text)
		if name == "" {
			return nil
		}
		session.Draft.Name = name
		session.Next()

	case fsm.StepPhone:
		phone, err := fsm.ValidatePhone(request.Text)
		if err != nil {
			return []tgbotapi.Chattable{c.replyText(request, "wrong_phone", lang)}
		}
		session.Draft.Phone = phone
		session.Next()

	case fsm.StepPassportPhoto:
		session.Draft.PassportPhotoID = request.PhotoID
		session.Next()

	case fsm.StepOccupations:
		if request.Data.Prefix != callbacks.PrefixOccupation {
			return nil
		}
		if replies, done := c.selectOccupation(ctx, request, session); !done {
			return replies
		}

	case fsm.StepAbout:
		about := strings.TrimSpace(request.Text)
		if about == "" {
			return nil
		}
		session.Draft.About = about
		session.Next()

	case fsm.StepMinSalary:
		salary, err := fsm.ValidateSalary(request.Text)
		if err != nil {
			return []tgbotapi.Chattable{c.replyText(request, "wrong_salary", lang)}
		}
		session.Draft.MinSalary = salary
		session.Next()

	case fsm.StepObjectPhotosConfirmation:
		if request.Data.Prefix != callbacks.PrefixPhoto {
			return nil
		}
		if request.Data.Field(0) == callbacks.PhotoAdd {
			session.GoTo(fsm.StepObjectPhoto)
		} else {
			session.SkipObjectPhotos()
		}

	case fsm.StepObjectPhoto:
		if limitReached := session.AddObjectPhoto(request.PhotoID); limitReached {
			return append(
				[]tgbotapi.Chattable{c.replyText(request, "object_photos_limit", lang)},
				c.open(ctx, request, session)...,
			)
		}

	case fsm.StepNotifications:
		if request.Data.Prefix != callbacks.PrefixNotifications {
			return nil
		}
		session.Draft.Notifications = request.Data.Field(0) == callbacks.Yes
		session.Next()

	case fsm.StepConfirmation:
		if request.Data.Prefix != callbacks.PrefixConfirm {
			return nil
		}
		if request.Data.Field(0) == callbacks.ConfirmRetype {
			session.Retype()
			break
		}
		return c.submit(ctx, request, session)
	}

	return c.open(ctx, request, session)
}

func (c *workerProfileCommand) submit(ctx context.Context, request *Request, session *fsm.Session) []tgbotapi.Chattable {
	passportURL, err := c.fileLinker.GetFileDirectURL(session.Draft.PassportPhotoID)
	if err != nil {
		c.logger.Warnw("failed to get passport photo link", "telegram_id", request.Profile.TelegramID, "error", err)
		passportURL = ""
	}

	if _, err := c.workerService.SaveProfile(ctx, request.Profile, session.Draft, passportURL); err != nil {
		c.logger.Errorw("failed to save worker profile", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}
	c.close(ctx, request)

	return []tgbotapi.Chattable{
		c.reply(request, c.renderer.Text("worker_cv_sent", models.LanguageRussian), c.keyboards.ToMainMenu(models.RoleWorker)),
	}
}
