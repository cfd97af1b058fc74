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

type jobCommand struct {
	base
	employerService services.EmployerService
	jobService      services.JobService
}

func NewJobCommand(
	employerService services.EmployerService,
	jobService services.JobService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &jobCommand{
		base:            base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		employerService: employerService,
		jobService:      jobService,
	}
}

func (c *jobCommand) CanHandle(route string) bool {
	return route == string(fsm.FlowJob)
}

func (c *jobCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	session := request.Session

	switch session.Step {
	case fsm.StepOccupations:
		if request.Data.Prefix != callbacks.PrefixOccupation {
			return nil
		}
		if replies, done := c.selectOccupation(ctx, request, session); !done {
			return replies
		}

	case fsm.StepMinSalary:
		salary, err := fsm.ValidateSalary(request.Text)
		if err != nil {
			return []tgbotapi.Chattable{c.replyText(request, "wrong_salary", models.LanguageHebrew)}
		}
		session.Draft.MinSalary = salary
		session.Next()

	case fsm.StepDescription:
		description := strings.TrimSpace(request.Text)
		if description == "" {
			return nil
		}
		session.Draft.Description = description
		session.Next()

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

func (c *jobCommand) submit(ctx context.Context, request *Request, session *fsm.Session) []tgbotapi.Chattable {
	employer, err := c.employerService.GetByTelegramID(request.Profile.TelegramID)
	if err != nil {
		c.logger.Errorw("failed to get employer", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}

	job, err := c.jobService.Create(employer, session.Draft)
	if err != nil {
		c.logger.Errorw("failed to create job", "employer_id", employer.ID, "error", err)
		return c.failure(request)
	}
	c.close(ctx, request)
	c.logger.Infow("job submitted", "job_id", job.ID)

	return []tgbotapi.Chattable{
		c.reply(request, c.renderer.Text("job_sent", models.LanguageHebrew), c.keyboards.Section(models.RoleEmployer, callbacks.SectionJobs)),
	}
}
