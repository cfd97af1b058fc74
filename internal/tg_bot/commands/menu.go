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

var sectionTexts = map[string]string{
	callbacks.SectionJobs:      "choose_jobs_section",
	callbacks.SectionWorkers:   "choose_workers_section",
	callbacks.SectionProposals: "choose_proposals_section",
	callbacks.SectionReviews:   "choose_reviews_section",
}

type menuCommand struct {
	base
	workerService   services.WorkerService
	employerService services.EmployerService
	reviewService   services.ReviewService
}

func NewMenuCommand(
	workerService services.WorkerService,
	employerService services.EmployerService,
	reviewService services.ReviewService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &menuCommand{
		base:            base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		workerService:   workerService,
		employerService: employerService,
		reviewService:   reviewService,
	}
}

func (c *menuCommand) CanHandle(route string) bool {
	return route == string(callbacks.PrefixWorkerMenu) || route == string(callbacks.PrefixEmployerMenu)
}

func (c *menuCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	section := request.Data.Field(0)

	if request.Role() == models.RoleEmployer {
		return c.employerMenu(ctx, request, section)
	}
	return c.workerMenu(ctx, request, section)
}

func (c *menuCommand) workerMenu(ctx context.Context, request *Request, section string) []tgbotapi.Chattable {
	role := models.RoleWorker

	switch section {
	case callbacks.SectionMain:
		return []tgbotapi.Chattable{c.mainMenu(request, role)}

	case callbacks.SectionProfile:
		worker, err := c.workerService.GetByTelegramID(request.Profile.TelegramID)
		if errors.Is(err, services.ErrNotFound) {
			return c.open(ctx, request, fsm.Start(fsm.FlowWorkerProfile))
		} else if err != nil {
			c.logger.Errorw("failed to get worker", "telegram_id", request.Profile.TelegramID, "error", err)
			return c.failure(request)
		}
		return []tgbotapi.Chattable{c.workerProfile(request, worker)}

	case callbacks.SectionJobs, callbacks.SectionProposals, callbacks.SectionReviews:
		if _, denied := c.activeWorker(request, c.workerService); denied != nil {
			return denied
		}
		return []tgbotapi.Chattable{c.section(request, role, section)}
	}

	c.logger.Warnw("received unknown menu section", "section", section)
	return nil
}

func (c *menuCommand) employerMenu(ctx context.Context, request *Request, section string) []tgbotapi.Chattable {
	role := models.RoleEmployer

	employer, err := c.employerService.GetByTelegramID(request.Profile.TelegramID)
	if errors.Is(err, services.ErrNotFound) {
		return c.open(ctx, request, fsm.Start(fsm.FlowEmployerProfile))
	} else if err != nil {
		c.logger.Errorw("failed to get employer", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}

	switch section {
	case callbacks.SectionMain:
		return []tgbotapi.Chattable{c.mainMenu(request, role)}

	case callbacks.SectionProfile:
		rating, err := c.reviewService.Rating(role, employer.ID)
		if err != nil {
			c.logger.Warnw("failed to get rating", "employer_id", employer.ID, "error", err)
		}
		return []tgbotapi.Chattable{c.reply(request, c.renderer.EmployerProfile(employer, rating), c.keyboards.EmployerProfile(employer))}

	case callbacks.SectionJobs, callbacks.SectionWorkers, callbacks.SectionProposals, callbacks.SectionReviews:
		return []tgbotapi.Chattable{c.section(request, role, section)}
	}

	c.logger.Warnw("received unknown menu section", "section", section)
	return nil
}

func (c *menuCommand) section(request *Request, role models.Role, section string) tgbotapi.Chattable {
	return c.reply(request, c.renderer.Text(sectionTexts[section], role.Language()), c.keyboards.Section(role, section))
}

func (c *menuCommand) workerProfile(request *Request, worker *models.Worker) tgbotapi.Chattable {
	rating, err := c.reviewService.Rating(models.RoleWorker, worker.ID)
	if err != nil {
		c.logger.Warnw("failed to get rating", "worker_id", worker.ID, "error", err)
	}
	return c.reply(request, c.renderer.WorkerProfile(worker, rating), c.keyboards.WorkerProfile(worker))
}
