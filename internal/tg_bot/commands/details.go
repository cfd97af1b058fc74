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

type detailsCommand struct {
	base
	parties
	jobService      services.JobService
	proposalService services.ProposalService
	reviewService   services.ReviewService
}

func NewDetailsCommand(
	workerService services.WorkerService,
	employerService services.EmployerService,
	jobService services.JobService,
	proposalService services.ProposalService,
	reviewService services.ReviewService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &detailsCommand{
		base:            base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		parties:         parties{workerService: workerService, employerService: employerService},
		jobService:      jobService,
		proposalService: proposalService,
		reviewService:   reviewService,
	}
}

func (c *detailsCommand) CanHandle(route string) bool {
	return route == string(callbacks.PrefixWorkerDetails) || route == string(callbacks.PrefixEmployerDetails)
}

func (c *detailsCommand) Handle(_ context.Context, request *Request) []tgbotapi.Chattable {
	role := request.Role()
	object := request.Data.Field(0)

	id, err := request.Data.Int64(1)
	if err != nil {
		c.logger.Warnw("received invalid details id", "data", request.Data.String(), "error", err)
		return nil
	}

	partyID, err := c.partyID(role, request.Profile.TelegramID)
	if err != nil {
		return c.notFound(request, err)
	}

	var reply tgbotapi.Chattable
	switch {
	case object == callbacks.ObjectJob && role == models.RoleWorker:
		reply, err = c.job(request, id)
	case object == callbacks.ObjectJob:
		reply, err = c.ownJob(request, id, partyID)
	case object == callbacks.ObjectWorker && role == models.RoleEmployer:
		reply, err = c.worker(request, id)
	case object == callbacks.ObjectEmployer && role == models.RoleWorker:
		reply, err = c.employer(request, id)
	case object == callbacks.ObjectProposal:
		reply, err = c.proposal(request, id, role, partyID)
	case object == callbacks.ObjectReview:
		reply, err = c.review(request, id, role, partyID)
	default:
		c.logger.Warnw("received unknown details object", "role", role, "object", object)
		return nil
	}

	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNotAllowed):
		return c.notFound(request, err)
	case err != nil:
		c.logger.Errorw("failed to open details", "data", request.Data.String(), "error", err)
		return c.failure(request)
	}

	return []tgbotapi.Chattable{reply}
}

func (c *detailsCommand) job(request *Request, jobID int64) (tgbotapi.Chattable, error) {
	job, err := c.jobService.Get(jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsVisible() {
		return nil, services.ErrNotFound
	}

	return c.reply(request, c.renderer.Job(job, "job"), c.keyboards.JobForWorker(job)), nil
}

func (c *detailsCommand) ownJob(request *Request, jobID, employerID int64) (tgbotapi.Chattable, error) {
	job, err := c.jobService.Get(jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, services.ErrNotAllowed
	}

	return c.reply(request, c.renderer.OwnJob(job), c.keyboards.OwnJob(job)), nil
}

func (c *detailsCommand) worker(request *Request, workerID int64) (tgbotapi.Chattable, error) {
	worker, err := c.workerService.Get(workerID)
	if err != nil {
		return nil, err
	}
	if !worker.IsListed() {
		return nil, services.ErrNotFound
	}

	rating, err := c.reviewService.Rating(models.RoleWorker, worker.ID)
	if err != nil {
		c.logger.Warnw("failed to get rating", "worker_id", worker.ID, "error", err)
	}

	return c.reply(request, c.renderer.Worker(worker, rating, "worker"), c.keyboards.WorkerForEmployer(worker)), nil
}

func (c *detailsCommand) employer(request *Request, employerID int64) (tgbotapi.Chattable, error) {
	employer, err := c.employerService.Get(employerID)
	if err != nil {
		return nil, err
	}

	rating, err := c.reviewService.Rating(models.RoleEmployer, employer.ID)
	if err != nil {
		c.logger.Warnw("failed to get rating", "employer_id", employer.ID, "error", err)
	}

	return c.reply(request, c.renderer.Employer(employer, rating, models.LanguageRussian), c.keyboards.ToMainMenu(models.RoleWorker)), nil
}

func (c *detailsCommand) proposal(request *Request, proposalID int64, role models.Role, partyID int64) (tgbotapi.Chattable, error) {
	proposal, err := c.proposalService.Get(proposalID, role, partyID)
	if err != nil {
		return nil, err
	}

	canReview := false
	if proposal.IsAccepted() {
		reviewed, err := c.reviewService.HasReviewed(role, partyID, proposal.PartyID(role.Counterpart()))
		if err != nil {
			c.logger.Warnw("failed to check review", "proposal_id", proposal.ID, "error", err)
		}
		canReview = err == nil && !reviewed
	}

	return c.reply(request, c.renderer.Proposal(proposal, role), c.keyboards.Proposal(proposal, role, canReview)), nil
}

func (c *detailsCommand) review(request *Request, reviewID int64, role models.Role, partyID int64) (tgbotapi.Chattable, error) {
	review, err := c.reviewService.Get(reviewID, role, partyID)
	if err != nil {
		return nil, err
	}

	return c.reply(request, c.renderer.Review(review, role), c.keyboards.Review(role)), nil
}
