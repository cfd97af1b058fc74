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

type controlCommand struct {
	base
	parties
	jobService      services.JobService
	proposalService services.ProposalService
	reviewService   services.ReviewService
}

func NewControlCommand(
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
	return &controlCommand{
		base:            base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		parties:         parties{workerService: workerService, employerService: employerService},
		jobService:      jobService,
		proposalService: proposalService,
		reviewService:   reviewService,
	}
}

func (c *controlCommand) CanHandle(route string) bool {
	return route == string(callbacks.PrefixWorkerControl) || route == string(callbacks.PrefixEmployerControl)
}

func (c *controlCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	control, action := request.Data.Field(0), request.Data.Field(1)

	id, err := request.Data.Int64(2)
	if err != nil {
		c.logger.Warnw("received invalid control id", "data", request.Data.String(), "error", err)
		return nil
	}

	c.logger.Infow("received control", "telegram_id", request.Profile.TelegramID, "control", control, "action", action, "id", id)

	var replies []tgbotapi.Chattable
	switch control {
	case callbacks.ControlPropose:
		replies, err = c.propose(request, id)
	case callbacks.ControlResend:
		replies, err = c.resend(request, id)
	case callbacks.ControlAnswer:
		replies, err = c.answer(request, id, action == callbacks.ActionAccept)
	case callbacks.ControlReview:
		replies, err = c.startReview(ctx, request, id)
	case callbacks.ControlNotifications:
		replies, err = c.toggleWorker(request, c.workerService.ToggleNotifications)
	case callbacks.ControlSearching:
		replies, err = c.toggleWorker(request, c.workerService.ToggleSearching)
	case callbacks.ControlCV:
		replies, err = c.changeCV(ctx, request)
	case callbacks.ControlJobNotif:
		replies, err = c.toggleJob(request, id, c.jobService.ToggleNotifications)
	case callbacks.ControlJobActive:
		replies, err = c.toggleJob(request, id, c.jobService.ToggleActive)
	case callbacks.ControlJobCreate:
		replies = c.open(ctx, request, fsm.Start(fsm.FlowJob))
	case callbacks.ControlPhone:
		replies = c.open(ctx, request, fsm.Start(fsm.FlowEmployerProfile))
	default:
		c.logger.Warnw("received unknown control", "control", control)
		return nil
	}

	switch {
	case errors.Is(err, services.ErrProfilePending):
		return c.alert(request, "profile_waiting", models.LanguageRussian)
	case errors.Is(err, services.ErrProfileInactive):
		return c.alert(request, "worker_check_failed", models.LanguageRussian)
	case errors.Is(err, services.ErrNotAllowed), errors.Is(err, services.ErrInvalidTransition):
		return c.alert(request, "proposal_not_allowed", request.Lang())
	case errors.Is(err, services.ErrNotFound):
		return c.notFound(request, err)
	case err != nil:
		c.logger.Errorw("failed to handle control", "control", control, "id", id, "error", err)
		return c.failure(request)
	}

	return replies
}

func (c *controlCommand) propose(request *Request, id int64) ([]tgbotapi.Chattable, error) {
	var (
		proposal *models.Proposal
		created  bool
		err      error
	)

	if request.Role() == models.RoleEmployer {
		employer, err := c.employerService.GetByTelegramID(request.Profile.TelegramID)
		if err != nil {
			return nil, err
		}
		proposal, created, err = c.proposalService.ProposeToWorker(employer, id)
		if err != nil {
			return nil, err
		}
	} else {
		worker, denied := c.activeWorker(request, c.workerService)
		if denied != nil {
			return denied, nil
		}
		proposal, created, err = c.proposalService.ProposeToJob(worker, id)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case !created:
		return c.alert(request, "proposal_exists", request.Lang()), nil
	case proposal.IsDeclined():
		return c.alert(request, "proposal_unavailable", request.Lang()), nil
	}

	return c.alert(request, "proposal_sent", request.Lang()), nil
}

func (c *controlCommand) resend(request *Request, proposalID int64) ([]tgbotapi.Chattable, error) {
	partyID, denied, err := c.activeParty(request)
	if denied != nil || err != nil {
		return denied, err
	}

	proposal, err := c.proposalService.Resend(proposalID, request.Role(), partyID)
	if err != nil {
		return nil, err
	}

	if proposal.IsDeclined() {
		return c.alert(request, "proposal_unavailable", request.Lang()), nil
	}
	return c.alert(request, "proposal_sent", request.Lang()), nil
}

func (c *controlCommand) answer(request *Request, proposalID int64, accept bool) ([]tgbotapi.Chattable, error) {
	role := request.Role()

	partyID, denied, err := c.activeParty(request)
	if denied != nil || err != nil {
		return denied, err
	}

	proposal, err := c.proposalService.Respond(proposalID, role, partyID, accept)
	if err != nil {
		return nil, err
	}

	canReview := false
	if proposal.IsAccepted() {
		reviewed, err := c.reviewService.HasReviewed(role, partyID, proposal.PartyID(role.Counterpart()))
		canReview = err == nil && !reviewed
	}

	return []tgbotapi.Chattable{
		tgbotapi.NewCallback(request.CallbackID, c.renderer.Text("proposal_answered", role.Language())),
		c.edit(request, c.renderer.Proposal(proposal, role), c.keyboards.Proposal(proposal, role, canReview)),
	}, nil
}

// startReview opens the review flow for the counterpart of an accepted proposal.
func (c *controlCommand) startReview(ctx context.Context, request *Request, rateeID int64) ([]tgbotapi.Chattable, error) {
	role := request.Role()

	authorID, denied, err := c.activeParty(request)
	if denied != nil || err != nil {
		return denied, err
	}

	reviewed, err := c.reviewService.HasReviewed(role, authorID, rateeID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return c.alert(request, "review_exists", role.Language()), nil
	}

	return c.open(ctx, request, fsm.StartReview(rateeID)), nil
}

// activeParty resolves the profile id of the user. Workers must have an approved profile.
func (c *controlCommand) activeParty(request *Request) (int64, []tgbotapi.Chattable, error) {
	if request.Role() == models.RoleWorker {
		worker, denied := c.activeWorker(request, c.workerService)
		if denied != nil {
			return 0, denied, nil
		}
		return worker.ID, nil, nil
	}

	employerID, err := c.partyID(models.RoleEmployer, request.Profile.TelegramID)
	return employerID, nil, err
}

func (c *controlCommand) toggleWorker(request *Request, toggle func(telegramID int64) (*models.Worker, error)) ([]tgbotapi.Chattable, error) {
	worker, err := toggle(request.Profile.TelegramID)
	if err != nil {
		return nil, err
	}

	rating, err := c.reviewService.Rating(models.RoleWorker, worker.ID)
	if err != nil {
		c.logger.Warnw("failed to get rating", "worker_id", worker.ID, "error", err)
	}

	return []tgbotapi.Chattable{
		tgbotapi.NewCallback(request.CallbackID, c.renderer.Text("saved", models.LanguageRussian)),
		c.edit(request, c.renderer.WorkerProfile(worker, rating), c.keyboards.WorkerProfile(worker)),
	}, nil
}

// changeCV sends the profile back to moderation and restarts the profile flow.
// Profiles waiting for a decision are left alone.
func (c *controlCommand) changeCV(ctx context.Context, request *Request) ([]tgbotapi.Chattable, error) {
	if _, err := c.workerService.RestartProfile(request.Profile.TelegramID); err != nil {
		return nil, err
	}

	return c.open(ctx, request, fsm.Start(fsm.FlowWorkerProfile)), nil
}

func (c *controlCommand) toggleJob(request *Request, jobID int64, toggle func(jobID, employerID int64) (*models.Job, error)) ([]tgbotapi.Chattable, error) {
	employerID, err := c.partyID(models.RoleEmployer, request.Profile.TelegramID)
	if err != nil {
		return nil, err
	}

	job, err := toggle(jobID, employerID)
	if err != nil {
		return nil, err
	}

	return []tgbotapi.Chattable{
		tgbotapi.NewCallback(request.CallbackID, c.renderer.Text("saved", models.LanguageHebrew)),
		c.edit(request, c.renderer.OwnJob(job), c.keyboards.OwnJob(job)),
	}, nil
}
