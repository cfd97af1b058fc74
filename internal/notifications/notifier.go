package notifications

import (
	"context"
	"fmt"

	"work_exchange/configs"
	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type notifier struct {
	adminConfig         configs.Admin
	notificationsConfig configs.Notifications
	dispatcher          Dispatcher
	fanout              *fanout
	renderer            views.Renderer
	keyboards           keyboards.Keyboards
	channelRepository   repositories.ChannelRepository
	workerRepository    repositories.WorkerRepository
	employerRepository  repositories.EmployerRepository
	proposalRepository  repositories.ProposalRepository
	logger              *zap.SugaredLogger
}

// NewNotifier schedules every notification on the dispatcher.
func NewNotifier(
	adminConfig configs.Admin,
	notificationsConfig configs.Notifications,
	dispatcher Dispatcher,
	sender Sender,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	channelRepository repositories.ChannelRepository,
	workerRepository repositories.WorkerRepository,
	employerRepository repositories.EmployerRepository,
	proposalRepository repositories.ProposalRepository,
	logger *zap.SugaredLogger,
) services.Notifier {
	return &notifier{
		adminConfig:         adminConfig,
		notificationsConfig: notificationsConfig,
		dispatcher:          dispatcher,
		fanout:              newFanout(sender, logger),
		renderer:            renderer,
		keyboards:           keyboards,
		channelRepository:   channelRepository,
		workerRepository:    workerRepository,
		employerRepository:  employerRepository,
		proposalRepository:  proposalRepository,
		logger:              logger,
	}
}

func (n *notifier) enqueue(name string, run func(ctx context.Context) error) error {
	if err := n.dispatcher.Enqueue(Task{Name: name, Run: run}); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", name, err)
	}
	return nil
}

func (n *notifier) message(text string, markup interface{}) Delivery {
	return Delivery{Message: func(chatID int64) tgbotapi.Chattable {
		return markdownMessage(chatID, text, markup)
	}}
}

func (n *notifier) send(chatID int64, delivery Delivery) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return n.fanout.deliver(chatID, delivery)
	}
}

func (n *notifier) WorkerSubmitted(worker *models.Worker) error {
	delivery := n.message(n.renderer.WorkerRequest(worker), n.keyboards.Admin(services.ModerationTargetWorker, worker.ID))

	delivery.Photos = append(delivery.Photos, worker.ObjectPhotos...)
	if worker.PassportPhotoFileID != "" {
		delivery.Photos = append([]string{worker.PassportPhotoFileID}, delivery.Photos...)
	}

	return n.enqueue("worker_request", n.send(n.adminConfig.ChatID, delivery))
}

func (n *notifier) JobSubmitted(job *models.Job) error {
	delivery := n.message(n.renderer.JobRequest(job), n.keyboards.Admin(services.ModerationTargetJob, job.ID))
	return n.enqueue("job_request", n.send(n.adminConfig.ChatID, delivery))
}

func (n *notifier) ReviewSubmitted(review *models.Review) error {
	target := services.ModerationTargetWorkerReview
	if review.Author == models.RoleEmployer {
		target = services.ModerationTargetEmployerReview
	}

	delivery := n.message(n.renderer.ReviewRequest(review), n.keyboards.Admin(target, review.ID))
	return n.enqueue("review_request", n.send(n.adminConfig.ReviewsChatID, delivery))
}

func (n *notifier) WorkerModerated(worker *models.Worker) error {
	lang := models.LanguageRussian
	text := n.renderer.Decision("worker_cv", worker.Approval, lang)

	if !worker.Approval.IsApproved() {
		return n.enqueue("worker_declined", n.send(worker.TelegramID, n.message(text, n.keyboards.WorkerProfile(worker))))
	}

	return multierr.Combine(
		n.enqueue("worker_approved", n.send(worker.TelegramID, n.message(text, n.keyboards.ToMainMenu(models.RoleWorker)))),
		n.enqueue("worker_channels", n.workerToChannels(worker)),
		n.enqueue("worker_employers", n.workerToEmployers(worker)),
	)
}

func (n *notifier) workerToChannels(worker *models.Worker) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		channels, err := n.channelRepository.GetManyActive(models.AudienceEmployers)
		if err != nil {
			return fmt.Errorf("failed to get channels: %w", err)
		}

		delivery := n.message(n.renderer.WorkerAnnouncement(worker, "new_worker"), n.keyboards.ChannelMore(models.AudienceEmployers))
		delivery.Photos = worker.ObjectPhotos

		return n.fanout.each(ctx, channelIDs(channels), n.notificationsConfig.ChannelDelay, delivery)
	}
}

func (n *notifier) workerToEmployers(worker *models.Worker) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		employers, err := n.employerRepository.GetManyMatchingWorker(worker)
		if err != nil {
			return fmt.Errorf("failed to get matching employers: %w", err)
		}

		chatIDs := make([]int64, 0, len(employers))
		for _, employer := range employers {
			chatIDs = append(chatIDs, employer.TelegramID)
		}

		delivery := n.message(
			n.renderer.WorkerAnnouncement(worker, "new_worker_interesting"),
			n.keyboards.Details(models.RoleEmployer, callbacks.ObjectWorker, worker.ID),
		)
		delivery.Photos = worker.ObjectPhotos

		return n.fanout.each(ctx, chatIDs, n.notificationsConfig.RecipientDelay, delivery)
	}
}

func (n *notifier) JobModerated(job *models.Job) error {
	if job.Employer == nil {
		return fmt.Errorf("job %d has no employer loaded", job.ID)
	}

	lang := models.LanguageHebrew
	text := n.renderer.Decision("job", job.Approval, lang)

	if !job.Approval.IsApproved() {
		return n.enqueue("job_declined", n.send(job.Employer.TelegramID, n.message(text, n.keyboards.ToMainMenu(models.RoleEmployer))))
	}

	return multierr.Combine(
		n.enqueue("job_approved", n.send(job.Employer.TelegramID, n.message(text, n.keyboards.Section(models.RoleEmployer, callbacks.SectionJobs)))),
		n.enqueue("job_channels", n.jobToChannels(job)),
		n.enqueue("job_workers", n.jobToWorkers(job)),
	)
}

func (n *notifier) jobToChannels(job *models.Job) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		channels, err := n.channelRepository.GetManyActive(models.AudienceWorkers)
		if err != nil {
			return fmt.Errorf("failed to get channels: %w", err)
		}

		delivery := n.message(n.renderer.JobAnnouncement(job, "new_job"), n.keyboards.ChannelMore(models.AudienceWorkers))

		return n.fanout.each(ctx, channelIDs(channels), n.notificationsConfig.ChannelDelay, delivery)
	}
}

func (n *notifier) jobToWorkers(job *models.Job) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		workers, err := n.workerRepository.GetManyMatchingJob(job)
		if err != nil {
			return fmt.Errorf("failed to get matching workers: %w", err)
		}

		chatIDs := make([]int64, 0, len(workers))
		for _, worker := range workers {
			chatIDs = append(chatIDs, worker.TelegramID)
		}

		delivery := n.message(
			n.renderer.JobAnnouncement(job, "new_job_interesting"),
			n.keyboards.Details(models.RoleWorker, callbacks.ObjectJob, job.ID),
		)

		return n.fanout.each(ctx, chatIDs, n.notificationsConfig.RecipientDelay, delivery)
	}
}

func (n *notifier) ReviewModerated(review *models.Review) error {
	if review.Worker == nil || review.Employer == nil {
		return fmt.Errorf("review %d has no parties loaded", review.ID)
	}

	authorChat, rateeChat := review.Worker.TelegramID, review.Employer.TelegramID
	if review.Author == models.RoleEmployer {
		authorChat, rateeChat = rateeChat, authorChat
	}

	author := review.Author
	authorText := n.renderer.Decision("review", review.Approval, author.Language())
	err := n.enqueue("review_author", n.send(authorChat, n.message(authorText, n.keyboards.ToMainMenu(author))))

	if review.Approval.IsApproved() {
		ratee := review.Ratee()
		delivery := n.message(n.renderer.Text("review_new", ratee.Language()), n.keyboards.Details(ratee, callbacks.ObjectReview, review.ID))
		err = multierr.Append(err, n.enqueue("review_ratee", n.send(rateeChat, delivery)))
	}

	return err
}

func (n *notifier) ProposalCreated(proposal *models.Proposal) error {
	recipient := proposal.Recipient()

	chatID, ok := partyChat(proposal, recipient)
	if !ok {
		return fmt.Errorf("proposal %d has no %s loaded", proposal.ID, recipient)
	}

	delivery := n.message(n.renderer.Text("proposal_new", recipient.Language()), n.keyboards.Details(recipient, callbacks.ObjectProposal, proposal.ID))
	return n.enqueue("proposal_created", n.send(chatID, delivery))
}

func (n *notifier) ProposalAnswered(proposal *models.Proposal) error {
	initiator := proposal.Initiator()

	chatID, ok := partyChat(proposal, initiator)
	if !ok {
		return fmt.Errorf("proposal %d has no %s loaded", proposal.ID, initiator)
	}

	slug := "proposal_declined"
	if proposal.IsAccepted() {
		slug = "proposal_accepted"
	}

	delivery := n.message(n.renderer.Text(slug, initiator.Language()), n.keyboards.Details(initiator, callbacks.ObjectProposal, proposal.ID))
	err := n.enqueue("proposal_answered", n.send(chatID, delivery))

	if proposal.IsAccepted() {
		err = multierr.Append(err, n.enqueue("proposal_report", n.reportProposal(proposal.ID)))
	}

	return err
}

// reportProposal posts an accepted proposal to the admins once. The record is
// marked proceeded only after the message went out.
func (n *notifier) reportProposal(proposalID int64) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		proposal, err := n.proposalRepository.GetOne(proposalID)
		if err != nil {
			return fmt.Errorf("failed to get proposal: %w", err)
		}

		if proposal.IsProceeded || !proposal.IsAccepted() {
			return nil
		}

		repeated, err := n.proposalRepository.CountReportedBetween(proposal.WorkerID, proposal.EmployerID, proposal.ID)
		if err != nil {
			return fmt.Errorf("failed to count reported proposals: %w", err)
		}

		if err := n.fanout.deliver(n.adminConfig.ProposalsChatID, n.message(n.renderer.ProposalReport(proposal, repeated > 0), nil)); err != nil {
			return err
		}

		proposal.IsProceeded = true
		if _, err := n.proposalRepository.Update(proposal); err != nil {
			return fmt.Errorf("failed to mark proposal proceeded: %w", err)
		}

		return nil
	}
}

func partyChat(proposal *models.Proposal, role models.Role) (int64, bool) {
	if role == models.RoleEmployer {
		if proposal.Employer == nil {
			return 0, false
		}
		return proposal.Employer.TelegramID, true
	}

	if proposal.Worker == nil {
		return 0, false
	}
	return proposal.Worker.TelegramID, true
}

func channelIDs(channels []*models.Channel) []int64 {
	ids := make([]int64, 0, len(channels))
	for _, channel := range channels {
		ids = append(ids, channel.TelegramID)
	}
	return ids
}
