package notifications_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"work_exchange/configs"
	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/notifications"
	mock_notifications "work_exchange/internal/notifications/mocks"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testAdminConfig = configs.Admin{ChatID: -100, ReviewsChatID: -200, ProposalsChatID: -300}

type notifierFixture struct {
	notifier           services.Notifier
	dispatcher         *mock_notifications.MockDispatcher
	sender             *mock_notifications.MockSender
	channelRepository  *mock_repositories.MockChannelRepository
	workerRepository   *mock_repositories.MockWorkerRepository
	employerRepository *mock_repositories.MockEmployerRepository
	proposalRepository *mock_repositories.MockProposalRepository
	tasks              map[string]notifications.Task
}

func newNotifierFixture(t *testing.T) *notifierFixture {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop().Sugar()

	catalogRepository := mock_repositories.NewMockCatalogRepository(ctrl)
	catalogRepository.EXPECT().GetTexts().Return(nil, errors.New("offline")).AnyTimes()
	c := catalog.NewCatalog(catalogRepository, time.Hour, logger)

	f := &notifierFixture{
		dispatcher:         mock_notifications.NewMockDispatcher(ctrl),
		sender:             mock_notifications.NewMockSender(ctrl),
		channelRepository:  mock_repositories.NewMockChannelRepository(ctrl),
		workerRepository:   mock_repositories.NewMockWorkerRepository(ctrl),
		employerRepository: mock_repositories.NewMockEmployerRepository(ctrl),
		proposalRepository: mock_repositories.NewMockProposalRepository(ctrl),
		tasks:              map[string]notifications.Task{},
	}

	f.notifier = notifications.NewNotifier(
		testAdminConfig,
		configs.Notifications{},
		f.dispatcher,
		f.sender,
		views.NewRenderer(c),
		keyboards.New(c, "work_exchange_bot"),
		f.channelRepository,
		f.workerRepository,
		f.employerRepository,
		f.proposalRepository,
		logger,
	)

	return f
}

func (f *notifierFixture) captureTasks() {
	f.dispatcher.EXPECT().Enqueue(gomock.Any()).DoAndReturn(func(task notifications.Task) error {
		f.tasks[task.Name] = task
		return nil
	}).AnyTimes()
}

func (f *notifierFixture) run(t *testing.T, name string) error {
	task, ok := f.tasks[name]
	require.True(t, ok, "task %s was not enqueued", name)
	return task.Run(context.Background())
}

func messageText(c tgbotapi.Chattable) (int64, string) {
	message := c.(tgbotapi.MessageConfig)
	return message.ChatID, message.Text
}

func TestNotifier_WorkerDeclinedNotifiesOnlyWorker(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	worker := &models.Worker{ID: 1, TelegramID: 111, Approval: models.ApprovalStatusDeclined}
	require.NoError(t, f.notifier.WorkerModerated(worker))

	assert.Len(t, f.tasks, 1)

	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		chatID, text := messageText(c)
		assert.Equal(t, int64(111), chatID)
		assert.Equal(t, "Ваше резюме отклонено. Пожалуйста, заполните его заново", text)
		return tgbotapi.Message{}, nil
	})

	assert.NoError(t, f.run(t, "worker_declined"))
}

func TestNotifier_WorkerApprovedFansOut(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	worker := &models.Worker{
		ID:           1,
		TelegramID:   111,
		Occupations:  []string{"tile"},
		MinSalary:    40,
		About:        "опыт",
		AboutHeb:     "ניסיון",
		ObjectPhotos: []string{"p1", "p2"},
		Approval:     models.ApprovalStatusApproved,
		IsSearching:  true,
	}
	require.NoError(t, f.notifier.WorkerModerated(worker))
	assert.Len(t, f.tasks, 3)

	f.channelRepository.EXPECT().GetManyActive(models.AudienceEmployers).Return([]*models.Channel{
		{TelegramID: -1001}, {TelegramID: -1002},
	}, nil)

	f.sender.EXPECT().SendMediaGroup(gomock.Any()).Return(nil, nil).Times(2)

	var chats []int64
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		chatID, text := messageText(c)
		chats = append(chats, chatID)
		assert.True(t, strings.HasPrefix(text, "\u202B*עובד חדש*"))
		if chatID == -1001 {
			return tgbotapi.Message{}, &tgbotapi.Error{Code: 403, Message: "Forbidden"}
		}
		return tgbotapi.Message{}, nil
	}).Times(2)

	err := f.run(t, "worker_channels")
	assert.Error(t, err)
	assert.Equal(t, []int64{-1001, -1002}, chats)

	f.employerRepository.EXPECT().GetManyMatchingWorker(worker).Return([]*models.Employer{{TelegramID: 222}}, nil)
	f.sender.EXPECT().SendMediaGroup(gomock.Any()).Return(nil, nil)
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		chatID, text := messageText(c)
		assert.Equal(t, int64(222), chatID)
		assert.Contains(t, text, "עובד חדש שעשוי לעניין אותך")
		return tgbotapi.Message{}, nil
	})

	assert.NoError(t, f.run(t, "worker_employers"))
}

func TestNotifier_EnqueueFailureIsReported(t *testing.T) {
	f := newNotifierFixture(t)
	f.dispatcher.EXPECT().Enqueue(gomock.Any()).Return(notifications.ErrQueueFull)

	err := f.notifier.JobSubmitted(&models.Job{ID: 5})

	assert.ErrorIs(t, err, notifications.ErrQueueFull)
}

func TestNotifier_ReviewSubmittedGoesToReviewsChat(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	review := &models.Review{
		ID:       9,
		Author:   models.RoleEmployer,
		Worker:   &models.Worker{Name: "Иван"},
		Employer: &models.Employer{Name: "Бетон"},
		Rate:     4,
	}
	require.NoError(t, f.notifier.ReviewSubmitted(review))

	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		message := c.(tgbotapi.MessageConfig)
		assert.Equal(t, testAdminConfig.ReviewsChatID, message.ChatID)

		markup := message.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		assert.Equal(t, "a:e_review:accept:9", *markup.InlineKeyboard[0][0].CallbackData)
		return tgbotapi.Message{}, nil
	})

	assert.NoError(t, f.run(t, "review_request"))
}

func acceptedProposal() *models.Proposal {
	return &models.Proposal{
		ID:         3,
		Kind:       models.ProposalKindWorker,
		WorkerID:   1,
		Worker:     &models.Worker{TelegramID: 111, Name: "Иван"},
		EmployerID: 2,
		Employer:   &models.Employer{TelegramID: 222, Name: "Бетон"},
		Status:     models.ProposalStatusAccepted,
	}
}

func TestNotifier_ProposalReportMarksProceededAfterSend(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	require.NoError(t, f.notifier.ProposalAnswered(acceptedProposal()))
	assert.Len(t, f.tasks, 2)

	f.proposalRepository.EXPECT().GetOne(int64(3)).Return(acceptedProposal(), nil)
	f.proposalRepository.EXPECT().CountReportedBetween(int64(1), int64(2), int64(3)).Return(1, nil)
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		chatID, text := messageText(c)
		assert.Equal(t, testAdminConfig.ProposalsChatID, chatID)
		assert.True(t, strings.HasPrefix(text, "❗️*ПОВТОРНО ПРИНЯТОЕ ПРЕДЛОЖЕНИЕ"))
		return tgbotapi.Message{}, nil
	})
	f.proposalRepository.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Proposal) (*models.Proposal, error) {
		assert.True(t, p.IsProceeded)
		return p, nil
	})

	assert.NoError(t, f.run(t, "proposal_report"))
}

func TestNotifier_ProposalReportKeepsRecordWhenSendFails(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	require.NoError(t, f.notifier.ProposalAnswered(acceptedProposal()))

	f.proposalRepository.EXPECT().GetOne(int64(3)).Return(acceptedProposal(), nil)
	f.proposalRepository.EXPECT().CountReportedBetween(int64(1), int64(2), int64(3)).Return(0, nil)
	f.sender.EXPECT().Send(gomock.Any()).Return(tgbotapi.Message{}, errors.New("timeout"))
	f.proposalRepository.EXPECT().Update(gomock.Any()).Times(0)

	assert.Error(t, f.run(t, "proposal_report"))
}

func TestNotifier_ProposalReportSkipsProceeded(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	require.NoError(t, f.notifier.ProposalAnswered(acceptedProposal()))

	proceeded := acceptedProposal()
	proceeded.IsProceeded = true
	f.proposalRepository.EXPECT().GetOne(int64(3)).Return(proceeded, nil)

	assert.NoError(t, f.run(t, "proposal_report"))
}

func TestNotifier_DeclinedProposalIsNotReported(t *testing.T) {
	f := newNotifierFixture(t)
	f.captureTasks()

	proposal := acceptedProposal()
	proposal.Status = models.ProposalStatusDeclined
	require.NoError(t, f.notifier.ProposalAnswered(proposal))

	assert.Len(t, f.tasks, 1)

	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		chatID, text := messageText(c)
		assert.Equal(t, int64(111), chatID)
		assert.Equal(t, "Ваше предложение отклонено", text)
		return tgbotapi.Message{}, nil
	})
	assert.NoError(t, f.run(t, "proposal_answered"))
}
