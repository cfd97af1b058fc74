package commands

import (
	"context"
	"testing"

	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/pagination"
	"work_exchange/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestControlCommand(f *testFixture) Command {
	return NewControlCommand(f.workerService, f.employerService, f.jobService, f.proposalService, f.reviewService, f.store, f.renderer, f.keyboards, f.logger)
}

func TestStart_UnknownUserChoosesRole(t *testing.T) {
	f := newTestFixture(t)
	command := NewStartCommand(f.userService, f.store, f.renderer, f.keyboards, f.logger)

	request := messageRequest(models.RoleWorker, fsm.InputText, "/start")
	request.User = nil

	replies := command.Handle(context.Background(), request)

	require.Len(t, replies, 1)
	message := replies[0].(tgbotapi.MessageConfig)
	assert.Contains(t, message.Text, "Выберите, что вы ищете")
	assert.Contains(t, message.Text, "\u202Bבחר מה אתה מחפש")
	assert.IsType(t, tgbotapi.InlineKeyboardMarkup{}, message.ReplyMarkup)
}

func TestStart_ChoosingEmployerOpensPhoneFlow(t *testing.T) {
	f := newTestFixture(t)
	command := NewStartCommand(f.userService, f.store, f.renderer, f.keyboards, f.logger)

	request := callbackRequest(models.RoleWorker, "target:employer")
	request.User = nil

	user := &models.TelegramUser{TelegramID: testChatID, Role: models.RoleEmployer}
	f.userService.EXPECT().ChooseRole(testChatID, models.RoleEmployer).Return(user, nil)
	f.userService.EXPECT().HasProfile(user).Return(false, nil)

	replies := command.Handle(context.Background(), request)

	require.Len(t, replies, 1)
	assert.Equal(t, "\u202Bשלח את מספר הטלפון שלך או לחץ על הכפתור למטה", textOf(replies[0]))

	stored := f.storedSession(t)
	require.NotNil(t, stored)
	assert.Equal(t, fsm.FlowEmployerProfile, stored.Flow)
	assert.Equal(t, fsm.StepPhone, stored.Step)
}

func TestStart_LockedRoleAlerts(t *testing.T) {
	f := newTestFixture(t)
	command := NewStartCommand(f.userService, f.store, f.renderer, f.keyboards, f.logger)

	user := &models.TelegramUser{TelegramID: testChatID, Role: models.RoleWorker}
	f.userService.EXPECT().ChooseRole(testChatID, models.RoleEmployer).Return(user, services.ErrRoleLocked)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "target:employer"))

	require.Len(t, replies, 1)
	answer := replies[0].(tgbotapi.CallbackConfig)
	assert.True(t, answer.ShowAlert)
	assert.Equal(t, "Вы уже зарегистрированы в другой роли", answer.Text)
	assert.Nil(t, f.storedSession(t))
}

func TestMenu_PendingWorkerCannotOpenJobs(t *testing.T) {
	f := newTestFixture(t)
	command := NewMenuCommand(f.workerService, f.employerService, f.reviewService, f.store, f.renderer, f.keyboards, f.logger)

	f.workerService.EXPECT().GetByTelegramID(testChatID).Return(&models.Worker{ID: 1, Approval: models.ApprovalStatusPending}, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_menu:jobs"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Ваша анкета еще на проверке, раздел пока недоступен", textOf(replies[0]))
}

func TestMenu_WorkerWithoutProfileStartsFlow(t *testing.T) {
	f := newTestFixture(t)
	command := NewMenuCommand(f.workerService, f.employerService, f.reviewService, f.store, f.renderer, f.keyboards, f.logger)

	f.workerService.EXPECT().GetByTelegramID(testChatID).Return(nil, services.ErrNotFound)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_menu:profile"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Как вас зовут?", textOf(replies[0]))
	assert.Equal(t, fsm.FlowWorkerProfile, f.storedSession(t).Flow)
}

func TestMenu_MainMenu(t *testing.T) {
	f := newTestFixture(t)
	command := NewMenuCommand(f.workerService, f.employerService, f.reviewService, f.store, f.renderer, f.keyboards, f.logger)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_menu:main"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Выберите раздел меню", textOf(replies[0]))
}

func TestListing_EditsMessageWithPage(t *testing.T) {
	f := newTestFixture(t)
	command := NewListingCommand(f.workerService, f.employerService, f.listingService, f.store, f.renderer, f.keyboards, f.logger)

	employer := &models.Employer{ID: 3, TelegramID: testChatID}
	f.employerService.EXPECT().GetByTelegramID(testChatID).Return(employer, nil)

	page := pagination.Paginate([]services.Entry{
		{Worker: &models.Worker{ID: 10, Name: "Иван", MinSalary: 50}},
		{Worker: &models.Worker{ID: 11, Name: "Петр", MinSalary: 60}},
	}, 2, 5)
	f.listingService.EXPECT().Page(models.RoleEmployer, int64(3), services.DestinationAllWorkers, 2).Return(page, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleEmployer, "e_pages:workers:2"))

	require.Len(t, replies, 1)
	edit, ok := replies[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 7, edit.MessageID)
	require.NotNil(t, edit.ReplyMarkup)
	assert.NotEmpty(t, edit.ReplyMarkup.InlineKeyboard)
}

func TestListing_RejectsForeignDestination(t *testing.T) {
	f := newTestFixture(t)
	command := NewListingCommand(f.workerService, f.employerService, f.listingService, f.store, f.renderer, f.keyboards, f.logger)

	assert.Empty(t, command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_pages:workers:1")))
}

func TestControl_ProposeTwiceAlerts(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	worker := &models.Worker{ID: 1, Approval: models.ApprovalStatusApproved}
	f.workerService.EXPECT().GetByTelegramID(testChatID).Return(worker, nil)
	f.proposalService.EXPECT().ProposeToJob(worker, int64(12)).Return(&models.Proposal{ID: 5, Status: models.ProposalStatusPending}, false, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_c:propose:open:12"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Вы уже отправляли предложение", textOf(replies[0]))
}

func TestControl_ProposeSent(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	employer := &models.Employer{ID: 3}
	f.employerService.EXPECT().GetByTelegramID(testChatID).Return(employer, nil)
	f.proposalService.EXPECT().ProposeToWorker(employer, int64(10)).Return(&models.Proposal{ID: 5, Status: models.ProposalStatusPending}, true, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleEmployer, "e_c:propose:open:10"))

	require.Len(t, replies, 1)
	assert.Equal(t, "\u202Bההצעה נשלחה", textOf(replies[0]))
}

func TestControl_AnswerNotAllowed(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.workerService.EXPECT().GetByTelegramID(testChatID).Return(&models.Worker{ID: 1, Approval: models.ApprovalStatusApproved}, nil)
	f.proposalService.EXPECT().Respond(int64(5), models.RoleWorker, int64(1), true).Return(nil, services.ErrNotAllowed)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_c:answer:accept:5"))

	require.Len(t, replies, 1)
	answer := replies[0].(tgbotapi.CallbackConfig)
	assert.True(t, answer.ShowAlert)
	assert.Equal(t, "Это действие недоступно", answer.Text)
}

func TestControl_ReviewOpensFlow(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.employerService.EXPECT().GetByTelegramID(testChatID).Return(&models.Employer{ID: 3}, nil)
	f.reviewService.EXPECT().HasReviewed(models.RoleEmployer, int64(3), int64(10)).Return(false, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleEmployer, "e_c:review:open:10"))

	require.Len(t, replies, 1)
	stored := f.storedSession(t)
	require.NotNil(t, stored)
	assert.Equal(t, fsm.FlowReview, stored.Flow)
	assert.Equal(t, int64(10), stored.Draft.TargetID)
}

func TestControl_ToggleJobEditsCard(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.employerService.EXPECT().GetByTelegramID(testChatID).Return(&models.Employer{ID: 3}, nil)
	f.jobService.EXPECT().ToggleActive(int64(12), int64(3)).
		Return(&models.Job{ID: 12, EmployerID: 3, Occupations: []string{"tile"}, Approval: models.ApprovalStatusApproved}, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleEmployer, "e_c:job_active:toggle:12"))

	require.Len(t, replies, 2)
	assert.Equal(t, "\u202Bנשמר", textOf(replies[0]))
	assert.IsType(t, tgbotapi.EditMessageTextConfig{}, replies[1])
}

func TestControl_ChangeCVRestartsFlow(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.workerService.EXPECT().RestartProfile(testChatID).Return(&models.Worker{ID: 1}, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_c:cv:change:0"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Как вас зовут?", textOf(replies[0]))
	assert.Equal(t, fsm.StepName, f.storedSession(t).Step)
}

func TestControl_ChangeCVRefusedWhileUnderModeration(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.workerService.EXPECT().RestartProfile(testChatID).Return(nil, services.ErrProfilePending)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_c:cv:change:0"))

	require.Len(t, replies, 1)
	answer := replies[0].(tgbotapi.CallbackConfig)
	assert.True(t, answer.ShowAlert)
	assert.Equal(t, "Ваша анкета еще на проверке, раздел пока недоступен", answer.Text)
	assert.Nil(t, f.storedSession(t))
}

func TestControl_ToggleRefusedForUnapprovedWorker(t *testing.T) {
	f := newTestFixture(t)
	command := newTestControlCommand(f)

	f.workerService.EXPECT().ToggleSearching(testChatID).Return(nil, services.ErrProfileInactive)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "w_c:search:toggle:0"))

	require.Len(t, replies, 1)
	assert.Equal(t, "Ваше резюме не прошло проверку", textOf(replies[0]))
}

func TestControl_WorkerActionsRequireApprovedProfile(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		approval models.ApprovalStatus
		want     string
	}{
		{"answer while pending", "w_c:answer:accept:5", models.ApprovalStatusPending, "Ваша анкета еще на проверке, раздел пока недоступен"},
		{"resend while declined", "w_c:resend:open:5", models.ApprovalStatusDeclined, "Ваше резюме не прошло проверку"},
		{"review while pending", "w_c:review:open:3", models.ApprovalStatusPending, "Ваша анкета еще на проверке, раздел пока недоступен"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture(t)
			command := newTestControlCommand(f)

			f.workerService.EXPECT().GetByTelegramID(testChatID).Return(&models.Worker{ID: 1, Approval: tt.approval}, nil)

			replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, tt.data))

			require.Len(t, replies, 1)
			answer := replies[0].(tgbotapi.CallbackConfig)
			assert.True(t, answer.ShowAlert)
			assert.Equal(t, tt.want, answer.Text)
			assert.Nil(t, f.storedSession(t))
		})
	}
}

func TestModeration_AlreadyDecided(t *testing.T) {
	f := newTestFixture(t)
	command := NewModerationCommand(f.moderationService, f.store, f.renderer, f.keyboards, f.logger)

	f.moderationService.EXPECT().
		Decide(gomock.Any(), services.ModerationTargetWorker, services.ModerationActionAccept, int64(1)).
		Return(models.ApprovalStatusApproved, services.ErrAlreadyDecided)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "a:worker:accept:1"))

	require.Len(t, replies, 2)
	strip := replies[0].(tgbotapi.EditMessageReplyMarkupConfig)
	assert.Empty(t, strip.ReplyMarkup.InlineKeyboard)

	reply := replies[1].(tgbotapi.MessageConfig)
	assert.Equal(t, "Решение уже принято", reply.Text)
	assert.Equal(t, 7, reply.ReplyToMessageID)
}

func TestModeration_ReportsNewStatus(t *testing.T) {
	f := newTestFixture(t)
	command := NewModerationCommand(f.moderationService, f.store, f.renderer, f.keyboards, f.logger)

	f.moderationService.EXPECT().
		Decide(gomock.Any(), services.ModerationTargetJob, services.ModerationActionAccept, int64(12)).
		Return(models.ApprovalStatusApproved, nil)

	replies := command.Handle(context.Background(), callbackRequest(models.RoleWorker, "a:job:accept:12"))

	require.Len(t, replies, 2)
	assert.Equal(t, "*Статус:* одобрено", textOf(replies[1]))
}
