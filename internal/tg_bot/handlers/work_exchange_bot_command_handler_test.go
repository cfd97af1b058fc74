package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"work_exchange/configs"
	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	mock_services "work_exchange/internal/services/mocks"
	"work_exchange/internal/tg_bot/commands"
	"work_exchange/internal/tg_bot/views"

	"github.com/alicebob/miniredis/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	userID      int64 = 501
	adminChatID int64 = -100200
)

// recordingCommand remembers the requests routed to it.
type recordingCommand struct {
	route    string
	requests []*commands.Request
}

func (c *recordingCommand) CanHandle(route string) bool {
	return route == c.route
}

func (c *recordingCommand) Handle(_ context.Context, request *commands.Request) []tgbotapi.Chattable {
	c.requests = append(c.requests, request)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(request.ChatID, c.route)}
}

type handlerFixture struct {
	handler     CommandHandler
	userService *mock_services.MockUserService
	store       fsm.Store
	routes      map[string]*recordingCommand
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalogRepository := mock_repositories.NewMockCatalogRepository(ctrl)
	catalogRepository.EXPECT().GetTexts().Return(nil, errors.New("offline")).AnyTimes()
	renderer := views.NewRenderer(catalog.NewCatalog(catalogRepository, time.Hour, zap.NewNop().Sugar()))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &handlerFixture{
		userService: mock_services.NewMockUserService(ctrl),
		store:       fsm.NewRedisStore(client, time.Hour),
		routes:      map[string]*recordingCommand{},
	}

	var all []commands.Command
	for _, route := range []string{commands.RouteStart, commands.RouteCancel, "target", "worker_profile", "job", "w_menu", "e_menu", "a"} {
		command := &recordingCommand{route: route}
		f.routes[route] = command
		all = append(all, command)
	}

	f.handler = NewWorkExchangeBotCommandHandler(
		configs.Admin{ChatID: adminChatID},
		f.userService,
		f.store,
		renderer,
		zap.NewNop().Sugar(),
		all,
	)
	return f
}

func (f *handlerFixture) knownUser(role models.Role) {
	f.userService.EXPECT().RefreshUsername(gomock.Any()).Return(nil)
	f.userService.EXPECT().Get(userID).Return(&models.TelegramUser{TelegramID: userID, Role: role}, nil)
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, UserName: "ivan"},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}}
}

func commandUpdate(name string) tgbotapi.Update {
	update := textUpdate(userID, "/"+name)
	update.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name) + 1}}
	return update
}

func callbackUpdate(chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "query-1",
		From:    &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: chatID}},
		Data:    data,
	}}
}

func isEmptyAnswer(t *testing.T, c tgbotapi.Chattable) {
	t.Helper()
	answer, ok := c.(tgbotapi.CallbackConfig)
	require.True(t, ok)
	assert.Equal(t, "query-1", answer.CallbackQueryID)
	assert.Empty(t, answer.Text)
}

func TestHandler_CommandIsRoutedByName(t *testing.T) {
	f := newHandlerFixture(t)
	f.userService.EXPECT().RefreshUsername(gomock.Any()).Return(nil)
	f.userService.EXPECT().Get(userID).Return(nil, services.ErrNotFound)

	replies := f.handler.Handle(context.Background(), commandUpdate("start"))

	require.Len(t, replies, 1)
	require.Len(t, f.routes[commands.RouteStart].requests, 1)
	assert.Nil(t, f.routes[commands.RouteStart].requests[0].User)
}

func TestHandler_TextOfUnknownUserStartsOver(t *testing.T) {
	f := newHandlerFixture(t)
	f.userService.EXPECT().RefreshUsername(gomock.Any()).Return(nil)
	f.userService.EXPECT().Get(userID).Return(nil, services.ErrNotFound)

	f.handler.Handle(context.Background(), textUpdate(userID, "hello"))

	assert.Len(t, f.routes[commands.RouteStart].requests, 1)
}

func TestHandler_TextWithoutSessionIsWrongInput(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleEmployer)

	replies := f.handler.Handle(context.Background(), textUpdate(userID, "hello"))

	require.Len(t, replies, 1)
	assert.Equal(t, "\u202Bאנא השתמש בכפתורים או שלח את המבוקש", replies[0].(tgbotapi.MessageConfig).Text)
}

func TestHandler_TextIsRoutedToRunningFlow(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleWorker)
	require.NoError(t, f.store.Save(context.Background(), userID, fsm.Start(fsm.FlowWorkerProfile)))

	f.handler.Handle(context.Background(), textUpdate(userID, "Иван"))

	requests := f.routes["worker_profile"].requests
	require.Len(t, requests, 1)
	assert.Equal(t, fsm.InputText, requests[0].Input)
	assert.Equal(t, "Иван", requests[0].Text)
	assert.Equal(t, fsm.StepName, requests[0].Session.Step)
}

func TestHandler_InputOfWrongShapeIsIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleWorker)
	session := fsm.Start(fsm.FlowWorkerProfile)
	session.GoTo(fsm.StepPassportPhoto)
	require.NoError(t, f.store.Save(context.Background(), userID, session))

	replies := f.handler.Handle(context.Background(), textUpdate(userID, "not a photo"))

	assert.Empty(t, replies)
	assert.Empty(t, f.routes["worker_profile"].requests)
}

func TestHandler_GroupChatIsIgnored(t *testing.T) {
	f := newHandlerFixture(t)

	replies := f.handler.Handle(context.Background(), textUpdate(-300, "hello"))

	assert.Empty(t, replies)
}

func TestHandler_NoopIsAnswered(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleWorker)

	replies := f.handler.Handle(context.Background(), callbackUpdate(userID, "noop"))

	require.Len(t, replies, 1)
	isEmptyAnswer(t, replies[0])
}

func TestHandler_InvalidCallbackDataIsAnswered(t *testing.T) {
	f := newHandlerFixture(t)

	replies := f.handler.Handle(context.Background(), callbackUpdate(userID, ""))

	require.Len(t, replies, 1)
	isEmptyAnswer(t, replies[0])
}

func TestHandler_StaleFlowCallbackIsIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleEmployer)

	replies := f.handler.Handle(context.Background(), callbackUpdate(userID, "confirm:yes"))

	require.Len(t, replies, 1)
	isEmptyAnswer(t, replies[0])
	assert.Empty(t, f.routes["job"].requests)
}

func TestHandler_FlowCallbackIsRoutedToSession(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleEmployer)
	require.NoError(t, f.store.Save(context.Background(), userID, fsm.Start(fsm.FlowJob)))

	replies := f.handler.Handle(context.Background(), callbackUpdate(userID, "occ:painter"))

	require.Len(t, replies, 2)
	isEmptyAnswer(t, replies[0])
	require.Len(t, f.routes["job"].requests, 1)
	assert.Equal(t, "painter", f.routes["job"].requests[0].Data.Field(0))
}

func TestHandler_CallbackOfAnotherRoleIsIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleWorker)

	f.handler.Handle(context.Background(), callbackUpdate(userID, "e_menu:main"))

	assert.Empty(t, f.routes["e_menu"].requests)
}

func TestHandler_RoleCallbackIsRouted(t *testing.T) {
	f := newHandlerFixture(t)
	f.knownUser(models.RoleWorker)

	f.handler.Handle(context.Background(), callbackUpdate(userID, "w_menu:main"))

	assert.Len(t, f.routes["w_menu"].requests, 1)
}

func TestHandler_ModerationOnlyInAdminChat(t *testing.T) {
	f := newHandlerFixture(t)

	replies := f.handler.Handle(context.Background(), callbackUpdate(userID, "a:worker:accept:1"))
	require.Len(t, replies, 1)
	isEmptyAnswer(t, replies[0])
	assert.Empty(t, f.routes["a"].requests)

	f.handler.Handle(context.Background(), callbackUpdate(adminChatID, "a:worker:accept:1"))
	assert.Len(t, f.routes["a"].requests, 1)
}

func TestHandler_UserLookupFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.userService.EXPECT().RefreshUsername(gomock.Any()).Return(nil)
	f.userService.EXPECT().Get(userID).Return(nil, errors.New("connection refused"))

	replies := f.handler.Handle(context.Background(), textUpdate(userID, "hello"))

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].(tgbotapi.MessageConfig).Text, "Произошла ошибка")
}
