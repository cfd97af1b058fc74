package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	mock_services "work_exchange/internal/services/mocks"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	"github.com/alicebob/miniredis/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testChatID int64 = 4242

var testProfile = services.Profile{TelegramID: testChatID, Username: "ivan", FirstName: "Ivan"}

type testFixture struct {
	store     fsm.Store
	renderer  views.Renderer
	keyboards keyboards.Keyboards
	logger    *zap.SugaredLogger

	userService       *mock_services.MockUserService
	workerService     *mock_services.MockWorkerService
	employerService   *mock_services.MockEmployerService
	jobService        *mock_services.MockJobService
	proposalService   *mock_services.MockProposalService
	reviewService     *mock_services.MockReviewService
	listingService    *mock_services.MockListingService
	moderationService *mock_services.MockModerationService
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalogRepository := mock_repositories.NewMockCatalogRepository(ctrl)
	catalogRepository.EXPECT().GetTexts().Return(nil, errors.New("offline")).AnyTimes()
	c := catalog.NewCatalog(catalogRepository, time.Hour, zap.NewNop().Sugar())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &testFixture{
		store:             fsm.NewRedisStore(client, time.Hour),
		renderer:          views.NewRenderer(c),
		keyboards:         keyboards.New(c, "@work_exchange_bot"),
		logger:            zap.NewNop().Sugar(),
		userService:       mock_services.NewMockUserService(ctrl),
		workerService:     mock_services.NewMockWorkerService(ctrl),
		employerService:   mock_services.NewMockEmployerService(ctrl),
		jobService:        mock_services.NewMockJobService(ctrl),
		proposalService:   mock_services.NewMockProposalService(ctrl),
		reviewService:     mock_services.NewMockReviewService(ctrl),
		listingService:    mock_services.NewMockListingService(ctrl),
		moderationService: mock_services.NewMockModerationService(ctrl),
	}
}

// withSession stores the session and attaches it to the request the way the handler does.
func (f *testFixture) withSession(t *testing.T, request *Request, session *fsm.Session) *Request {
	t.Helper()
	require.NoError(t, f.store.Save(context.Background(), request.ChatID, session))
	request.Session = session
	return request
}

func (f *testFixture) storedSession(t *testing.T) *fsm.Session {
	t.Helper()
	session, err := f.store.Get(context.Background(), testChatID)
	require.NoError(t, err)
	return session
}

func messageRequest(role models.Role, input fsm.Input, text string) *Request {
	return &Request{
		ChatID:    testChatID,
		MessageID: 7,
		Profile:   testProfile,
		User:      &models.TelegramUser{TelegramID: testChatID, Role: role},
		Input:     input,
		Text:      text,
	}
}

func callbackRequest(role models.Role, data string) *Request {
	parsed, _ := callbacks.Parse(data)

	return &Request{
		ChatID:     testChatID,
		MessageID:  7,
		Profile:    testProfile,
		User:       &models.TelegramUser{TelegramID: testChatID, Role: role},
		Input:      fsm.InputCallback,
		CallbackID: "callback-1",
		Data:       parsed,
	}
}

func textOf(c tgbotapi.Chattable) string {
	switch message := c.(type) {
	case tgbotapi.MessageConfig:
		return message.Text
	case tgbotapi.EditMessageTextConfig:
		return message.Text
	case tgbotapi.CallbackConfig:
		return message.Text
	}
	return ""
}

type fakeFileLinker struct {
	url string
	err error
}

func (f fakeFileLinker) GetFileDirectURL(string) (string, error) {
	return f.url, f.err
}
