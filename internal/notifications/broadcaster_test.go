package notifications_test

import (
	"context"
	"errors"
	"testing"

	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/notifications"
	mock_notifications "work_exchange/internal/notifications/mocks"
	mock_services "work_exchange/internal/services/mocks"
	mock_storage "work_exchange/internal/storage/mocks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type broadcasterFixture struct {
	broadcaster         notifications.Broadcaster
	broadcastRepository *mock_repositories.MockBroadcastRepository
	userRepository      *mock_repositories.MockUserRepository
	translateService    *mock_services.MockTranslateService
	photoStorage        *mock_storage.MockPhotoStorage
	sender              *mock_notifications.MockSender
	saved               models.Broadcast
}

func newBroadcasterFixture(t *testing.T) *broadcasterFixture {
	ctrl := gomock.NewController(t)

	f := &broadcasterFixture{
		broadcastRepository: mock_repositories.NewMockBroadcastRepository(ctrl),
		userRepository:      mock_repositories.NewMockUserRepository(ctrl),
		translateService:    mock_services.NewMockTranslateService(ctrl),
		photoStorage:        mock_storage.NewMockPhotoStorage(ctrl),
		sender:              mock_notifications.NewMockSender(ctrl),
	}

	f.broadcaster = notifications.NewBroadcaster(
		f.broadcastRepository,
		f.userRepository,
		f.translateService,
		f.photoStorage,
		f.sender,
		0,
		zap.NewNop().Sugar(),
	)

	return f
}

func (f *broadcasterFixture) recordUpdates() {
	f.broadcastRepository.EXPECT().Update(gomock.Any()).DoAndReturn(func(b *models.Broadcast) (*models.Broadcast, error) {
		f.saved = *b
		return b, nil
	}).AnyTimes()
}

func TestIsDeliverable(t *testing.T) {
	assert.True(t, notifications.IsDeliverable(&models.Broadcast{TextRus: "текст"}))
	assert.False(t, notifications.IsDeliverable(&models.Broadcast{}))
	assert.False(t, notifications.IsDeliverable(&models.Broadcast{
		TextHeb: "טקסט",
		Buttons: []*models.BroadcastButton{{Link: "https://ok.example"}, {Link: "http://plain.example"}},
	}))
}

func TestBroadcaster_InvalidBroadcastIsMarkedAndSkipped(t *testing.T) {
	f := newBroadcasterFixture(t)
	f.recordUpdates()

	f.broadcastRepository.EXPECT().GetManyDue(gomock.Any()).Return([]*models.Broadcast{{
		ID:      1,
		Target:  models.BroadcastTargetAll,
		TextRus: "текст",
		IsValid: true,
		Buttons: []*models.BroadcastButton{{Link: "t.me/channel"}},
	}}, nil)

	started, err := f.broadcaster.SendDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, started)
	assert.False(t, f.saved.IsValid)
	assert.False(t, f.saved.Started)
}

func TestBroadcaster_DeliversInRecipientLanguage(t *testing.T) {
	f := newBroadcasterFixture(t)
	f.recordUpdates()

	f.broadcastRepository.EXPECT().GetManyDue(gomock.Any()).Return([]*models.Broadcast{{
		ID:      2,
		Target:  models.BroadcastTargetAll,
		TextRus: "<p><strong>Привет</strong></p>",
		IsValid: true,
		Buttons: []*models.BroadcastButton{{TextRus: "Сайт", TextHeb: "אתר", Link: "https://example.com"}},
	}}, nil)
	f.translateService.EXPECT().
		Translate(gomock.Any(), "<p><strong>Привет</strong></p>", models.LanguageHebrew).
		Return("<p><strong>שלום</strong></p>", true)
	f.userRepository.EXPECT().GetManyByRole(models.RoleWorker, models.RoleEmployer).Return([]*models.TelegramUser{
		{TelegramID: 10, Role: models.RoleWorker},
		{TelegramID: 20, Role: models.RoleEmployer},
		{TelegramID: 30, Role: models.RoleWorker},
	}, nil)

	texts := map[int64]string{}
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		message := c.(tgbotapi.MessageConfig)
		assert.Equal(t, tgbotapi.ModeHTML, message.ParseMode)
		assert.NotNil(t, message.ReplyMarkup)

		texts[message.ChatID] = message.Text
		if message.ChatID == 30 {
			return tgbotapi.Message{}, &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}
		}
		return tgbotapi.Message{}, nil
	}).Times(3)

	started, err := f.broadcaster.SendDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, started)
	assert.Equal(t, "<b>Привет</b>", texts[10])
	assert.Equal(t, "\u202B<b>שלום</b>", texts[20])

	assert.True(t, f.saved.Started)
	assert.True(t, f.saved.Notified)
	assert.Equal(t, 3, f.saved.TotalUsers)
	assert.Equal(t, 3, f.saved.SentUsers)
	assert.Equal(t, 2, f.saved.SuccessUsers)
}

func TestBroadcaster_IndividualWithImage(t *testing.T) {
	f := newBroadcasterFixture(t)
	f.recordUpdates()

	f.broadcastRepository.EXPECT().GetManyDue(gomock.Any()).Return([]*models.Broadcast{{
		ID:             3,
		Target:         models.BroadcastTargetIndividual,
		TelegramUserID: 20,
		TextRus:        "текст",
		TextHeb:        "טקסט",
		ImageKey:       "banner.png",
		IsValid:        true,
	}}, nil)
	f.userRepository.EXPECT().GetOneByTelegramID(int64(20)).Return(&models.TelegramUser{TelegramID: 20, Role: models.RoleEmployer}, nil)
	f.photoStorage.EXPECT().PresignMedia(gomock.Any(), "banner.png").Return("https://s3.example/media/banner.png?sig=1", nil)
	f.sender.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		photo := c.(tgbotapi.PhotoConfig)
		assert.Equal(t, int64(20), photo.ChatID)
		assert.Equal(t, "\u202Bטקסט", photo.Caption)
		assert.Equal(t, tgbotapi.FileURL("https://s3.example/media/banner.png?sig=1"), photo.File)
		return tgbotapi.Message{}, nil
	})

	_, err := f.broadcaster.SendDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, f.saved.SuccessUsers)
	assert.True(t, f.saved.Notified)
}

func TestBroadcaster_NoSuccessLeavesNotNotified(t *testing.T) {
	f := newBroadcasterFixture(t)
	f.recordUpdates()

	f.broadcastRepository.EXPECT().GetManyDue(gomock.Any()).Return([]*models.Broadcast{{
		ID: 4, Target: models.BroadcastTargetWorkers, TextRus: "текст", TextHeb: "טקסט", IsValid: true,
	}}, nil)
	f.userRepository.EXPECT().GetManyByRole(models.RoleWorker).Return([]*models.TelegramUser{{TelegramID: 10, Role: models.RoleWorker}}, nil)
	f.sender.EXPECT().Send(gomock.Any()).Return(tgbotapi.Message{}, errors.New("timeout"))

	_, err := f.broadcaster.SendDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, f.saved.SentUsers)
	assert.False(t, f.saved.Notified)
}

func TestBroadcaster_RepositoryFailure(t *testing.T) {
	f := newBroadcasterFixture(t)
	f.broadcastRepository.EXPECT().GetManyDue(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := f.broadcaster.SendDue(context.Background())

	assert.Error(t, err)
}
