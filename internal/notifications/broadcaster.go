package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"work_exchange/internal/db/models"
	"work_exchange/internal/db/repositories"
	"work_exchange/internal/services"
	"work_exchange/internal/storage"
	"work_exchange/internal/tg_bot/keyboards"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// maxCaptionLength is the Telegram limit for photo captions.
const maxCaptionLength = 1024

type broadcaster struct {
	broadcastRepository repositories.BroadcastRepository
	userRepository      repositories.UserRepository
	translateService    services.TranslateService
	photoStorage        storage.PhotoStorage
	sender              Sender
	recipientDelay      time.Duration
	logger              *zap.SugaredLogger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type Broadcaster interface {
	// SendDue delivers every broadcast whose time has come and reports how many were started.
	SendDue(ctx context.Context) (int, error)
}

func NewBroadcaster(
	broadcastRepository repositories.BroadcastRepository,
	userRepository repositories.UserRepository,
	translateService services.TranslateService,
	photoStorage storage.PhotoStorage,
	sender Sender,
	recipientDelay time.Duration,
	logger *zap.SugaredLogger,
) Broadcaster {
	return &broadcaster{
		broadcastRepository: broadcastRepository,
		userRepository:      userRepository,
		translateService:    translateService,
		photoStorage:        photoStorage,
		sender:              sender,
		recipientDelay:      recipientDelay,
		logger:              logger,
		now:                 time.Now,
		sleep:               Sleep,
	}
}

// IsDeliverable reports whether a broadcast can be sent: it has some text and
// every button links over https.
func IsDeliverable(broadcast *models.Broadcast) bool {
	if broadcast.TextRus == "" && broadcast.TextHeb == "" {
		return false
	}

	for _, button := range broadcast.Buttons {
		if !button.HasSecureLink() {
			return false
		}
	}

	return true
}

func (b *broadcaster) SendDue(ctx context.Context) (int, error) {
	due, err := b.broadcastRepository.GetManyDue(b.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to get due broadcasts: %w", err)
	}

	started := make([]*models.Broadcast, 0, len(due))
	for _, broadcast := range due {
		if IsDeliverable(broadcast) {
			broadcast.Started = true
		} else {
			broadcast.IsValid = false
			b.logger.Warnw("broadcast is invalid", "broadcast_id", broadcast.ID)
		}

		if _, err := b.broadcastRepository.Update(broadcast); err != nil {
			b.logger.Errorw("failed to update broadcast", "broadcast_id", broadcast.ID, "error", err)
			continue
		}

		if broadcast.Started {
			started = append(started, broadcast)
		}
	}

	for _, broadcast := range started {
		if err := b.deliver(ctx, broadcast); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return len(started), err
			}
			b.logger.Errorw("failed to deliver broadcast", "broadcast_id", broadcast.ID, "error", err)
		}
	}

	return len(started), nil
}

func (b *broadcaster) deliver(ctx context.Context, broadcast *models.Broadcast) error {
	b.fillTranslations(ctx, broadcast)

	recipients, err := b.recipients(broadcast)
	if err != nil {
		return err
	}

	imageURL := ""
	if broadcast.ImageKey != "" {
		if imageURL, err = b.photoStorage.PresignMedia(ctx, broadcast.ImageKey); err != nil {
			b.logger.Warnw("failed to presign broadcast image", "broadcast_id", broadcast.ID, "error", err)
		}
	}

	broadcast.TotalUsers = len(recipients)
	b.save(broadcast)

	texts := map[models.Language]string{
		models.LanguageRussian: ToTelegramHTML(broadcast.TextRus),
		models.LanguageHebrew:  models.LanguageHebrew.Direct(ToTelegramHTML(broadcast.TextHeb)),
	}

	for i, recipient := range recipients {
		if i > 0 {
			if err := b.sleep(ctx, b.recipientDelay); err != nil {
				b.finish(broadcast)
				return err
			}
		}

		lang := recipient.Role.Language()

		broadcast.SentUsers++
		if err := b.send(recipient.TelegramID, texts[lang], imageURL, keyboards.Links(broadcast.Buttons, lang)); err != nil {
			b.logger.Errorw("failed to send message", "broadcast_id", broadcast.ID, "chat_id", recipient.TelegramID, "permanent", IsPermanent(err), "error", err)
		} else {
			broadcast.SuccessUsers++
		}
		b.save(broadcast)
	}

	b.finish(broadcast)
	b.logger.Infow("broadcast delivered", "broadcast_id", broadcast.ID, "success", broadcast.SuccessUsers, "total", broadcast.TotalUsers)

	return nil
}

func (b *broadcaster) finish(broadcast *models.Broadcast) {
	broadcast.Notified = broadcast.SuccessUsers > 0
	b.save(broadcast)
}

func (b *broadcaster) save(broadcast *models.Broadcast) {
	if _, err := b.broadcastRepository.Update(broadcast); err != nil {
		b.logger.Errorw("failed to update broadcast", "broadcast_id", broadcast.ID, "error", err)
	}
}

func (b *broadcaster) fillTranslations(ctx context.Context, broadcast *models.Broadcast) {
	if broadcast.TextRus == "" {
		if translated, ok := b.translateService.Translate(ctx, broadcast.TextHeb, models.LanguageRussian); ok {
			broadcast.TextRus = translated
		}
	}
	if broadcast.TextHeb == "" {
		if translated, ok := b.translateService.Translate(ctx, broadcast.TextRus, models.LanguageHebrew); ok {
			broadcast.TextHeb = translated
		}
	}
}

func (b *broadcaster) recipients(broadcast *models.Broadcast) ([]*models.TelegramUser, error) {
	if broadcast.Target == models.BroadcastTargetIndividual {
		user, err := b.userRepository.GetOneByTelegramID(broadcast.TelegramUserID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get broadcast recipient: %w", err)
		}
		return []*models.TelegramUser{user}, nil
	}

	users, err := b.userRepository.GetManyByRole(broadcast.Target.Roles()...)
	if err != nil {
		return nil, fmt.Errorf("failed to get broadcast recipients: %w", err)
	}

	return users, nil
}

func (b *broadcaster) send(chatID int64, text, imageURL string, markup *tgbotapi.InlineKeyboardMarkup) error {
	if imageURL == "" {
		message := tgbotapi.NewMessage(chatID, text)
		message.ParseMode = tgbotapi.ModeHTML
		message.DisableWebPagePreview = true
		if markup != nil {
			message.ReplyMarkup = markup
		}
		_, err := b.sender.Send(message)
		return err
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(imageURL))
	if utf8.RuneCountInString(text) <= maxCaptionLength {
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		if markup != nil {
			photo.ReplyMarkup = markup
		}
		_, err := b.sender.Send(photo)
		return err
	}

	if _, err := b.sender.Send(photo); err != nil {
		return err
	}
	return b.send(chatID, text, "", markup)
}
