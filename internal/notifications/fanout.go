package notifications

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Delivery is what a single recipient gets: optional photos followed by one message.
type Delivery struct {
	Photos  []string
	Message func(chatID int64) tgbotapi.Chattable
}

type fanout struct {
	sender Sender
	sleep  func(ctx context.Context, d time.Duration) error
	logger *zap.SugaredLogger
}

func newFanout(sender Sender, logger *zap.SugaredLogger) *fanout {
	return &fanout{
		sender: sender,
		sleep:  Sleep,
		logger: logger,
	}
}

// deliver sends to one chat. Photo failures are logged and do not prevent the message.
func (f *fanout) deliver(chatID int64, delivery Delivery) error {
	if err := f.sendPhotos(chatID, delivery.Photos); err != nil {
		f.logFailure(chatID, err)
	}

	if _, err := f.sender.Send(delivery.Message(chatID)); err != nil {
		f.logFailure(chatID, err)
		return fmt.Errorf("chat %d: %w", chatID, err)
	}

	return nil
}

func (f *fanout) sendPhotos(chatID int64, photos []string) error {
	switch len(photos) {
	case 0:
		return nil
	case 1:
		_, err := f.sender.Send(tgbotapi.NewPhoto(chatID, tgbotapi.FileID(photos[0])))
		return err
	}

	group, _ := photoGroup(chatID, photos...)
	_, err := f.sender.SendMediaGroup(group)
	return err
}

// each delivers to every chat with delay between sends. Failures are
// collected and never stop the loop; only ctx cancellation does.
func (f *fanout) each(ctx context.Context, chatIDs []int64, delay time.Duration, delivery Delivery) error {
	var errs error

	for i, chatID := range chatIDs {
		if i > 0 {
			if err := f.sleep(ctx, delay); err != nil {
				return multierr.Append(errs, err)
			}
		}

		errs = multierr.Append(errs, f.deliver(chatID, delivery))
	}

	return errs
}

func (f *fanout) logFailure(chatID int64, err error) {
	f.logger.Errorw("failed to send message", "chat_id", chatID, "permanent", IsPermanent(err), "error", err)
}
