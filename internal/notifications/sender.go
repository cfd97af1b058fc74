package notifications

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the Telegram client used for outbound delivery.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

// maxMediaGroup is the Telegram limit of items in one album.
const maxMediaGroup = 10

// IsPermanent reports whether retrying a delivery to the same chat is pointless:
// the bot was blocked or the chat no longer exists.
func IsPermanent(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(apiErr.Message), "chat not found")
	}

	return false
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func markdownMessage(chatID int64, text string, markup interface{}) tgbotapi.MessageConfig {
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		message.ReplyMarkup = markup
	}
	return message
}

func photoGroup(chatID int64, fileIDs ...string) (tgbotapi.MediaGroupConfig, bool) {
	if len(fileIDs) == 0 {
		return tgbotapi.MediaGroupConfig{}, false
	}
	if len(fileIDs) > maxMediaGroup {
		fileIDs = fileIDs[:maxMediaGroup]
	}

	media := make([]interface{}, 0, len(fileIDs))
	for _, id := range fileIDs {
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(id)))
	}

	return tgbotapi.NewMediaGroup(chatID, media), true
}
