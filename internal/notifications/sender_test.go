package notifications

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestIsPermanent(t *testing.T) {
	assert.True(t, IsPermanent(&tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}))
	assert.True(t, IsPermanent(fmt.Errorf("chat 1: %w", &tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"})))
	assert.False(t, IsPermanent(&tgbotapi.Error{Code: 400, Message: "Bad Request: message is too long"}))
	assert.False(t, IsPermanent(&tgbotapi.Error{Code: 429, Message: "Too Many Requests: retry after 5"}))
	assert.False(t, IsPermanent(errors.New("connection reset")))
}

func TestSleep_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	started := time.Now()
	assert.ErrorIs(t, Sleep(ctx, time.Minute), context.Canceled)
	assert.Less(t, time.Since(started), time.Second)
	assert.NoError(t, Sleep(context.Background(), 0))
}

func TestPhotoGroup(t *testing.T) {
	_, ok := photoGroup(1)
	assert.False(t, ok)

	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("photo-%d", i)
	}

	group, ok := photoGroup(1, ids...)
	assert.True(t, ok)
	assert.Len(t, group.Media, maxMediaGroup)
	assert.Equal(t, int64(1), group.ChatID)
}
