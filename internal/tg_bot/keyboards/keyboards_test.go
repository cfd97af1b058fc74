package keyboards

import (
	"errors"
	"testing"
	"time"

	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	mock_repositories "work_exchange/internal/db/repositories/mocks"
	"work_exchange/internal/pagination"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestKeyboards(t *testing.T) Keyboards {
	ctrl := gomock.NewController(t)
	repository := mock_repositories.NewMockCatalogRepository(ctrl)
	repository.EXPECT().GetTexts().Return(nil, errors.New("offline")).AnyTimes()

	return New(catalog.NewCatalog(repository, time.Hour, zap.NewNop().Sugar()), "@work_exchange_bot")
}

func callbackData(t *testing.T, button tgbotapi.InlineKeyboardButton) string {
	require.NotNil(t, button.CallbackData)
	return *button.CallbackData
}

func TestKeyboards_OccupationsMarksSelected(t *testing.T) {
	k := newTestKeyboards(t)

	markup := k.Occupations(models.LanguageRussian, []string{"armature"})

	// eight default occupations in rows of two plus the confirm row
	require.Len(t, markup.InlineKeyboard, 5)
	assert.Equal(t, "Бетонщик", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "✅ Арматурщик", markup.InlineKeyboard[0][1].Text)
	assert.Equal(t, "occ:armature", callbackData(t, markup.InlineKeyboard[0][1]))
	assert.Equal(t, "occ:!", callbackData(t, markup.InlineKeyboard[4][0]))
}

func TestKeyboards_PageNavigation(t *testing.T) {
	k := newTestKeyboards(t)

	items := []services.Entry{
		{Job: &models.Job{ID: 1}},
		{Job: &models.Job{ID: 2}},
		{Job: &models.Job{ID: 3}},
	}
	page := pagination.Paginate(items, 1, 2)

	markup := k.Page(models.RoleWorker, services.DestinationSuitableJobs, page, func(e services.Entry) string {
		return "job"
	})

	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "w_details:job:1", callbackData(t, markup.InlineKeyboard[0][0]))

	nav := markup.InlineKeyboard[2]
	assert.Equal(t, "noop", callbackData(t, nav[0]))
	assert.Equal(t, "1/2", nav[1].Text)
	assert.Equal(t, "w_pages:s_jobs:2", callbackData(t, nav[2]))

	assert.Equal(t, "w_menu:jobs", callbackData(t, markup.InlineKeyboard[3][0]))
}

func TestKeyboards_EmptyPageHasNoNavigation(t *testing.T) {
	k := newTestKeyboards(t)

	page := pagination.Paginate([]services.Entry{}, 3, 5)
	markup := k.Page(models.RoleEmployer, services.DestinationInboxReviews, page, nil)

	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "e_menu:reviews", callbackData(t, markup.InlineKeyboard[0][0]))
}

func TestKeyboards_ProposalActions(t *testing.T) {
	k := newTestKeyboards(t)

	proposal := &models.Proposal{ID: 7, Kind: models.ProposalKindWorker, WorkerID: 3, EmployerID: 9, Status: models.ProposalStatusPending}

	recipient := k.Proposal(proposal, models.RoleEmployer, false)
	assert.Equal(t, "e_c:answer:accept:7", callbackData(t, recipient.InlineKeyboard[0][0]))
	assert.Equal(t, "e_c:answer:decline:7", callbackData(t, recipient.InlineKeyboard[0][1]))

	proposal.Status = models.ProposalStatusDeclined
	initiator := k.Proposal(proposal, models.RoleWorker, false)
	assert.Equal(t, "w_c:resend:open:7", callbackData(t, initiator.InlineKeyboard[0][0]))

	proposal.Status = models.ProposalStatusAccepted
	accepted := k.Proposal(proposal, models.RoleWorker, true)
	assert.Equal(t, "w_c:review:open:9", callbackData(t, accepted.InlineKeyboard[0][0]))

	reviewed := k.Proposal(proposal, models.RoleWorker, false)
	assert.Len(t, reviewed.InlineKeyboard, 1)
}

func TestKeyboards_Admin(t *testing.T) {
	k := newTestKeyboards(t)

	markup := k.Admin(services.ModerationTargetEmployerReview, 42)

	accept, err := callbacks.Parse(callbackData(t, markup.InlineKeyboard[0][0]))
	require.NoError(t, err)
	assert.Equal(t, callbacks.PrefixAdmin, accept.Prefix)
	assert.Equal(t, []string{"e_review", "accept", "42"}, accept.Fields)
}

func TestKeyboards_ChannelMore(t *testing.T) {
	k := newTestKeyboards(t)

	markup := k.ChannelMore(models.AudienceEmployers)

	button := markup.InlineKeyboard[0][0]
	require.NotNil(t, button.URL)
	assert.Equal(t, "https://t.me/work_exchange_bot", *button.URL)
	assert.Equal(t, "עובדים נוספים", button.Text)
}

func TestLinks(t *testing.T) {
	assert.Nil(t, Links(nil, models.LanguageRussian))

	markup := Links([]*models.BroadcastButton{{TextRus: "Сайт", TextHeb: "אתר", Link: "https://example.com"}}, models.LanguageHebrew)
	require.NotNil(t, markup)
	assert.Equal(t, "אתר", markup.InlineKeyboard[0][0].Text)
}
