package commands

import (
	"context"
	"errors"
	"strings"

	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type reviewCommand struct {
	base
	parties
	reviewService services.ReviewService
}

func NewReviewCommand(
	workerService services.WorkerService,
	employerService services.EmployerService,
	reviewService services.ReviewService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &reviewCommand{
		base:          base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		parties:       parties{workerService: workerService, employerService: employerService},
		reviewService: reviewService,
	}
}

func (c *reviewCommand) CanHandle(route string) bool {
	return route == string(fsm.FlowReview)
}

func (c *reviewCommand) Handle(ctx context.Context, request *Request) []tgbotapi.Chattable {
	session := request.Session

	switch session.Step {
	case fsm.StepRate:
		if request.Data.Prefix != callbacks.PrefixRate {
			return nil
		}
		rate, err := fsm.ValidateRate(request.Data.Field(0))
		if err != nil {
			return c.alert(request, "wrong_rate", request.Lang())
		}
		session.Draft.Rate = rate
		session.Next()

	case fsm.StepComment:
		if request.IsCallback() {
			if request.Data.Prefix != callbacks.PrefixSkip {
				return nil
			}
			session.Draft.Comment = ""
		} else {
			session.Draft.Comment = strings.TrimSpace(request.Text)
		}
		session.Next()

	case fsm.StepConfirmation:
		if request.Data.Prefix != callbacks.PrefixConfirm {
			return nil
		}
		if request.Data.Field(0) == callbacks.ConfirmRetype {
			session.Retype()
			break
		}
		return c.submit(ctx, request, session)
	}

	return c.open(ctx, request, session)
}

func (c *reviewCommand) submit(ctx context.Context, request *Request, session *fsm.Session) []tgbotapi.Chattable {
	role := request.Role()

	authorID, err := c.partyID(role, request.Profile.TelegramID)
	if err != nil {
		c.logger.Errorw("failed to get review author", "telegram_id", request.Profile.TelegramID, "error", err)
		return c.failure(request)
	}

	_, err = c.reviewService.Submit(role, authorID, session.Draft.TargetID, session.Draft.Rate, session.Draft.Comment)
	c.close(ctx, request)

	switch {
	case errors.Is(err, services.ErrDuplicate):
		return []tgbotapi.Chattable{c.reply(request, c.renderer.Text("review_exists", role.Language()), c.keyboards.ToMainMenu(role))}
	case err != nil:
		c.logger.Errorw("failed to submit review", "author", role, "author_id", authorID, "error", err)
		return c.failure(request)
	}

	return []tgbotapi.Chattable{c.reply(request, c.renderer.Text("review_sent", role.Language()), c.keyboards.ToMainMenu(role))}
}
