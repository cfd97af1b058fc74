package commands

import (
	"context"

	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"
	"work_exchange/internal/tg_bot/keyboards"
	"work_exchange/internal/tg_bot/views"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type listingCommand struct {
	base
	parties
	listingService services.ListingService
}

func NewListingCommand(
	workerService services.WorkerService,
	employerService services.EmployerService,
	listingService services.ListingService,
	sessionStore fsm.Store,
	renderer views.Renderer,
	keyboards keyboards.Keyboards,
	logger *zap.SugaredLogger,
) Command {
	return &listingCommand{
		base:           base{sessionStore: sessionStore, renderer: renderer, keyboards: keyboards, logger: logger},
		parties:        parties{workerService: workerService, employerService: employerService},
		listingService: listingService,
	}
}

func (c *listingCommand) CanHandle(route string) bool {
	return route == string(callbacks.PrefixWorkerPages) || route == string(callbacks.PrefixEmployerPages)
}

func (c *listingCommand) Handle(_ context.Context, request *Request) []tgbotapi.Chattable {
	role := request.Role()
	destination := services.Destination(request.Data.Field(0))

	if !destination.Available(role) {
		c.logger.Warnw("received unavailable destination", "role", role, "destination", destination)
		return nil
	}

	number, err := request.Data.Int(1)
	if err != nil {
		number = 1
	}

	var partyID int64
	if role == models.RoleWorker {
		worker, denied := c.activeWorker(request, c.workerService)
		if denied != nil {
			return denied
		}
		partyID = worker.ID
	} else if partyID, err = c.partyID(role, request.Profile.TelegramID); err != nil {
		return c.notFound(request, err)
	}

	page, err := c.listingService.Page(role, partyID, destination, number)
	if err != nil {
		c.logger.Errorw("failed to get page", "role", role, "destination", destination, "page", number, "error", err)
		return c.failure(request)
	}

	text := c.renderer.ListTitle(destination, role.Language(), page.IsEmpty())
	markup := c.keyboards.Page(role, destination, page, func(entry services.Entry) string {
		return c.renderer.EntryLabel(entry, role)
	})

	return []tgbotapi.Chattable{c.edit(request, text, markup)}
}
