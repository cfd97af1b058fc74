package keyboards

import (
	"fmt"
	"strconv"
	"strings"

	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	"work_exchange/internal/pagination"
	"work_exchange/internal/services"
	"work_exchange/internal/tg_bot/callbacks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	checkMark  = "✅ "
	occPerRow  = 2
	pagePrev   = "◀️"
	pageNext   = "▶️"
	rateSymbol = "⭐️"
)

type Keyboards struct {
	catalog catalog.Catalog
	botName string
}

func New(catalog catalog.Catalog, botName string) Keyboards {
	return Keyboards{catalog: catalog, botName: botName}
}

func (k Keyboards) button(slug string, lang models.Language, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(k.catalog.Button(slug, lang), data)
}

func row(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

func menuPrefix(role models.Role) callbacks.Prefix {
	if role == models.RoleEmployer {
		return callbacks.PrefixEmployerMenu
	}
	return callbacks.PrefixWorkerMenu
}

func pagesPrefix(role models.Role) callbacks.Prefix {
	if role == models.RoleEmployer {
		return callbacks.PrefixEmployerPages
	}
	return callbacks.PrefixWorkerPages
}

func detailsPrefix(role models.Role) callbacks.Prefix {
	if role == models.RoleEmployer {
		return callbacks.PrefixEmployerDetails
	}
	return callbacks.PrefixWorkerDetails
}

func controlPrefix(role models.Role) callbacks.Prefix {
	if role == models.RoleEmployer {
		return callbacks.PrefixEmployerControl
	}
	return callbacks.PrefixWorkerControl
}

// RoleChoice is shown in both languages since the role is not known yet.
func (k Keyboards) RoleChoice() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.button("search_job", models.LanguageRussian, callbacks.MustEncode(callbacks.PrefixTarget, models.RoleWorker.String()))),
		row(k.button("search_workers", models.LanguageHebrew, callbacks.MustEncode(callbacks.PrefixTarget, models.RoleEmployer.String()))),
	)
}

func (k Keyboards) Occupations(lang models.Language, selected []string) tgbotapi.InlineKeyboardMarkup {
	chosen := make(map[string]bool, len(selected))
	for _, slug := range selected {
		chosen[slug] = true
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var current []tgbotapi.InlineKeyboardButton

	for _, occupation := range k.catalog.Occupations() {
		data, err := callbacks.Encode(callbacks.PrefixOccupation, occupation.Slug)
		if err != nil {
			continue
		}

		text := occupation.In(lang)
		if chosen[occupation.Slug] {
			text = checkMark + text
		}

		current = append(current, tgbotapi.NewInlineKeyboardButtonData(text, data))
		if len(current) == occPerRow {
			rows = append(rows, current)
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}

	rows = append(rows, row(k.button("confirm", lang, callbacks.MustEncode(callbacks.PrefixOccupation, callbacks.OccupationConfirm))))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) PhoneRequest(lang models.Language) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact(k.catalog.Button("request_phone", lang))),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func RemoveReply() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(true)
}

func (k Keyboards) ObjectPhotos(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.button("add_photo", lang, callbacks.MustEncode(callbacks.PrefixPhoto, callbacks.PhotoAdd))),
		row(k.button("next_step", lang, callbacks.MustEncode(callbacks.PrefixPhoto, callbacks.PhotoNext))),
	)
}

func (k Keyboards) Notifications(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(
		k.button("yes", lang, callbacks.MustEncode(callbacks.PrefixNotifications, callbacks.Yes)),
		k.button("no", lang, callbacks.MustEncode(callbacks.PrefixNotifications, callbacks.No)),
	))
}

func (k Keyboards) Confirm(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.button("confirm", lang, callbacks.MustEncode(callbacks.PrefixConfirm, callbacks.Yes))),
		row(k.button("retype", lang, callbacks.MustEncode(callbacks.PrefixConfirm, callbacks.ConfirmRetype))),
	)
}

func (k Keyboards) Rates() tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, models.MaxRate-models.MinRate+1)
	for rate := models.MinRate; rate <= models.MaxRate; rate++ {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d %s", rate, rateSymbol),
			callbacks.MustEncode(callbacks.PrefixRate, strconv.Itoa(rate)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons)
}

func (k Keyboards) Skip(lang models.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(k.button("skip", lang, callbacks.MustEncode(callbacks.PrefixSkip))))
}

func (k Keyboards) menuButton(role models.Role, slug, section string) tgbotapi.InlineKeyboardButton {
	return k.button(slug, role.Language(), callbacks.MustEncode(menuPrefix(role), section))
}

func (k Keyboards) MainMenu(role models.Role) tgbotapi.InlineKeyboardMarkup {
	if role == models.RoleEmployer {
		return tgbotapi.NewInlineKeyboardMarkup(
			row(k.menuButton(role, "my_jobs", callbacks.SectionJobs)),
			row(k.menuButton(role, "workers", callbacks.SectionWorkers)),
			row(k.menuButton(role, "cooperation_proposals", callbacks.SectionProposals)),
			row(
				k.menuButton(role, "reviews", callbacks.SectionReviews),
				k.menuButton(role, "profile", callbacks.SectionProfile),
			),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.menuButton(role, "jobs", callbacks.SectionJobs)),
		row(k.menuButton(role, "cooperation_proposals", callbacks.SectionProposals)),
		row(
			k.menuButton(role, "reviews", callbacks.SectionReviews),
			k.menuButton(role, "profile", callbacks.SectionProfile),
		),
	)
}

// ToMainMenu is a single button leading back to the role menu.
func (k Keyboards) ToMainMenu(role models.Role) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(k.menuButton(role, "main_menu", callbacks.SectionMain)))
}

func (k Keyboards) pageButton(role models.Role, slug string, destination services.Destination) tgbotapi.InlineKeyboardButton {
	return k.button(slug, role.Language(), callbacks.MustEncode(pagesPrefix(role), string(destination), "1"))
}

// Section lists the destinations of a menu section.
func (k Keyboards) Section(role models.Role, section string) tgbotapi.InlineKeyboardMarkup {
	lang := role.Language()
	var rows [][]tgbotapi.InlineKeyboardButton

	switch section {
	case callbacks.SectionJobs:
		if role == models.RoleEmployer {
			rows = append(rows,
				row(k.button("job_create", lang, callbacks.MustEncode(controlPrefix(role), callbacks.ControlJobCreate, callbacks.ActionOpen, "0"))),
				row(k.pageButton(role, "jobs_active", services.DestinationActiveJobs)),
				row(
					k.pageButton(role, "jobs_archive", services.DestinationArchiveJobs),
					k.pageButton(role, "jobs_declined", services.DestinationDeclinedJobs),
				),
			)
		} else {
			rows = append(rows,
				row(k.pageButton(role, "all_jobs", services.DestinationAllJobs)),
				row(k.pageButton(role, "jobs_suitable", services.DestinationSuitableJobs)),
			)
		}
	case callbacks.SectionWorkers:
		rows = append(rows,
			row(k.pageButton(role, "workers_all", services.DestinationAllWorkers)),
			row(k.pageButton(role, "workers_suitable", services.DestinationSuitableWorkers)),
		)
	case callbacks.SectionProposals:
		rows = append(rows, row(
			k.pageButton(role, "inbox", services.DestinationInboxProposals),
			k.pageButton(role, "outbox", services.DestinationOutboxProposals),
		))
	case callbacks.SectionReviews:
		rows = append(rows, row(
			k.pageButton(role, "inbox", services.DestinationInboxReviews),
			k.pageButton(role, "outbox", services.DestinationOutboxReviews),
		))
	}

	rows = append(rows, row(k.menuButton(role, "main_menu", callbacks.SectionMain)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) control(role models.Role, slug, control, action string, id int64) tgbotapi.InlineKeyboardButton {
	return k.button(slug, role.Language(), callbacks.MustEncode(controlPrefix(role), control, action, callbacks.ID(id)))
}

func (k Keyboards) WorkerProfile(worker *models.Worker) tgbotapi.InlineKeyboardMarkup {
	role := models.RoleWorker

	notifSlug := "enable_notifications"
	if worker.Notifications {
		notifSlug = "disable_notifications"
	}
	searchSlug := "searching_yes"
	if worker.IsSearching {
		searchSlug = "searching_no"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.control(role, notifSlug, callbacks.ControlNotifications, callbacks.ActionToggle, worker.ID)),
		row(k.control(role, searchSlug, callbacks.ControlSearching, callbacks.ActionToggle, worker.ID)),
		row(k.control(role, "change_cv", callbacks.ControlCV, callbacks.ActionChange, worker.ID)),
		row(k.menuButton(role, "main_menu", callbacks.SectionMain)),
	)
}

func (k Keyboards) EmployerProfile(employer *models.Employer) tgbotapi.InlineKeyboardMarkup {
	role := models.RoleEmployer

	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.control(role, "change_phone", callbacks.ControlPhone, callbacks.ActionChange, employer.ID)),
		row(k.menuButton(role, "main_menu", callbacks.SectionMain)),
	)
}

// Page renders listing rows as detail buttons followed by navigation.
func (k Keyboards) Page(role models.Role, destination services.Destination, page pagination.Page[services.Entry], label func(services.Entry) string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, entry := range page.Items {
		rows = append(rows, row(tgbotapi.NewInlineKeyboardButtonData(
			label(entry),
			callbacks.MustEncode(detailsPrefix(role), callbacks.EntryObject(entry), callbacks.ID(entry.ID())),
		)))
	}

	if !page.IsEmpty() {
		rows = append(rows, row(
			k.navButton(role, destination, pagePrev, page.Number-1, page.HasPrev()),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", page.Number, page.Total), callbacks.MustEncode(callbacks.PrefixNoop)),
			k.navButton(role, destination, pageNext, page.Number+1, page.HasNext()),
		))
	}

	rows = append(rows, row(
		k.button("back", role.Language(), callbacks.MustEncode(menuPrefix(role), callbacks.Section(destination))),
		k.menuButton(role, "main_menu", callbacks.SectionMain),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// navButton points past the first or last page at a no-op.
func (k Keyboards) navButton(role models.Role, destination services.Destination, text string, number int, enabled bool) tgbotapi.InlineKeyboardButton {
	if !enabled {
		return tgbotapi.NewInlineKeyboardButtonData(text, callbacks.MustEncode(callbacks.PrefixNoop))
	}
	return tgbotapi.NewInlineKeyboardButtonData(text, callbacks.MustEncode(pagesPrefix(role), string(destination), strconv.Itoa(number)))
}

// JobForWorker offers a proposal on a job card.
func (k Keyboards) JobForWorker(job *models.Job) tgbotapi.InlineKeyboardMarkup {
	role := models.RoleWorker

	rows := [][]tgbotapi.InlineKeyboardButton{
		row(k.control(role, "make_proposal", callbacks.ControlPropose, callbacks.ObjectJob, job.ID)),
	}
	if job.Employer != nil {
		rows = append(rows, row(tgbotapi.NewInlineKeyboardButtonData(
			k.catalog.Button("reviews", role.Language()),
			callbacks.MustEncode(callbacks.PrefixWorkerDetails, callbacks.ObjectEmployer, callbacks.ID(job.EmployerID)),
		)))
	}
	rows = append(rows, row(k.menuButton(role, "main_menu", callbacks.SectionMain)))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) WorkerForEmployer(worker *models.Worker) tgbotapi.InlineKeyboardMarkup {
	role := models.RoleEmployer

	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.control(role, "make_proposal", callbacks.ControlPropose, callbacks.ObjectWorker, worker.ID)),
		row(k.menuButton(role, "main_menu", callbacks.SectionMain)),
	)
}

func (k Keyboards) OwnJob(job *models.Job) tgbotapi.InlineKeyboardMarkup {
	role := models.RoleEmployer

	notifSlug := "enable_notifications"
	if job.Notifications {
		notifSlug = "disable_notifications"
	}
	activeSlug := "activate"
	if job.IsActive {
		activeSlug = "deactivate"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row(k.control(role, notifSlug, callbacks.ControlJobNotif, callbacks.ActionToggle, job.ID)),
		row(k.control(role, activeSlug, callbacks.ControlJobActive, callbacks.ActionToggle, job.ID)),
		row(k.menuButton(role, "main_menu", callbacks.SectionMain)),
	)
}

// Proposal offers the actions a party may take on a proposal.
func (k Keyboards) Proposal(proposal *models.Proposal, viewer models.Role, canReview bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch {
	case proposal.Recipient() == viewer && proposal.IsPending():
		rows = append(rows, row(
			k.control(viewer, "accept", callbacks.ControlAnswer, callbacks.ActionAccept, proposal.ID),
			k.control(viewer, "decline", callbacks.ControlAnswer, callbacks.ActionDecline, proposal.ID),
		))
	case proposal.Initiator() == viewer && proposal.IsDeclined():
		rows = append(rows, row(k.control(viewer, "resend_proposal", callbacks.ControlResend, callbacks.ActionOpen, proposal.ID)))
	case proposal.IsAccepted() && canReview:
		rows = append(rows, row(k.control(viewer, "add_review", callbacks.ControlReview, callbacks.ActionOpen, proposal.PartyID(viewer.Counterpart()))))
	}

	rows = append(rows, row(
		k.button("back", viewer.Language(), callbacks.MustEncode(menuPrefix(viewer), callbacks.SectionProposals)),
		k.menuButton(viewer, "main_menu", callbacks.SectionMain),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (k Keyboards) Review(viewer models.Role) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(
		k.button("back", viewer.Language(), callbacks.MustEncode(menuPrefix(viewer), callbacks.SectionReviews)),
		k.menuButton(viewer, "main_menu", callbacks.SectionMain),
	))
}

// Details is a single button opening a record, attached to notifications.
func (k Keyboards) Details(viewer models.Role, object string, id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(tgbotapi.NewInlineKeyboardButtonData(
		k.catalog.Button("details", viewer.Language()),
		callbacks.MustEncode(detailsPrefix(viewer), object, callbacks.ID(id)),
	)))
}

func (k Keyboards) Admin(target services.ModerationTarget, id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(
		k.button("accept", models.LanguageRussian, callbacks.MustEncode(callbacks.PrefixAdmin, string(target), string(services.ModerationActionAccept), callbacks.ID(id))),
		k.button("decline", models.LanguageRussian, callbacks.MustEncode(callbacks.PrefixAdmin, string(target), string(services.ModerationActionDecline), callbacks.ID(id))),
	))
}

// ChannelMore links channel readers to the bot.
func (k Keyboards) ChannelMore(audience models.Audience) tgbotapi.InlineKeyboardMarkup {
	slug, lang := "more_jobs", models.LanguageRussian
	if audience == models.AudienceEmployers {
		slug, lang = "more_workers", models.LanguageHebrew
	}

	return tgbotapi.NewInlineKeyboardMarkup(row(
		tgbotapi.NewInlineKeyboardButtonURL(k.catalog.Button(slug, lang), k.BotURL()),
	))
}

func (k Keyboards) BotURL() string {
	return "https://t.me/" + strings.TrimPrefix(k.botName, "@")
}

// Links renders broadcast buttons, one per row.
func Links(buttons []*models.BroadcastButton, lang models.Language) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, button := range buttons {
		rows = append(rows, row(tgbotapi.NewInlineKeyboardButtonURL(button.TextIn(lang), button.Link)))
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
