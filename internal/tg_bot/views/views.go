package views

import (
	"fmt"
	"strings"

	"work_exchange/internal"
	"work_exchange/internal/catalog"
	"work_exchange/internal/db/models"
	"work_exchange/internal/fsm"
	"work_exchange/internal/services"
)

// Renderer builds legacy Markdown message bodies from catalog texts.
type Renderer struct {
	catalog catalog.Catalog
}

func NewRenderer(catalog catalog.Catalog) Renderer {
	return Renderer{catalog: catalog}
}

func (r Renderer) Text(slug string, lang models.Language) string {
	return lang.Direct(r.catalog.Text(slug, lang))
}

// Bold renders a catalog text as a Markdown header line.
func (r Renderer) Bold(slug string, lang models.Language) string {
	return lang.Direct(fmt.Sprintf("*%s*", r.catalog.Text(slug, lang)))
}

type card struct {
	r     Renderer
	lang  models.Language
	lines []string
}

func (r Renderer) card(lang models.Language, headerSlug string) *card {
	c := &card{r: r, lang: lang}
	if headerSlug != "" {
		c.lines = append(c.lines, fmt.Sprintf("*%s*", r.catalog.Text(headerSlug, lang)), "")
	}
	return c
}

func (c *card) field(slug, value string) *card {
	c.lines = append(c.lines, fmt.Sprintf("*%s* %s", c.r.catalog.Text(slug, c.lang), value))
	return c
}

func (c *card) blank() *card {
	c.lines = append(c.lines, "")
	return c
}

func (c *card) String() string {
	return c.lang.Direct(strings.Join(c.lines, "\n"))
}

func (r Renderer) yesNo(value bool, lang models.Language) string {
	if value {
		return r.catalog.Text("yes", lang)
	}
	return r.catalog.Text("no", lang)
}

func (r Renderer) salary(salary int, lang models.Language) string {
	return fmt.Sprintf("%d %s", salary, r.catalog.Text("salary_hourly", lang))
}

func (r Renderer) Approval(status models.ApprovalStatus, lang models.Language) string {
	return r.catalog.Text("status_"+status.String(), lang)
}

func (r Renderer) ProposalStatus(status models.ProposalStatus, lang models.Language) string {
	return r.catalog.Text("status_"+status.String(), lang)
}

func (r Renderer) Rating(rating services.Rating, lang models.Language) string {
	if rating.Count == 0 {
		return r.catalog.Text("no_rating", lang)
	}
	return fmt.Sprintf("%.1f ⭐️ (%d)", rating.Average, rating.Count)
}

func (r Renderer) occupations(slugs []string, lang models.Language) string {
	return internal.EscapeMarkdown(r.catalog.OccupationNames(slugs, lang))
}

// Worker is the card employers see.
func (r Renderer) Worker(worker *models.Worker, rating services.Rating, headerSlug string) string {
	lang := models.LanguageHebrew

	return r.card(lang, headerSlug).
		field("name", internal.EscapeMarkdown(worker.Name)).
		field("occupations", r.occupations(worker.Occupations, lang)).
		field("min_salary", r.salary(worker.MinSalary, lang)).
		field("about", internal.EscapeMarkdown(worker.AboutIn(lang))).
		field("rating", r.Rating(rating, lang)).
		String()
}

// WorkerProfile is the worker's own view of the profile.
func (r Renderer) WorkerProfile(worker *models.Worker, rating services.Rating) string {
	lang := models.LanguageRussian

	return r.card(lang, "your_profile").
		field("name", internal.EscapeMarkdown(worker.Name)).
		field("phone", internal.EscapeMarkdown(worker.Phone)).
		field("occupations", r.occupations(worker.Occupations, lang)).
		field("min_salary", r.salary(worker.MinSalary, lang)).
		field("about", internal.EscapeMarkdown(worker.About)).
		field("object_photos", fmt.Sprintf("%d", len(worker.ObjectPhotos))).
		field("notifications", r.yesNo(worker.Notifications, lang)).
		field("searching", r.yesNo(worker.IsSearching, lang)).
		field("status", r.Approval(worker.Approval, lang)).
		field("rating", r.Rating(rating, lang)).
		String()
}

// Job is the card workers see.
func (r Renderer) Job(job *models.Job, headerSlug string) string {
	lang := models.LanguageRussian

	c := r.card(lang, headerSlug).
		field("occupations", r.occupations(job.Occupations, lang)).
		field("min_salary", r.salary(job.MinSalary, lang)).
		field("description", internal.EscapeMarkdown(job.DescriptionIn(lang)))
	if job.Employer != nil {
		c.field("employer", internal.EscapeMarkdown(job.Employer.Name))
	}

	return c.String()
}

// OwnJob is the employer's view of one of their jobs.
func (r Renderer) OwnJob(job *models.Job) string {
	lang := models.LanguageHebrew

	return r.card(lang, "job").
		field("occupations", r.occupations(job.Occupations, lang)).
		field("min_salary", r.salary(job.MinSalary, lang)).
		field("description", internal.EscapeMarkdown(job.Description)).
		field("notifications", r.yesNo(job.Notifications, lang)).
		field("active", r.yesNo(job.IsActive, lang)).
		field("status", r.Approval(job.Approval, lang)).
		field("updated_at", internal.Format(job.UpdatedAt)).
		String()
}

func (r Renderer) Employer(employer *models.Employer, rating services.Rating, lang models.Language) string {
	return r.card(lang, "").
		field("employer", internal.EscapeMarkdown(employer.Name)).
		field("rating", r.Rating(rating, lang)).
		String()
}

func (r Renderer) EmployerProfile(employer *models.Employer, rating services.Rating) string {
	lang := models.LanguageHebrew

	return r.card(lang, "your_profile").
		field("name", internal.EscapeMarkdown(employer.Name)).
		field("phone", internal.EscapeMarkdown(employer.Phone)).
		field("rating", r.Rating(rating, lang)).
		String()
}

// Proposal renders a proposal for one of its parties.
func (r Renderer) Proposal(proposal *models.Proposal, viewer models.Role) string {
	lang := viewer.Language()

	headerSlug := "inbox_proposal"
	if proposal.Initiator() == viewer {
		headerSlug = "outbox_proposal"
	}

	c := r.card(lang, headerSlug)

	switch {
	case viewer == models.RoleWorker && proposal.Job != nil:
		c.field("occupations", r.occupations(proposal.Job.Occupations, lang)).
			field("min_salary", r.salary(proposal.Job.MinSalary, lang)).
			field("description", internal.EscapeMarkdown(proposal.Job.DescriptionIn(lang)))
	case viewer == models.RoleWorker && proposal.Employer != nil:
		c.field("employer", internal.EscapeMarkdown(proposal.Employer.Name))
	case viewer == models.RoleEmployer && proposal.Worker != nil:
		c.field("worker", internal.EscapeMarkdown(proposal.Worker.Name)).
			field("occupations", r.occupations(proposal.Worker.Occupations, lang)).
			field("min_salary", r.salary(proposal.Worker.MinSalary, lang))
	}

	return c.blank().
		field("status", r.ProposalStatus(proposal.Status, lang)).
		field("created_at", internal.Format(proposal.CreatedAt)).
		field("updated_at", internal.Format(proposal.UpdatedAt)).
		String()
}

// Review renders a review for one of its parties.
func (r Renderer) Review(review *models.Review, viewer models.Role) string {
	lang := viewer.Language()

	c := r.card(lang, "review")
	if review.Author == viewer {
		if name := counterpartName(review.Worker, review.Employer, review.Ratee()); name != "" {
			c.field(review.Ratee().String(), internal.EscapeMarkdown(name))
		}
	} else if name := counterpartName(review.Worker, review.Employer, review.Author); name != "" {
		c.field(review.Author.String(), internal.EscapeMarkdown(name))
	}

	c.field("rate", fmt.Sprintf("%d ⭐️", review.Rate))
	if comment := review.CommentIn(lang); comment != "" {
		c.field("comment", internal.EscapeMarkdown(comment))
	}
	if review.Author == viewer {
		c.field("status", r.Approval(review.Approval, lang))
	}

	return c.field("created_at", internal.Format(review.CreatedAt)).String()
}

func counterpartName(worker *models.Worker, employer *models.Employer, role models.Role) string {
	if role == models.RoleWorker && worker != nil {
		return worker.Name
	}
	if role == models.RoleEmployer && employer != nil {
		return employer.Name
	}
	return ""
}

// WorkerDraft summarizes a finished profile flow before confirmation.
func (r Renderer) WorkerDraft(draft fsm.Draft) string {
	lang := models.LanguageRussian

	return r.card(lang, "confirm_data").
		field("name", internal.EscapeMarkdown(draft.Name)).
		field("phone", internal.EscapeMarkdown(draft.Phone)).
		field("occupations", r.occupations(draft.Occupations, lang)).
		field("about", internal.EscapeMarkdown(draft.About)).
		field("min_salary", r.salary(draft.MinSalary, lang)).
		field("object_photos", fmt.Sprintf("%d", len(draft.ObjectPhotos))).
		field("notifications", r.yesNo(draft.Notifications, lang)).
		String()
}

func (r Renderer) JobDraft(draft fsm.Draft) string {
	lang := models.LanguageHebrew

	return r.card(lang, "confirm_data").
		field("occupations", r.occupations(draft.Occupations, lang)).
		field("min_salary", r.salary(draft.MinSalary, lang)).
		field("description", internal.EscapeMarkdown(draft.Description)).
		field("notifications", r.yesNo(draft.Notifications, lang)).
		String()
}

func (r Renderer) ReviewDraft(draft fsm.Draft, lang models.Language) string {
	c := r.card(lang, "confirm_data").
		field("rate", fmt.Sprintf("%d ⭐️", draft.Rate))
	if draft.Comment != "" {
		c.field("comment", internal.EscapeMarkdown(draft.Comment))
	}
	return c.String()
}

// EntryLabel is the button caption of a listing row.
func (r Renderer) EntryLabel(entry services.Entry, viewer models.Role) string {
	lang := viewer.Language()

	switch {
	case entry.Job != nil:
		return fmt.Sprintf("%s · %s", r.catalog.OccupationNames(entry.Job.Occupations, lang), r.salary(entry.Job.MinSalary, lang))
	case entry.Worker != nil:
		return fmt.Sprintf("%s · %s", entry.Worker.Name, r.salary(entry.Worker.MinSalary, lang))
	case entry.Proposal != nil:
		return fmt.Sprintf("%s · %s", internal.Format(entry.Proposal.UpdatedAt), r.ProposalStatus(entry.Proposal.Status, lang))
	case entry.Review != nil:
		return fmt.Sprintf("%s · %d ⭐️", internal.Format(entry.Review.CreatedAt), entry.Review.Rate)
	}

	return ""
}

var destinationTitles = map[services.Destination]string{
	services.DestinationAllJobs:         "all_jobs",
	services.DestinationSuitableJobs:    "jobs_suitable",
	services.DestinationActiveJobs:      "jobs_active",
	services.DestinationArchiveJobs:     "jobs_archive",
	services.DestinationDeclinedJobs:    "jobs_declined",
	services.DestinationAllWorkers:      "workers_all",
	services.DestinationSuitableWorkers: "workers_suitable",
	services.DestinationInboxProposals:  "inbox",
	services.DestinationOutboxProposals: "outbox",
	services.DestinationInboxReviews:    "inbox",
	services.DestinationOutboxReviews:   "outbox",
}

func (r Renderer) ListTitle(destination services.Destination, lang models.Language, empty bool) string {
	title := fmt.Sprintf("*%s*", r.catalog.Button(destinationTitles[destination], lang))
	if empty {
		title = fmt.Sprintf("%s\n\n%s", title, r.catalog.Text("nothing_found", lang))
	}
	return lang.Direct(title)
}
