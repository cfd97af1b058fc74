package views

import (
	"work_exchange/internal"
	"work_exchange/internal/db/models"
)

// WorkerAnnouncement is the Hebrew card posted to employer channels and
// matching employers.
func (r Renderer) WorkerAnnouncement(worker *models.Worker, headerSlug string) string {
	lang := models.LanguageHebrew

	return r.card(lang, headerSlug).
		field("occupations", r.occupations(worker.Occupations, lang)).
		field("min_salary", r.salary(worker.MinSalary, lang)).
		field("about", internal.EscapeMarkdown(worker.AboutIn(lang))).
		String()
}

// JobAnnouncement is the Russian card posted to worker channels and matching
// workers.
func (r Renderer) JobAnnouncement(job *models.Job, headerSlug string) string {
	lang := models.LanguageRussian

	return r.card(lang, headerSlug).
		field("occupations", r.occupations(job.Occupations, lang)).
		field("min_salary", r.salary(job.MinSalary, lang)).
		field("description", internal.EscapeMarkdown(job.DescriptionIn(lang))).
		String()
}

// Decision is the short message telling an author how moderation went.
func (r Renderer) Decision(subject string, status models.ApprovalStatus, lang models.Language) string {
	switch {
	case status.IsApproved():
		return r.Text(subject+"_approved", lang)
	case status.IsDeclined():
		return r.Text(subject+"_declined", lang)
	}
	return r.Text(subject+"_sent", lang)
}
