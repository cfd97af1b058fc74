package views

import (
	"fmt"
	"strings"

	"work_exchange/internal"
	"work_exchange/internal/db/models"
)

const (
	missing = "не указан"

	repeatBanner = "❗️*ПОВТОРНО ПРИНЯТОЕ ПРЕДЛОЖЕНИЕ О СОТРУДНИЧЕСТВЕ МЕЖДУ РАБОТНИКОМ И РАБОТОДАТЕЛЕМ*❗️"
)

func username(username string) string {
	if username == "" {
		return missing
	}
	return internal.EscapeMarkdown("@" + username)
}

func orMissing(text string) string {
	if text == "" {
		return missing
	}
	return internal.EscapeMarkdown(text)
}

// WorkerRequest is the moderation request for a submitted profile.
func (r Renderer) WorkerRequest(worker *models.Worker) string {
	c := r.card(models.LanguageRussian, "")
	c.lines = append(c.lines, "*Заявка на размещение резюме:*", "")

	return c.field("name", internal.EscapeMarkdown(worker.Name)).
		field("phone", internal.EscapeMarkdown(worker.Phone)).
		field("occupations", r.occupations(worker.Occupations, models.LanguageRussian)).
		field("min_salary", r.salary(worker.MinSalary, models.LanguageRussian)).
		field("about", internal.EscapeMarkdown(worker.About)).
		field("notifications", r.yesNo(worker.Notifications, models.LanguageRussian)).
		String()
}

func (r Renderer) JobRequest(job *models.Job) string {
	c := r.card(models.LanguageRussian, "")
	c.lines = append(c.lines, "*Заявка на размещение вакансии:*", "")

	return c.field("occupations", r.occupations(job.Occupations, models.LanguageRussian)).
		field("min_salary", r.salary(job.MinSalary, models.LanguageRussian)).
		field("description", internal.EscapeMarkdown(job.DescriptionIn(models.LanguageRussian))).
		String()
}

func (r Renderer) workerBlock(worker *models.Worker) []string {
	if worker == nil {
		return nil
	}
	return []string{
		"*Работник:*",
		fmt.Sprintf("*Id tg:* %d", worker.TelegramID),
		fmt.Sprintf("*Имя:* %s", internal.EscapeMarkdown(worker.Name)),
		fmt.Sprintf("*Ник tg:* %s", username(worker.Username)),
		fmt.Sprintf("*Номер телефона:* %s", orMissing(worker.Phone)),
		fmt.Sprintf("*Профессии:* %s", r.occupations(worker.Occupations, models.LanguageRussian)),
		fmt.Sprintf("*Ставка от:* %d ₪/час", worker.MinSalary),
	}
}

func employerBlock(employer *models.Employer) []string {
	if employer == nil {
		return nil
	}
	return []string{
		"*Работодатель:*",
		fmt.Sprintf("*Id tg:* %d", employer.TelegramID),
		fmt.Sprintf("*Название компании:* %s", internal.EscapeMarkdown(employer.Name)),
		fmt.Sprintf("*Ник tg:* %s", username(employer.Username)),
		fmt.Sprintf("*Номер телефона:* %s", orMissing(employer.Phone)),
	}
}

// ProposalReport tells the admins about an accepted proposal. Both parties
// have to be loaded on the proposal.
func (r Renderer) ProposalReport(proposal *models.Proposal, repeated bool) string {
	var lines []string
	if repeated {
		lines = append(lines, repeatBanner, "")
	}

	if proposal.Initiator() == models.RoleWorker {
		lines = append(lines, "*Предложение о сотрудничестве от работника принято работодателем:*", "")
	} else {
		lines = append(lines, "*Предложение о сотрудничестве от работодателя принято работником:*", "")
	}

	lines = append(lines, r.workerBlock(proposal.Worker)...)
	lines = append(lines, "")
	lines = append(lines, employerBlock(proposal.Employer)...)

	if job := proposal.Job; job != nil {
		lines = append(lines,
			"",
			"*Вакансия:*",
			fmt.Sprintf("*Специальности:* %s", r.occupations(job.Occupations, models.LanguageRussian)),
			fmt.Sprintf("*Ставка от:* %d ₪/час", job.MinSalary),
		)
	}

	return strings.Join(lines, "\n")
}

// ReviewRequest is the moderation request for a submitted review.
func (r Renderer) ReviewRequest(review *models.Review) string {
	var lines []string

	if review.Author == models.RoleEmployer {
		lines = append(lines, "*Новый отзыв от работодателя на работника:*", "")
		lines = append(lines, employerBlock(review.Employer)...)
		lines = append(lines, "")
		lines = append(lines, r.workerBlock(review.Worker)...)
	} else {
		lines = append(lines, "*Новый отзыв от работника на работодателя:*", "")
		lines = append(lines, r.workerBlock(review.Worker)...)
		lines = append(lines, "")
		lines = append(lines, employerBlock(review.Employer)...)
	}

	lines = append(lines,
		"",
		fmt.Sprintf("*Оценка:* %d ⭐️", review.Rate),
		fmt.Sprintf("*Комментарий:* %s", orMissing(review.Comment)),
	)

	return strings.Join(lines, "\n")
}
