package models

import "time"

type Job struct {
	ID             int64          `json:"id" pg:",pk"`
	EmployerID     int64          `json:"employer_id" pg:",notnull"`
	Employer       *Employer      `json:"employer" pg:"rel:has-one"`
	Occupations    []string       `json:"occupations" pg:",array"`
	MinSalary      int            `json:"min_salary" pg:",use_zero"`
	Description    string         `json:"description"`
	DescriptionRus string         `json:"description_rus"`
	Notifications  bool           `json:"notifications" pg:",use_zero"`
	IsActive       bool           `json:"is_active" pg:",use_zero"`
	Approval       ApprovalStatus `json:"approval" pg:",notnull"`
	CreatedAt      time.Time      `json:"created_at" pg:"default:now()"`
	UpdatedAt      time.Time      `json:"updated_at" pg:"default:now()"`
}

// IsVisible reports whether workers may see the job.
func (j *Job) IsVisible() bool {
	return j.IsActive && j.Approval.IsApproved()
}

func (j *Job) DescriptionIn(lang Language) string {
	if lang == LanguageRussian && j.DescriptionRus != "" {
		return j.DescriptionRus
	}
	return j.Description
}
