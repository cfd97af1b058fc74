package models

import "time"

const MaxObjectPhotos = 9

type Worker struct {
	ID                  int64          `json:"id" pg:",pk"`
	TelegramID          int64          `json:"telegram_id" pg:",notnull,unique"`
	Username            string         `json:"username"`
	Name                string         `json:"name"`
	Phone               string         `json:"phone"`
	PassportPhotoFileID string         `json:"passport_photo_file_id"`
	PassportPhotoKey    string         `json:"passport_photo_key"`
	Occupations         []string       `json:"occupations" pg:",array"`
	About               string         `json:"about"`
	AboutHeb            string         `json:"about_heb"`
	MinSalary           int            `json:"min_salary" pg:",use_zero"`
	ObjectPhotos        []string       `json:"object_photos" pg:",array"`
	Notifications       bool           `json:"notifications" pg:",use_zero"`
	IsSearching         bool           `json:"is_searching" pg:",use_zero"`
	Approval            ApprovalStatus `json:"approval" pg:",notnull"`
	CreatedAt           time.Time      `json:"created_at" pg:"default:now()"`
	UpdatedAt           time.Time      `json:"updated_at" pg:"default:now()"`
}

// IsListed reports whether employers may see the worker.
func (w *Worker) IsListed() bool {
	return w.Approval.IsApproved() && w.IsSearching
}

// AboutIn returns the self description in the given language, falling back to the original text.
func (w *Worker) AboutIn(lang Language) string {
	if lang == LanguageHebrew && w.AboutHeb != "" {
		return w.AboutHeb
	}
	return w.About
}

// MatchesJob reports whether a job should be offered to the worker.
func (w *Worker) MatchesJob(job *Job) bool {
	return OccupationsOverlap(w.Occupations, job.Occupations) && job.MinSalary >= w.MinSalary
}

func OccupationsOverlap(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, slug := range a {
		set[slug] = struct{}{}
	}

	for _, slug := range b {
		if _, ok := set[slug]; ok {
			return true
		}
	}

	return false
}
