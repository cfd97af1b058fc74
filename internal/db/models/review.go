package models

import "time"

const (
	MinRate = 1
	MaxRate = 5
)

type Review struct {
	ID                int64          `json:"id" pg:",pk"`
	Author            Role           `json:"author" pg:",notnull"`
	WorkerID          int64          `json:"worker_id" pg:",notnull"`
	Worker            *Worker        `json:"worker" pg:"rel:has-one"`
	EmployerID        int64          `json:"employer_id" pg:",notnull"`
	Employer          *Employer      `json:"employer" pg:"rel:has-one"`
	Rate              int            `json:"rate" pg:",use_zero"`
	Comment           string         `json:"comment"`
	CommentTranslated string         `json:"comment_translated"`
	Approval          ApprovalStatus `json:"approval" pg:",notnull"`
	CreatedAt         time.Time      `json:"created_at" pg:"default:now()"`
}

func (r *Review) Ratee() Role {
	return r.Author.Counterpart()
}

// PartyID returns the worker or employer id on the given side.
func (r *Review) PartyID(role Role) int64 {
	if role == RoleEmployer {
		return r.EmployerID
	}
	return r.WorkerID
}

// CommentIn returns the comment in the reader's language when a translation exists.
func (r *Review) CommentIn(lang Language) string {
	if lang != r.Author.Language() && r.CommentTranslated != "" {
		return r.CommentTranslated
	}
	return r.Comment
}
