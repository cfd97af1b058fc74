package models

import (
	"strings"
	"time"
)

type BroadcastTarget string

const (
	BroadcastTargetIndividual BroadcastTarget = "individual"
	BroadcastTargetWorkers    BroadcastTarget = "workers"
	BroadcastTargetEmployers  BroadcastTarget = "employers"
	BroadcastTargetAll        BroadcastTarget = "all"
)

func (t BroadcastTarget) String() string {
	return string(t)
}

// Roles returns the roles addressed by a mass broadcast target.
func (t BroadcastTarget) Roles() []Role {
	switch t {
	case BroadcastTargetWorkers:
		return []Role{RoleWorker}
	case BroadcastTargetEmployers:
		return []Role{RoleEmployer}
	case BroadcastTargetAll:
		return []Role{RoleWorker, RoleEmployer}
	}
	return nil
}

type Broadcast struct {
	ID             int64              `json:"id" pg:",pk"`
	Target         BroadcastTarget    `json:"target" pg:",notnull"`
	TelegramUserID int64              `json:"telegram_user_id"`
	TextRus        string             `json:"text_rus"`
	TextHeb        string             `json:"text_heb"`
	ImageKey       string             `json:"image_key"`
	NotifyAt       time.Time          `json:"notify_at" pg:",notnull"`
	IsValid        bool               `json:"is_valid" pg:",use_zero"`
	Started        bool               `json:"started" pg:",use_zero"`
	Notified       bool               `json:"notified" pg:",use_zero"`
	SuccessUsers   int                `json:"success_users" pg:",use_zero"`
	SentUsers      int                `json:"sent_users" pg:",use_zero"`
	TotalUsers     int                `json:"total_users" pg:",use_zero"`
	Buttons        []*BroadcastButton `json:"buttons" pg:"rel:has-many"`
	CreatedAt      time.Time          `json:"created_at" pg:"default:now()"`
}

func (b *Broadcast) TextIn(lang Language) string {
	return localized(b.TextRus, b.TextHeb, lang)
}

type BroadcastButton struct {
	ID          int64  `json:"id" pg:",pk"`
	BroadcastID int64  `json:"broadcast_id" pg:",notnull"`
	TextRus     string `json:"text_rus"`
	TextHeb     string `json:"text_heb"`
	Link        string `json:"link" pg:",notnull"`
	Position    int    `json:"position" pg:",use_zero"`
}

func (b *BroadcastButton) TextIn(lang Language) string {
	return localized(b.TextRus, b.TextHeb, lang)
}

// HasSecureLink reports whether the button points at an https URL.
func (b *BroadcastButton) HasSecureLink() bool {
	return strings.Contains(b.Link, "https://")
}
