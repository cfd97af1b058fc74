package models

// Audience is the side of the marketplace a channel is read by.
type Audience string

const (
	AudienceWorkers   Audience = "workers"
	AudienceEmployers Audience = "employers"
)

type Channel struct {
	ID         int64    `json:"id" pg:",pk"`
	Title      string   `json:"title"`
	TelegramID int64    `json:"telegram_id" pg:",notnull"`
	Audience   Audience `json:"audience" pg:",notnull"`
	IsActive   bool     `json:"is_active" pg:",use_zero"`
}
