package models

import "time"

type Employer struct {
	ID         int64     `json:"id" pg:",pk"`
	TelegramID int64     `json:"telegram_id" pg:",notnull,unique"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at" pg:"default:now()"`
}
