package models

import (
	"time"

	"golang.org/x/text/language"
)

type (
	Role     string
	Language string
)

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"

	LanguageRussian Language = "ru"
	LanguageHebrew  Language = "he"
)

// rtlEmbedding forces right-to-left rendering of Hebrew messages in Telegram clients.
const rtlEmbedding = "\u202B"

func (r Role) String() string {
	return string(r)
}

// Language returns the language a role is addressed in.
func (r Role) Language() Language {
	if r == RoleEmployer {
		return LanguageHebrew
	}
	return LanguageRussian
}

// Counterpart returns the opposite side of the marketplace.
func (r Role) Counterpart() Role {
	if r == RoleEmployer {
		return RoleWorker
	}
	return RoleEmployer
}

func (l Language) String() string {
	return string(l)
}

func (l Language) Tag() language.Tag {
	if l == LanguageHebrew {
		return language.Hebrew
	}
	return language.Russian
}

// Direct prefixes Hebrew text with the right-to-left embedding mark.
func (l Language) Direct(text string) string {
	if l == LanguageHebrew {
		return rtlEmbedding + text
	}
	return text
}

type TelegramUser struct {
	ID         int64     `json:"id" pg:",pk"`
	TelegramID int64     `json:"telegram_id" pg:",notnull,unique"`
	Role       Role      `json:"role" pg:",notnull"`
	CreatedAt  time.Time `json:"created_at" pg:"default:now()"`
}
