package configs

// Admin holds the chats where moderation requests and accepted proposals are posted.
type Admin struct {
	ChatID          int64 `env:"ADMIN_CHAT_ID,notEmpty"`
	ReviewsChatID   int64 `env:"ADMIN_CHAT_REVIEWS_ID,notEmpty"`
	ProposalsChatID int64 `env:"ADMIN_CHAT_PROPOSALS_ID,notEmpty"`
}

func (c Admin) IsAdminChat(chatID int64) bool {
	return chatID == c.ChatID || chatID == c.ReviewsChatID || chatID == c.ProposalsChatID
}
