package domain

import "time"

type Role string

const (
	RoleMember Role = "member"
	RoleHost   Role = "host"
	RoleAdmin  Role = "admin"
)

type Member struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}
