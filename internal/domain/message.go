package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
	Mode      *SearchMode
	Sources   []string
}
