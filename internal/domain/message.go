package domain

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es un turno de conversación (asesor de dieta o compañero).
type Message struct {
	ID        string    `json:"id,omitempty"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
