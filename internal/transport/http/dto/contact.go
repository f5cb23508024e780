package dto

import (
	"time"

	"pro_portfolio/internal/domain/models"

	"github.com/google/uuid"
)

// ContactMessageInput carries the raw submission. Field checks run in the
// contact service in a fixed order, so there are no validate tags here.
type ContactMessageInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Service  string `json:"service"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
	Phone    string `json:"phone"`
}

type ContactMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactMessageResponse(message models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}
