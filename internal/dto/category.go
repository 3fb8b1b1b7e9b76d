package dto

import "time"

type CategoryResponseDTO struct {
	ID          int       `json:"id" example:"3"`
	Name        string    `json:"name" example:"Groceries"`
	Description string    `json:"description" example:"Food and household staples"`
	IsActive    bool      `json:"is_active" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
}
