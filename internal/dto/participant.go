package dto

import "time"

type JoinProcurementRequestDTO struct {
	UserID   int      `json:"user_id" example:"42"`
	Quantity *float64 `json:"quantity,omitempty" example:"2"`
	Amount   float64  `json:"amount" example:"37"`
	Notes    string   `json:"notes,omitempty" example:"pick up in the evening"`
}

type ParticipantResponseDTO struct {
	ID            int       `json:"id" example:"1"`
	ProcurementID int       `json:"procurement_id" example:"1"`
	UserID        int       `json:"user_id" example:"42"`
	Quantity      float64   `json:"quantity" example:"2"`
	Amount        float64   `json:"amount" example:"37"`
	Notes         string    `json:"notes" example:"pick up in the evening"`
	IsActive      bool      `json:"is_active" example:"true"`
	JoinedAt      time.Time `json:"joined_at"`
}

type LeaveProcurementRequestDTO struct {
	UserID int `json:"user_id" example:"42"`
}

type LeaveProcurementResponseDTO struct {
	Message       string  `json:"message" example:"Left procurement"`
	ProcurementID int     `json:"procurement_id" example:"1"`
	CurrentAmount float64 `json:"current_amount" example:"83"`
}
