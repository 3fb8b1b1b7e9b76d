package dto

import "time"

type CreateProcurementRequestDTO struct {
	Title           string     `json:"title" example:"Bulk coffee beans"`
	Description     string     `json:"description" example:"Single-origin arabica, 1kg bags"`
	CategoryID      int        `json:"category_id" example:"3"`
	OrganizerID     int        `json:"organizer_id" example:"42"`
	City            string     `json:"city" example:"Berlin"`
	DeliveryAddress string     `json:"delivery_address,omitempty" example:"Warschauer Str. 70"`
	Unit            string     `json:"unit,omitempty" example:"kg"`
	PricePerUnit    float64    `json:"price_per_unit" example:"18.5"`
	TargetAmount    float64    `json:"target_amount" example:"500"`
	StopAtAmount    *float64   `json:"stop_at_amount,omitempty" example:"600"`
	Status          string     `json:"status,omitempty" example:"draft"`
	Deadline        *time.Time `json:"deadline,omitempty" example:"2024-06-01T00:00:00Z"`
	PaymentDeadline *time.Time `json:"payment_deadline,omitempty" example:"2024-06-08T00:00:00Z"`
	ImageURL        string     `json:"image_url,omitempty" example:"https://example.com/coffee.jpg"`
}

type ProcurementResponseDTO struct {
	ID                int        `json:"id" example:"1"`
	Title             string     `json:"title" example:"Bulk coffee beans"`
	Description       string     `json:"description" example:"Single-origin arabica, 1kg bags"`
	CategoryID        int        `json:"category_id" example:"3"`
	OrganizerID       int        `json:"organizer_id" example:"42"`
	City              string     `json:"city" example:"Berlin"`
	DeliveryAddress   string     `json:"delivery_address" example:"Warschauer Str. 70"`
	Unit              string     `json:"unit" example:"kg"`
	PricePerUnit      float64    `json:"price_per_unit" example:"18.5"`
	TargetAmount      float64    `json:"target_amount" example:"500"`
	StopAtAmount      *float64   `json:"stop_at_amount,omitempty" example:"600"`
	CurrentAmount     float64    `json:"current_amount" example:"120"`
	Status            string     `json:"status" example:"active"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	PaymentDeadline   *time.Time `json:"payment_deadline,omitempty"`
	ImageURL          string     `json:"image_url" example:"https://example.com/coffee.jpg"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	ParticipantsCount int        `json:"participants_count" example:"7"`
}

type ListProcurementsResponseDTO struct {
	Results []ProcurementResponseDTO `json:"results"`
}
