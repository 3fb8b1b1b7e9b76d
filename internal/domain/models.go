package domain

import "time"

const (
	StatusDraft     string = "draft"
	StatusActive    string = "active"
	StatusCompleted string = "completed"
	StatusCancelled string = "cancelled"
)

type Category struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Procurement struct {
	ID                int        `db:"id"`
	Title             string     `db:"title"`
	Description       string     `db:"description"`
	CategoryID        int        `db:"category_id"`
	OrganizerID       int        `db:"organizer_id"`
	City              string     `db:"city"`
	DeliveryAddress   string     `db:"delivery_address"`
	Unit              string     `db:"unit"`
	PricePerUnit      float64    `db:"price_per_unit"`
	TargetAmount      float64    `db:"target_amount"`
	StopAtAmount      *float64   `db:"stop_at_amount"`
	CurrentAmount     float64    `db:"current_amount"`
	Status            string     `db:"status"`
	Deadline          *time.Time `db:"deadline"`
	PaymentDeadline   *time.Time `db:"payment_deadline"`
	ImageURL          string     `db:"image_url"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	ParticipantsCount int        `db:"participants_count"`
}

type Participant struct {
	ID            int       `db:"id"`
	ProcurementID int       `db:"procurement_id"`
	UserID        int       `db:"user_id"`
	Quantity      float64   `db:"quantity"`
	Amount        float64   `db:"amount"`
	Notes         string    `db:"notes"`
	IsActive      bool      `db:"is_active"`
	JoinedAt      time.Time `db:"joined_at"`
}

// ProcurementFilters is the closed set of optional list predicates.
// A nil field means the predicate is not applied.
type ProcurementFilters struct {
	Status      *string
	City        *string
	CategoryID  *int
	OrganizerID *int
}
