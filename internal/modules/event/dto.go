package event

type CreateEventRequest struct {
	Title           string `json:"title" binding:"required,min=3"`
	Description     string `json:"description"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	MaxParticipants int    `json:"max_participants" binding:"gte=0"`
}

type UpdateEventRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	Category        *string `json:"category"`
	MaxParticipants *int    `json:"max_participants"`
	Status          *string `json:"status"`
}

type RegisterOptions struct {
	// Idempotent makes a repeated registration succeed silently
	// instead of failing.
	Idempotent bool
}
