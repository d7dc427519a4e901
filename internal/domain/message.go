package domain

import "time"

type Message struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SenderID    string    `json:"sender_id" gorm:"index"`
	SenderName  string    `json:"sender_name"`
	RecipientID string    `json:"recipient_id" gorm:"index"`
	Subject     string    `json:"subject,omitempty"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Message) TableName() string { return "messages" }

type Announcement struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	NgoID          string    `json:"ngo_id" gorm:"index"`
	NgoName        string    `json:"ngo_name"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	TargetAudience []string  `json:"target_audience,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Announcement) TableName() string { return "ngo_announcements" }
