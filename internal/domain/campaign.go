package domain

import "time"

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignClosed    CampaignStatus = "closed"
)

type Campaign struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	NgoID       string         `json:"ngo_id" gorm:"index"`
	NgoName     string         `json:"ngo_name"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Goal        float64        `json:"goal"`
	Raised      float64        `json:"raised"`
	Status      CampaignStatus `json:"status" gorm:"index"`
	EndDate     string         `json:"end_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Derived from donations, never stored.
	Donors []CampaignDonor `json:"donors,omitempty" gorm:"-"`
}

func (Campaign) TableName() string { return "ngo_fundraisers" }

// CampaignDonor is the read projection of one donation row.
type CampaignDonor struct {
	DonorID  string    `json:"donor_id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	DonatedAt time.Time `json:"donated_at"`
}

type DonationStatus string

const (
	DonationCompleted DonationStatus = "completed"
)

// Donation is immutable once created; it drives Campaign.Raised and
// spawns exactly one ImpactReport.
type Donation struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	DonorID       string         `json:"donor_id" gorm:"index"`
	DonorName     string         `json:"donor_name"`
	CampaignID    string         `json:"campaign_id" gorm:"index"`
	CampaignTitle string         `json:"campaign_title"`
	NgoID         string         `json:"ngo_id" gorm:"index"`
	NgoName       string         `json:"ngo_name"`
	Amount        float64        `json:"amount"`
	PaymentMethod string         `json:"payment_method"`
	Status        DonationStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Donation) TableName() string { return "donor_donations" }

type ImpactReportStatus string

const (
	ImpactPending   ImpactReportStatus = "pending"
	ImpactPublished ImpactReportStatus = "published"
)

type ImpactReport struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	DonorID       string             `json:"donor_id" gorm:"index"`
	CampaignID    string             `json:"campaign_id" gorm:"index"`
	CampaignTitle string             `json:"campaign_title"`
	NgoName       string             `json:"ngo_name"`
	Amount        float64            `json:"amount"`
	Impact        string             `json:"impact"`
	Status        ImpactReportStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (ImpactReport) TableName() string { return "donor_impact_reports" }
