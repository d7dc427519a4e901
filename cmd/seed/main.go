package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"impactnet/internal/config"
	"impactnet/internal/database"
	"impactnet/internal/domain"
	"impactnet/internal/modules/notification"
)

// Seeds a demo dataset: one verified NGO with a project, a campaign and
// an event, plus a volunteer and a donor with some history.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.NgoRegistration{},
		&domain.Project{},
		&domain.Engagement{},
		&domain.VolunteerSkill{},
		&domain.Campaign{},
		&domain.Donation{},
		&domain.ImpactReport{},
		&domain.Event{},
		&domain.EventRegistration{},
		&domain.VolunteerEvent{},
		&domain.Resource{},
		&domain.Message{},
		&domain.Announcement{},
		&domain.Badge{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"notifications",
		"ngo_announcements",
		"messages",
		"donor_achievements",
		"donor_impact_reports",
		"donor_donations",
		"ngo_fundraisers",
		"volunteer_events",
		"event_registrations",
		"ngo_events",
		"ngo_resources",
		"volunteer_skills",
		"volunteer_engagements",
		"ngo_projects",
		"ngo_registrations",
		"users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating users...")

	hash := func(password string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		return string(h)
	}

	ngo := domain.User{
		ID:           uuid.NewString(),
		Email:        "contact@greensteppe.kz",
		PasswordHash: hash("ngo123"),
		Role:         domain.RoleNgo,
		Name:         "Green Steppe Foundation",
	}
	db.Create(&ngo)

	now := time.Now()
	db.Create(&domain.NgoRegistration{
		ID:                 uuid.NewString(),
		UserID:             ngo.ID,
		OrganizationName:   ngo.Name,
		Email:              ngo.Email,
		RegistrationNumber: "KZ-NGO-001245",
		OrganizationType:   "environmental",
		FoundedYear:        2017,
		City:               "Almaty",
		Country:            "Kazakhstan",
		ContactPerson:      "Aigerim Satpayeva",
		MissionStatement:   "Restoring steppe ecosystems across Kazakhstan",
		FocusAreas:         []string{"environment", "education"},
		Status:             domain.VerificationVerified,
		VerifiedAt:         &now,
		VerifiedBy:         "admin",
	})
	log.Println("NGO created: contact@greensteppe.kz / ngo123 (verified)")

	volunteer := domain.User{
		ID:           uuid.NewString(),
		Email:        "aisha@mail.kz",
		PasswordHash: hash("volunteer123"),
		Role:         domain.RoleVolunteer,
		Name:         "Aisha Bekova",
		Phone:        "+7 777 123 4567",
	}
	db.Create(&volunteer)
	log.Println("Volunteer created: aisha@mail.kz / volunteer123")

	donor := domain.User{
		ID:           uuid.NewString(),
		Email:        "erik@gmail.com",
		PasswordHash: hash("donor123"),
		Role:         domain.RoleDonor,
		Name:         "Erik Dzhaksybekov",
	}
	db.Create(&donor)
	log.Println("Donor created: erik@gmail.com / donor123")

	log.Println("Creating projects, campaigns and events...")

	proj := domain.Project{
		ID:               uuid.NewString(),
		NgoID:            ngo.ID,
		NgoName:          ngo.Name,
		Title:            "Tree Planting Along the Ili River",
		Description:      "Plant 500 saplings to stabilise the riverbank",
		Category:         "environment",
		SkillsNeeded:     []string{"gardening", "physical work"},
		VolunteersNeeded: 20,
		FundGoal:         200000,
		Status:           domain.ProjectActive,
		Urgency:          domain.UrgencyHigh,
		Location:         "Almaty Region",
	}
	db.Create(&proj)

	db.Create(&domain.Engagement{
		ID:            uuid.NewString(),
		VolunteerID:   volunteer.ID,
		VolunteerName: volunteer.Name,
		ProjectID:     proj.ID,
		ProjectTitle:  proj.Title,
		NgoName:       ngo.Name,
		Hours:         6,
		Status:        domain.EngagementActive,
		Progress:      30,
	})

	camp := domain.Campaign{
		ID:          uuid.NewString(),
		NgoID:       ngo.ID,
		NgoName:     ngo.Name,
		Title:       "Saplings for Spring 2027",
		Description: "Buy 500 saplings and tools",
		Category:    "environment",
		Goal:        500000,
		Raised:      75000,
		Status:      domain.CampaignActive,
	}
	db.Create(&camp)

	db.Create(&domain.Donation{
		ID:            uuid.NewString(),
		DonorID:       donor.ID,
		DonorName:     donor.Name,
		CampaignID:    camp.ID,
		CampaignTitle: camp.Title,
		NgoID:         ngo.ID,
		NgoName:       ngo.Name,
		Amount:        75000,
		PaymentMethod: "card",
		Status:        domain.DonationCompleted,
	})
	db.Create(&domain.ImpactReport{
		ID:            uuid.NewString(),
		DonorID:       donor.ID,
		CampaignID:    camp.ID,
		CampaignTitle: camp.Title,
		NgoName:       ngo.Name,
		Amount:        75000,
		Status:        domain.ImpactPending,
	})

	db.Create(&domain.Event{
		ID:              uuid.NewString(),
		NgoID:           ngo.ID,
		NgoName:         ngo.Name,
		Title:           "Ili River Cleanup Day",
		Description:     "A one-day cleanup along the riverbank",
		Date:            now.AddDate(0, 1, 0).Format("2006-01-02"),
		Time:            "09:00",
		Location:        "Almaty Region",
		Category:        "environment",
		MaxParticipants: 50,
		Status:          domain.EventUpcoming,
	})

	db.Create(&domain.Resource{
		ID:           uuid.NewString(),
		NgoID:        ngo.ID,
		NgoName:      ngo.Name,
		Name:         "Projector",
		Type:         "equipment",
		Availability: domain.ResourceAvailable,
	})

	log.Println("Seed completed")
}
