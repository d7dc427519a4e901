package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"impactnet/internal/config"
	"impactnet/internal/database"
	"impactnet/internal/domain"
	"impactnet/internal/middleware"
	"impactnet/internal/modules/admin"
	"impactnet/internal/modules/analytics"
	"impactnet/internal/modules/auth"
	"impactnet/internal/modules/badge"
	"impactnet/internal/modules/campaign"
	"impactnet/internal/modules/event"
	"impactnet/internal/modules/message"
	"impactnet/internal/modules/notification"
	"impactnet/internal/modules/project"
	"impactnet/internal/modules/resource"
	jwtsvc "impactnet/internal/pkg/jwt"
	"impactnet/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	reportRepo := repository.NewImpactReportRepository(db)
	eventRepo := repository.NewEventRepository(db)
	eventRegRepo := repository.NewEventRegistrationRepository(db)
	volunteerEventRepo := repository.NewVolunteerEventRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := message.NewHub()
	defer hub.Close()

	notificationService := notification.NewService(notification.NewRepository(db), announcementRepo)
	notificationService.SetPusher(hub)
	notificationHandler := notification.NewHandler(notificationService)

	badgeService := badge.NewService(badgeRepo, engagementRepo, donationRepo, notificationService)
	badgeHandler := badge.NewHandler(badgeService)

	authService := auth.NewService(db, userRepo, registrationRepo, j, cfg, notificationService)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(registrationRepo, userRepo, notificationService)
	adminHandler := admin.NewHandler(adminService)

	projectService := project.NewService(projectRepo, engagementRepo, skillRepo, notificationService, badgeService)
	projectHandler := project.NewHandler(projectService)

	campaignService := campaign.NewService(db, campaignRepo, donationRepo, reportRepo, notificationService, badgeService)
	campaignHandler := campaign.NewHandler(campaignService)

	eventService := event.NewService(eventRepo, eventRegRepo, volunteerEventRepo, notificationService)
	eventHandler := event.NewHandler(eventService)

	resourceService := resource.NewService(resourceRepo, notificationService)
	resourceHandler := resource.NewHandler(resourceService)

	messageService := message.NewService(messageRepo, userRepo, notificationService, hub)
	messageHandler := message.NewHandler(messageService, hub, j)

	analyticsHandler := analytics.NewHandler(analytics.NewService(db))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		messageHandler.RegisterWebSocket(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			campaignHandler.RegisterRoutes(protected)
			eventHandler.RegisterRoutes(protected)
			resourceHandler.RegisterRoutes(protected)
			messageHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			badgeHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)

			// admin only
			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
