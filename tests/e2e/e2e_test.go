package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

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

	_ "modernc.org/sqlite"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type testResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupTestSuite(t *testing.T) *testSuite {
	t.Helper()

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open test database")

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
	require.NoError(t, err, "failed to migrate test database")

	cfg := &config.Config{
		JWTSecret:     "e2e_secret_key_32_characters_long",
		JWTAccessTTL:  24 * time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin-secret",
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
	t.Cleanup(hub.Close)

	notificationService := notification.NewService(notification.NewRepository(db), announcementRepo)
	notificationService.SetPusher(hub)
	notificationHandler := notification.NewHandler(notificationService)

	badgeService := badge.NewService(badgeRepo, engagementRepo, donationRepo, notificationService)
	badgeHandler := badge.NewHandler(badgeService)

	authHandler := auth.NewHandler(auth.NewService(db, userRepo, registrationRepo, j, cfg, notificationService))
	adminHandler := admin.NewHandler(admin.NewService(registrationRepo, userRepo, notificationService))
	projectHandler := project.NewHandler(project.NewService(projectRepo, engagementRepo, skillRepo, notificationService, badgeService))
	campaignHandler := campaign.NewHandler(campaign.NewService(db, campaignRepo, donationRepo, reportRepo, notificationService, badgeService))
	eventHandler := event.NewHandler(event.NewService(eventRepo, eventRegRepo, volunteerEventRepo, notificationService))
	resourceHandler := resource.NewHandler(resource.NewService(resourceRepo, notificationService))
	messageHandler := message.NewHandler(message.NewService(messageRepo, userRepo, notificationService, hub), hub, j)
	analyticsHandler := analytics.NewHandler(analytics.NewService(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

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

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	return &testSuite{router: r, db: db}
}

func (s *testSuite) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *testResponse {
	t.Helper()

	var resp testResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "status %d, body %s", w.Code, w.Body.String())
	return &resp
}

func (s *testSuite) signupVolunteer(t *testing.T, email, name string) string {
	w := s.request(t, "POST", "/api/v1/auth/volunteer/signup", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return parseResponse(t, w).Data["token"].(string)
}

func (s *testSuite) signupDonor(t *testing.T, email, name string) string {
	w := s.request(t, "POST", "/api/v1/auth/donor/signup", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     name,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return parseResponse(t, w).Data["token"].(string)
}

func (s *testSuite) adminLogin(t *testing.T) string {
	w := s.request(t, "POST", "/api/v1/auth/admin/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "admin-secret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return parseResponse(t, w).Data["token"].(string)
}

// signupVerifiedNgo walks the full verification flow: signup (pending),
// admin approval, then the NGO's first login.
func (s *testSuite) signupVerifiedNgo(t *testing.T, email, orgName, regNumber string) string {
	w := s.request(t, "POST", "/api/v1/auth/ngo/signup", map[string]interface{}{
		"email":               email,
		"password":            "password123",
		"name":                "Contact Person",
		"organization_name":   orgName,
		"registration_number": regNumber,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	adminToken := s.adminLogin(t)

	w = s.request(t, "GET", "/api/v1/admin/registrations?status=pending", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	regs := parseResponse(t, w).Data["registrations"].([]interface{})

	var regID string
	for _, raw := range regs {
		reg := raw.(map[string]interface{})
		if reg["email"] == email {
			regID = reg["id"].(string)
		}
	}
	require.NotEmpty(t, regID, "pending registration not found for %s", email)

	w = s.request(t, "POST", "/api/v1/admin/registrations/"+regID+"/approve", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.request(t, "POST", "/api/v1/auth/ngo/login", map[string]interface{}{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return parseResponse(t, w).Data["token"].(string)
}

func TestVolunteerRegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("signup returns a token", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/volunteer/signup", map[string]interface{}{
			"email":    "aisha@example.com",
			"password": "password123",
			"name":     "Aisha Bekova",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/volunteer/signup", map[string]interface{}{
			"email":    "aisha@example.com",
			"password": "password123",
			"name":     "Aisha Again",
		}, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", parseResponse(t, w).Error.Code)
	})

	t.Run("login and me", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/volunteer/login", map[string]interface{}{
			"email":    "aisha@example.com",
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		token := parseResponse(t, w).Data["token"].(string)

		w = suite.request(t, "GET", "/api/v1/auth/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		user := parseResponse(t, w).Data["user"].(map[string]interface{})
		assert.Equal(t, "aisha@example.com", user["email"])
		assert.Equal(t, "volunteer", user["role"])
	})

	t.Run("wrong role login fails", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/donor/login", map[string]interface{}{
			"email":    "aisha@example.com",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestNgoVerificationWorkflow(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("ngo signup does not issue a token", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/ngo/signup", map[string]interface{}{
			"email":               "contact@greensteppe.kz",
			"password":            "password123",
			"name":                "Aigerim",
			"organization_name":   "Green Steppe",
			"registration_number": "KZ-NGO-001245",
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		assert.Empty(t, resp.Data["token"])
	})

	t.Run("login is blocked while pending", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/auth/ngo/login", map[string]interface{}{
			"email":    "contact@greensteppe.kz",
			"password": "password123",
		}, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("public verification status endpoint", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/auth/ngo-verification?email=contact@greensteppe.kz", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, true, resp.Data["exists"])
		assert.Equal(t, "pending", resp.Data["verified"])
	})

	t.Run("admin approves and ngo can log in", func(t *testing.T) {
		adminToken := suite.adminLogin(t)

		w := suite.request(t, "GET", "/api/v1/admin/registrations", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		regs := parseResponse(t, w).Data["registrations"].([]interface{})
		require.Len(t, regs, 1)
		regID := regs[0].(map[string]interface{})["id"].(string)

		w = suite.request(t, "POST", "/api/v1/admin/registrations/"+regID+"/approve", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.request(t, "POST", "/api/v1/auth/ngo/login", map[string]interface{}{
			"email":    "contact@greensteppe.kz",
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		user := parseResponse(t, w).Data["user"].(map[string]interface{})
		assert.Equal(t, "Green Steppe", user["name"])
	})

	t.Run("second approval is a conflict", func(t *testing.T) {
		adminToken := suite.adminLogin(t)

		w := suite.request(t, "GET", "/api/v1/admin/registrations?status=verified", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		regs := parseResponse(t, w).Data["registrations"].([]interface{})
		require.Len(t, regs, 1)
		regID := regs[0].(map[string]interface{})["id"].(string)

		w = suite.request(t, "POST", "/api/v1/admin/registrations/"+regID+"/approve", nil, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRejectedNgoLogin(t *testing.T) {
	suite := setupTestSuite(t)

	w := suite.request(t, "POST", "/api/v1/auth/ngo/signup", map[string]interface{}{
		"email":               "shady@example.com",
		"password":            "password123",
		"name":                "Somebody",
		"organization_name":   "Shady Org",
		"registration_number": "KZ-NGO-999999",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	adminToken := suite.adminLogin(t)

	w = suite.request(t, "GET", "/api/v1/admin/registrations", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	regs := parseResponse(t, w).Data["registrations"].([]interface{})
	require.Len(t, regs, 1)
	regID := regs[0].(map[string]interface{})["id"].(string)

	w = suite.request(t, "POST", "/api/v1/admin/registrations/"+regID+"/reject", map[string]interface{}{
		"reason": "registry number could not be confirmed",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.request(t, "POST", "/api/v1/auth/ngo/login", map[string]interface{}{
		"email":    "shady@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, parseResponse(t, w).Error.Message, "registry number could not be confirmed")
}

func TestProjectAndEngagementFlow(t *testing.T) {
	suite := setupTestSuite(t)

	ngoToken := suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")
	volToken := suite.signupVolunteer(t, "vol@example.com", "Aisha")

	var projectID string
	t.Run("ngo creates a project", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/projects", map[string]interface{}{
			"title":             "Tree Planting",
			"description":       "Plant 500 saplings",
			"category":          "environment",
			"volunteers_needed": 20,
		}, ngoToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		p := parseResponse(t, w).Data["project"].(map[string]interface{})
		projectID = p["id"].(string)
		assert.Equal(t, "active", p["status"])
	})

	t.Run("volunteer cannot create projects", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/projects", map[string]interface{}{
			"title": "Nope",
		}, volToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	var engagementID string
	t.Run("volunteer joins the project", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/projects/"+projectID+"/join", nil, volToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		e := parseResponse(t, w).Data["engagement"].(map[string]interface{})
		engagementID = e["id"].(string)
	})

	t.Run("idempotent join returns the same engagement", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/projects/"+projectID+"/join?idempotent=true", nil, volToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		e := parseResponse(t, w).Data["engagement"].(map[string]interface{})
		assert.Equal(t, engagementID, e["id"])
	})

	t.Run("joined volunteer shows up on the project", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/projects/"+projectID, nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code)
		p := parseResponse(t, w).Data["project"].(map[string]interface{})
		joined := p["volunteers_joined"].([]interface{})
		require.Len(t, joined, 1)
		assert.Equal(t, "Aisha", joined[0].(map[string]interface{})["name"])
	})

	t.Run("volunteer logs hours", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/engagements/"+engagementID+"/hours", map[string]interface{}{
			"hours": 4.5,
		}, volToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		e := parseResponse(t, w).Data["engagement"].(map[string]interface{})
		assert.Equal(t, 4.5, e["hours"])
	})

	t.Run("completing the engagement sets full progress", func(t *testing.T) {
		w := suite.request(t, "PATCH", "/api/v1/engagements/"+engagementID, map[string]interface{}{
			"status": "completed",
		}, volToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		e := parseResponse(t, w).Data["engagement"].(map[string]interface{})
		assert.Equal(t, float64(100), e["progress"])
	})

	t.Run("ngo notification about the join", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/notifications", nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code)
		list := parseResponse(t, w).Data["notifications"].([]interface{})
		assert.NotEmpty(t, list)
	})
}

func TestDonationFlow(t *testing.T) {
	suite := setupTestSuite(t)

	ngoToken := suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")
	donorToken := suite.signupDonor(t, "erik@example.com", "Erik")

	var campaignID string
	t.Run("ngo creates a campaign", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/campaigns", map[string]interface{}{
			"title":       "Saplings",
			"description": "Buy saplings and tools",
			"goal":        1000.0,
		}, ngoToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		campaignID = parseResponse(t, w).Data["campaign"].(map[string]interface{})["id"].(string)
	})

	t.Run("donor donates and raised grows", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/campaigns/"+campaignID+"/donate", map[string]interface{}{
			"amount":         400.0,
			"payment_method": "card",
		}, donorToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = suite.request(t, "GET", "/api/v1/campaigns/"+campaignID, nil, donorToken)
		require.Equal(t, http.StatusOK, w.Code)
		c := parseResponse(t, w).Data["campaign"].(map[string]interface{})
		assert.Equal(t, 400.0, c["raised"])
	})

	t.Run("ngo cannot donate", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/campaigns/"+campaignID+"/donate", map[string]interface{}{
			"amount": 100.0,
		}, ngoToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("reaching the goal completes the campaign", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/campaigns/"+campaignID+"/donate", map[string]interface{}{
			"amount": 600.0,
		}, donorToken)
		require.Equal(t, http.StatusCreated, w.Code)

		w = suite.request(t, "GET", "/api/v1/campaigns/"+campaignID, nil, donorToken)
		require.Equal(t, http.StatusOK, w.Code)
		c := parseResponse(t, w).Data["campaign"].(map[string]interface{})
		assert.Equal(t, "completed", c["status"])
		assert.Equal(t, 1000.0, c["raised"])
	})

	t.Run("ngo publishes an impact report", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/donations", nil, donorToken)
		require.Equal(t, http.StatusOK, w.Code)
		donations := parseResponse(t, w).Data["donations"].([]interface{})
		require.Len(t, donations, 2)

		w = suite.request(t, "GET", "/api/v1/impact-reports", nil, donorToken)
		require.Equal(t, http.StatusOK, w.Code)
		reports := parseResponse(t, w).Data["impact_reports"].([]interface{})
		require.Len(t, reports, 2)
		reportID := reports[0].(map[string]interface{})["id"].(string)

		w = suite.request(t, "POST", "/api/v1/impact-reports/"+reportID+"/publish", map[string]interface{}{
			"impact": "Bought 200 saplings",
		}, ngoToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		rep := parseResponse(t, w).Data["impact_report"].(map[string]interface{})
		assert.Equal(t, "published", rep["status"])
		assert.Equal(t, "Bought 200 saplings", rep["impact"])
	})
}

func TestEventRegistrationFlow(t *testing.T) {
	suite := setupTestSuite(t)

	ngoToken := suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")
	volToken := suite.signupVolunteer(t, "vol@example.com", "Aisha")

	var eventID string
	t.Run("ngo creates an event", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/events", map[string]interface{}{
			"title":            "River Cleanup",
			"date":             "2027-05-01",
			"max_participants": 1,
		}, ngoToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		eventID = parseResponse(t, w).Data["event"].(map[string]interface{})["id"].(string)
	})

	t.Run("volunteer registers and sees the event in their list", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/events/"+eventID+"/register", nil, volToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = suite.request(t, "GET", "/api/v1/volunteer-events", nil, volToken)
		require.Equal(t, http.StatusOK, w.Code)
		list := parseResponse(t, w).Data["volunteer_events"].([]interface{})
		assert.Len(t, list, 1)
	})

	t.Run("capacity limit is enforced", func(t *testing.T) {
		otherToken := suite.signupVolunteer(t, "other@example.com", "Dana")
		w := suite.request(t, "POST", "/api/v1/events/"+eventID+"/register", nil, otherToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestResourceSharingBetweenNgos(t *testing.T) {
	suite := setupTestSuite(t)

	ownerToken := suite.signupVerifiedNgo(t, "owner@example.com", "Green Steppe", "KZ-NGO-000001")
	requesterToken := suite.signupVerifiedNgo(t, "requester@example.com", "Nur Hands", "KZ-NGO-000002")
	volToken := suite.signupVolunteer(t, "vol@example.com", "Aisha")

	var resourceID string
	t.Run("ngo shares a resource", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/resources", map[string]interface{}{
			"name": "Projector",
			"type": "equipment",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resourceID = parseResponse(t, w).Data["resource"].(map[string]interface{})["id"].(string)
	})

	t.Run("volunteers cannot see the exchange", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/resources", nil, volToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("another ngo requests and the owner releases", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/resources/"+resourceID+"/request", nil, requesterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := parseResponse(t, w).Data["resource"].(map[string]interface{})
		assert.Equal(t, "Requested", res["availability"])

		w = suite.request(t, "POST", "/api/v1/resources/"+resourceID+"/release", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		res = parseResponse(t, w).Data["resource"].(map[string]interface{})
		assert.Equal(t, "Available", res["availability"])
	})

	t.Run("owner cannot request their own resource", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/resources/"+resourceID+"/request", nil, ownerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestMessagingFlow(t *testing.T) {
	suite := setupTestSuite(t)

	ngoToken := suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")
	volToken := suite.signupVolunteer(t, "vol@example.com", "Aisha")

	w := suite.request(t, "GET", "/api/v1/auth/me", nil, ngoToken)
	require.Equal(t, http.StatusOK, w.Code)
	ngoID := parseResponse(t, w).Data["user"].(map[string]interface{})["id"].(string)

	var messageID string
	t.Run("volunteer messages the ngo", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/messages", map[string]interface{}{
			"recipient_id": ngoID,
			"subject":      "Question",
			"body":         "When does planting start?",
		}, volToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		messageID = parseResponse(t, w).Data["message"].(map[string]interface{})["id"].(string)
	})

	t.Run("recipient sees it unread and marks it read", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/messages/unread-count", nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), parseResponse(t, w).Data["unread_count"])

		w = suite.request(t, "POST", "/api/v1/messages/"+messageID+"/read", nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.request(t, "GET", "/api/v1/messages/unread-count", nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), parseResponse(t, w).Data["unread_count"])
	})

	t.Run("sender cannot mark it read", func(t *testing.T) {
		w := suite.request(t, "POST", "/api/v1/messages/"+messageID+"/read", nil, volToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminStatisticsAndUsers(t *testing.T) {
	suite := setupTestSuite(t)

	suite.signupVolunteer(t, "vol@example.com", "Aisha")
	suite.signupDonor(t, "donor@example.com", "Erik")
	suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")

	adminToken := suite.adminLogin(t)

	t.Run("statistics reflect the data", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/admin/statistics", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		stats := parseResponse(t, w).Data
		assert.Equal(t, float64(3), stats["total_users"])
		assert.Equal(t, float64(1), stats["total_volunteers"])
		assert.Equal(t, float64(1), stats["total_donors"])
		assert.Equal(t, float64(1), stats["total_ngos"])
	})

	t.Run("user listing filters by role", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/admin/users?role=volunteer", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		users := parseResponse(t, w).Data["users"].([]interface{})
		require.Len(t, users, 1)
		assert.Equal(t, "Aisha", users[0].(map[string]interface{})["name"])
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		volToken := suite.signupVolunteer(t, "vol2@example.com", "Dana")
		w := suite.request(t, "GET", "/api/v1/admin/statistics", nil, volToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAnalyticsEndpoint(t *testing.T) {
	suite := setupTestSuite(t)

	ngoToken := suite.signupVerifiedNgo(t, "ngo@example.com", "Green Steppe", "KZ-NGO-000001")
	volToken := suite.signupVolunteer(t, "vol@example.com", "Aisha")

	w := suite.request(t, "POST", "/api/v1/projects", map[string]interface{}{
		"title": "Tree Planting",
	}, ngoToken)
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := parseResponse(t, w).Data["project"].(map[string]interface{})["id"].(string)

	w = suite.request(t, "POST", "/api/v1/projects/"+projectID+"/join", nil, volToken)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("ngo analytics", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/analytics", nil, ngoToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := parseResponse(t, w).Data
		assert.Equal(t, float64(1), data["total_projects"])
		assert.Equal(t, float64(1), data["total_volunteers"])
	})

	t.Run("volunteer analytics", func(t *testing.T) {
		w := suite.request(t, "GET", "/api/v1/analytics", nil, volToken)
		require.Equal(t, http.StatusOK, w.Code)
		data := parseResponse(t, w).Data
		assert.Equal(t, float64(1), data["projects_joined"])
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
