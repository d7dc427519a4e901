package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"impactnet/internal/config"
	"impactnet/internal/domain"
	jwtsvc "impactnet/internal/pkg/jwt"
	"impactnet/internal/repository"
)

// AdminUserID is the synthetic identity of the platform administrator.
// Admin credentials live in config, not in the users table.
const AdminUserID = "admin"

// Notifier is the slice of the notification service the auth flow needs.
type Notifier interface {
	NotifyNewNgoRegistration(ctx context.Context, organizationName string) error
}

type Service struct {
	db            *gorm.DB
	users         *repository.UserRepository
	registrations *repository.RegistrationRepository
	jwt           *jwtsvc.Service
	cfg           *config.Config
	notifier      Notifier
}

func NewService(
	db *gorm.DB,
	users *repository.UserRepository,
	registrations *repository.RegistrationRepository,
	jwt *jwtsvc.Service,
	cfg *config.Config,
	notifier Notifier,
) *Service {
	return &Service{
		db:            db,
		users:         users,
		registrations: registrations,
		jwt:           jwt,
		cfg:           cfg,
		notifier:      notifier,
	}
}

type AuthResult struct {
	Token string     `json:"token"`
	User  UserPublic `json:"user"`
}

// Signup creates an account for the given role. NGO signups additionally
// create a pending registration record and alert the admin; the account
// cannot sign in until an admin approves it.
func (s *Service) Signup(ctx context.Context, role domain.UserRole, req *SignupRequest) (*AuthResult, error) {
	if !domain.ValidSignupRole(string(role)) {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
	}

	if role == domain.RoleNgo {
		if err := s.signupNgo(ctx, user, req); err != nil {
			return nil, err
		}
		// No token: the NGO must wait for verification before logging in.
		return &AuthResult{User: publicUser(user)}, nil
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: publicUser(user)}, nil
}

func (s *Service) signupNgo(ctx context.Context, user *domain.User, req *SignupRequest) error {
	orgName := strings.TrimSpace(req.OrganizationName)
	if orgName == "" {
		orgName = user.Name
	}
	user.Name = orgName

	reg := &domain.NgoRegistration{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		OrganizationName:   orgName,
		Email:              user.Email,
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		OrganizationType:   req.OrganizationType,
		FoundedYear:        req.FoundedYear,
		City:               req.City,
		Country:            req.Country,
		ContactPerson:      req.ContactPerson,
		ContactPhone:       req.ContactPhone,
		MissionStatement:   req.MissionStatement,
		FocusAreas:         req.FocusAreas,
		Status:             domain.VerificationPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(reg).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "registration_number") {
				return ErrRegistrationNumberExists
			}
			return ErrEmailAlreadyExists
		}
		return err
	}

	if s.notifier != nil {
		if nerr := s.notifier.NotifyNewNgoRegistration(ctx, orgName); nerr != nil {
			log.Printf("auth: failed to notify admin about registration of %s: %v", orgName, nerr)
		}
	}
	return nil
}

// Login authenticates a user of the given role. NGO accounts are gated on
// their verification status before the password is even checked, so a
// pending or rejected NGO gets the status error rather than a generic
// credentials failure.
func (s *Service) Login(ctx context.Context, role domain.UserRole, req *LoginRequest) (*AuthResult, error) {
	if !domain.ValidSignupRole(string(role)) {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != role {
		return nil, ErrInvalidCredentials
	}

	if role == domain.RoleNgo {
		if err := s.checkNgoGate(ctx, email); err != nil {
			return nil, err
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: publicUser(user)}, nil
}

func (s *Service) checkNgoGate(ctx context.Context, email string) error {
	reg, err := s.registrations.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Account exists without a registration row; treat as pending.
			return ErrVerificationPending
		}
		return err
	}
	switch reg.Status {
	case domain.VerificationVerified:
		return nil
	case domain.VerificationRejected:
		return &VerificationRejectedError{Reason: reg.RejectionReason}
	default:
		return ErrVerificationPending
	}
}

// AdminLogin checks the configured admin credentials and issues a token
// with the admin role.
func (s *Service) AdminLogin(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != strings.ToLower(s.cfg.AdminEmail) || req.Password != s.cfg.AdminPassword {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(AdminUserID, string(domain.RoleAdmin), "Administrator")
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token: token,
		User: UserPublic{
			ID:    AdminUserID,
			Role:  string(domain.RoleAdmin),
			Name:  "Administrator",
			Email: s.cfg.AdminEmail,
		},
	}, nil
}

// CheckVerification reports the verification status for an NGO email
// without requiring authentication, so a waiting NGO can poll it.
func (s *Service) CheckVerification(ctx context.Context, email string) (*VerificationStatusResponse, error) {
	reg, err := s.registrations.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VerificationStatusResponse{Exists: false}, nil
		}
		return nil, err
	}
	return &VerificationStatusResponse{
		Exists:          true,
		Verified:        string(reg.Status),
		RejectionReason: reg.RejectionReason,
	}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func publicUser(u *domain.User) UserPublic {
	return UserPublic{ID: u.ID, Role: string(u.Role), Name: u.Name, Email: u.Email}
}
