package admin

import (
	"context"
	"strings"
	"time"

	"impactnet/internal/domain"
)

type Service struct {
	registrations RegistrationRepository
	users         UserRepository
	notifs        NotificationSender
}

func NewService(registrations RegistrationRepository, users UserRepository, notifs NotificationSender) *Service {
	return &Service{
		registrations: registrations,
		users:         users,
		notifs:        notifs,
	}
}

// ListRegistrations returns NGO registrations with the given status,
// newest first.
func (s *Service) ListRegistrations(ctx context.Context, status domain.VerificationStatus, page, limit int) ([]domain.NgoRegistration, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	regs, total, err := s.registrations.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return regs, int(total), nil
}

// ApproveRegistration moves a pending registration to verified and
// unblocks the NGO's login. Deciding twice is an error.
func (s *Service) ApproveRegistration(ctx context.Context, registrationID, adminID string) (*domain.NgoRegistration, error) {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.Status != domain.VerificationPending {
		return nil, ErrAlreadyDecided
	}

	now := time.Now()
	reg.Status = domain.VerificationVerified
	reg.VerifiedAt = &now
	reg.VerifiedBy = adminID
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyVerificationApproved(ctx, reg.UserID, reg.OrganizationName)
	}
	return reg, nil
}

// RejectRegistration stores the rejection with its reason. The NGO sees
// the reason the next time it tries to sign in.
func (s *Service) RejectRegistration(ctx context.Context, registrationID, adminID, reason string) (*domain.NgoRegistration, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if reg.Status != domain.VerificationPending {
		return nil, ErrAlreadyDecided
	}

	now := time.Now()
	reg.Status = domain.VerificationRejected
	reg.RejectedAt = &now
	reg.RejectedBy = adminID
	reg.RejectionReason = reason
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyVerificationRejected(ctx, reg.UserID, reg.OrganizationName, reason)
	}
	return reg, nil
}

// ListUsers supports simple filters + pagination.
func (s *Service) ListUsers(ctx context.Context, filter UserListFilter, page, limit int) ([]domain.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := s.users.DB().WithContext(ctx).Table("users")

	if strings.TrimSpace(filter.Role) != "" {
		q = q.Where("role = ?", strings.TrimSpace(filter.Role))
	}
	if strings.TrimSpace(filter.Query) != "" {
		sv := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", sv, sv)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, int(total), nil
}

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	db := s.users.DB().WithContext(ctx)

	countRole := func(role domain.UserRole) (int64, error) {
		var n int64
		err := db.Table("users").Where("role = ?", role).Count(&n).Error
		return n, err
	}

	var totalUsers int64
	if err := db.Table("users").Count(&totalUsers).Error; err != nil {
		return nil, err
	}
	volunteers, err := countRole(domain.RoleVolunteer)
	if err != nil {
		return nil, err
	}
	donors, err := countRole(domain.RoleDonor)
	if err != nil {
		return nil, err
	}
	ngos, err := countRole(domain.RoleNgo)
	if err != nil {
		return nil, err
	}

	var pending int64
	if err := db.Table("ngo_registrations").
		Where("status = ?", domain.VerificationPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}

	var projects, campaigns, events, donations int64
	if err := db.Table("ngo_projects").Count(&projects).Error; err != nil {
		return nil, err
	}
	if err := db.Table("ngo_fundraisers").Count(&campaigns).Error; err != nil {
		return nil, err
	}
	if err := db.Table("ngo_events").Count(&events).Error; err != nil {
		return nil, err
	}
	if err := db.Table("donor_donations").Count(&donations).Error; err != nil {
		return nil, err
	}

	var donated *float64
	if err := db.Table("donor_donations").
		Select("SUM(amount)").
		Scan(&donated).Error; err != nil {
		return nil, err
	}
	totalDonated := 0.0
	if donated != nil {
		totalDonated = *donated
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todaySignups int64
	if err := db.Table("users").
		Where("created_at >= ? AND created_at < ?", start, start.Add(24*time.Hour)).
		Count(&todaySignups).Error; err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		TotalUsers:           int(totalUsers),
		TotalVolunteers:      int(volunteers),
		TotalDonors:          int(donors),
		TotalNgos:            int(ngos),
		PendingRegistrations: int(pending),
		TotalProjects:        int(projects),
		TotalCampaigns:       int(campaigns),
		TotalEvents:          int(events),
		TotalDonations:       int(donations),
		TotalDonated:         totalDonated,
		TodaySignups:         int(todaySignups),
	}, nil
}
