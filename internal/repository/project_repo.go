package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type ProjectFilters struct {
	Query    string
	Category string
	Location string
	Urgency  string
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) DB() *gorm.DB { return r.db }

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Patch merges the given fields into an existing row. A missing id is
// reported as gorm.ErrRecordNotFound, not swallowed.
func (r *ProjectRepository) Patch(ctx context.Context, id string, fields map[string]any) (*domain.Project, error) {
	res := r.db.WithContext(ctx).Model(&domain.Project{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *ProjectRepository) ListByNgo(ctx context.Context, ngoID string) ([]domain.Project, error) {
	var out []domain.Project
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ProjectRepository) ListActive(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.ProjectActive).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ProjectRepository) Search(ctx context.Context, f ProjectFilters) ([]domain.Project, error) {
	q := r.db.WithContext(ctx).Model(&domain.Project{}).Where("status = ?", domain.ProjectActive)

	if s := strings.TrimSpace(f.Query); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ngo_name) LIKE ? OR LOWER(category) LIKE ?",
			sv, sv, sv, sv,
		)
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Urgency != "" {
		q = q.Where("urgency = ?", f.Urgency)
	}

	var out []domain.Project
	err := q.Order("created_at ASC").Find(&out).Error
	return out, err
}
