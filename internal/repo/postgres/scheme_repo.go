package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/usecase"
)

type SchemeRepo struct {
	DB *gorm.DB
}

func NewSchemeRepo(db *gorm.DB) *SchemeRepo {
	return &SchemeRepo{DB: db}
}

func (r *SchemeRepo) Create(ctx context.Context, scheme portal.Scheme) (portal.Scheme, error) {
	model := toSchemeModel(scheme)
	model.ID = uuid.NewString()
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return portal.Scheme{}, err
	}
	return fromSchemeModel(model), nil
}

func (r *SchemeRepo) FindByID(ctx context.Context, id string) (portal.Scheme, error) {
	var model SchemeModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.Scheme{}, portal.ErrNotFound
		}
		return portal.Scheme{}, err
	}
	return fromSchemeModel(model), nil
}

func (r *SchemeRepo) List(ctx context.Context, filter usecase.SchemeListFilter) ([]portal.Scheme, int64, error) {
	query := r.DB.WithContext(ctx).Model(&SchemeModel{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []SchemeModel
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	schemes := make([]portal.Scheme, 0, len(models))
	for _, model := range models {
		schemes = append(schemes, fromSchemeModel(model))
	}
	return schemes, total, nil
}

func (r *SchemeRepo) Update(ctx context.Context, scheme portal.Scheme) (portal.Scheme, error) {
	model := toSchemeModel(scheme)
	result := r.DB.WithContext(ctx).Model(&SchemeModel{}).Where("id = ?", scheme.ID).Updates(map[string]any{
		"title":       model.Title,
		"description": model.Description,
		"category":    model.Category,
		"eligibility": model.Eligibility,
		"benefits":    model.Benefits,
		"documents":   model.Documents,
		"active":      model.Active,
	})
	if result.Error != nil {
		return portal.Scheme{}, result.Error
	}
	if result.RowsAffected == 0 {
		return portal.Scheme{}, portal.ErrNotFound
	}
	return r.FindByID(ctx, scheme.ID)
}

func toSchemeModel(scheme portal.Scheme) SchemeModel {
	return SchemeModel{
		ID:          scheme.ID,
		Title:       scheme.Title,
		Description: scheme.Description,
		Category:    scheme.Category,
		Eligibility: scheme.Eligibility,
		Benefits:    scheme.Benefits,
		Documents:   scheme.Documents,
		Active:      scheme.Active,
		CreatedBy:   scheme.CreatedBy,
	}
}

func fromSchemeModel(model SchemeModel) portal.Scheme {
	return portal.Scheme{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Category:    model.Category,
		Eligibility: model.Eligibility,
		Benefits:    model.Benefits,
		Documents:   model.Documents,
		Active:      model.Active,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
