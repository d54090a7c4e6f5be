package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/usecase"
)

type ApplicationRepo struct {
	DB *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db}
}

func (r *ApplicationRepo) Create(ctx context.Context, application portal.Application) (portal.Application, error) {
	model := ApplicationModel{
		ID:          uuid.NewString(),
		SchemeID:    application.SchemeID,
		ApplicantID: application.ApplicantID,
		Details:     application.Details,
		Status:      string(application.Status),
	}
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return portal.Application{}, err
	}
	return fromApplicationModel(model), nil
}

func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (portal.Application, error) {
	var model ApplicationModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.Application{}, portal.ErrNotFound
		}
		return portal.Application{}, err
	}
	return fromApplicationModel(model), nil
}

func (r *ApplicationRepo) List(ctx context.Context, filter usecase.ApplicationListFilter) ([]portal.Application, int64, error) {
	query := r.DB.WithContext(ctx).Model(&ApplicationModel{})
	if filter.ApplicantID != "" {
		query = query.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.SchemeID != "" {
		query = query.Where("scheme_id = ?", filter.SchemeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []ApplicationModel
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	applications := make([]portal.Application, 0, len(models))
	for _, model := range models {
		applications = append(applications, fromApplicationModel(model))
	}
	return applications, total, nil
}

func (r *ApplicationRepo) Update(ctx context.Context, application portal.Application) (portal.Application, error) {
	result := r.DB.WithContext(ctx).Model(&ApplicationModel{}).Where("id = ?", application.ID).Updates(map[string]any{
		"status":      string(application.Status),
		"remarks":     application.Remarks,
		"reviewed_by": application.ReviewedBy,
	})
	if result.Error != nil {
		return portal.Application{}, result.Error
	}
	if result.RowsAffected == 0 {
		return portal.Application{}, portal.ErrNotFound
	}
	return r.FindByID(ctx, application.ID)
}

func (r *ApplicationRepo) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Delete(&ApplicationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return portal.ErrNotFound
	}
	return nil
}

func fromApplicationModel(model ApplicationModel) portal.Application {
	return portal.Application{
		ID:          model.ID,
		SchemeID:    model.SchemeID,
		ApplicantID: model.ApplicantID,
		Details:     model.Details,
		Remarks:     model.Remarks,
		Status:      portal.ApplicationStatus(model.Status),
		ReviewedBy:  model.ReviewedBy,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
