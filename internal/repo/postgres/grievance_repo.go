package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/usecase"
)

type GrievanceRepo struct {
	DB *gorm.DB
}

func NewGrievanceRepo(db *gorm.DB) *GrievanceRepo {
	return &GrievanceRepo{DB: db}
}

func (r *GrievanceRepo) Create(ctx context.Context, grievance portal.Grievance) (portal.Grievance, error) {
	model := GrievanceModel{
		ID:          uuid.NewString(),
		SubmitterID: grievance.SubmitterID,
		Subject:     grievance.Subject,
		Description: grievance.Description,
		Category:    grievance.Category,
		Status:      string(grievance.Status),
	}
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return portal.Grievance{}, err
	}
	return fromGrievanceModel(model), nil
}

func (r *GrievanceRepo) FindByID(ctx context.Context, id string) (portal.Grievance, error) {
	var model GrievanceModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.Grievance{}, portal.ErrNotFound
		}
		return portal.Grievance{}, err
	}
	return fromGrievanceModel(model), nil
}

func (r *GrievanceRepo) List(ctx context.Context, filter usecase.GrievanceListFilter) ([]portal.Grievance, int64, error) {
	query := r.DB.WithContext(ctx).Model(&GrievanceModel{})
	if filter.SubmitterID != "" {
		query = query.Where("submitter_id = ?", filter.SubmitterID)
	}
	if filter.AssigneeID != "" {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []GrievanceModel
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	grievances := make([]portal.Grievance, 0, len(models))
	for _, model := range models {
		grievances = append(grievances, fromGrievanceModel(model))
	}
	return grievances, total, nil
}

func (r *GrievanceRepo) Update(ctx context.Context, grievance portal.Grievance) (portal.Grievance, error) {
	result := r.DB.WithContext(ctx).Model(&GrievanceModel{}).Where("id = ?", grievance.ID).Updates(map[string]any{
		"status":      string(grievance.Status),
		"response":    grievance.Response,
		"assignee_id": grievance.AssigneeID,
	})
	if result.Error != nil {
		return portal.Grievance{}, result.Error
	}
	if result.RowsAffected == 0 {
		return portal.Grievance{}, portal.ErrNotFound
	}
	return r.FindByID(ctx, grievance.ID)
}

func fromGrievanceModel(model GrievanceModel) portal.Grievance {
	return portal.Grievance{
		ID:          model.ID,
		SubmitterID: model.SubmitterID,
		Subject:     model.Subject,
		Description: model.Description,
		Category:    model.Category,
		Status:      portal.GrievanceStatus(model.Status),
		Response:    model.Response,
		AssigneeID:  model.AssigneeID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
