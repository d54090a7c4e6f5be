package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/usecase"
)

type AnnouncementRepo struct {
	DB *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) *AnnouncementRepo {
	return &AnnouncementRepo{DB: db}
}

func (r *AnnouncementRepo) Create(ctx context.Context, announcement portal.Announcement) (portal.Announcement, error) {
	model := AnnouncementModel{
		ID:        uuid.NewString(),
		Title:     announcement.Title,
		Body:      announcement.Body,
		Category:  announcement.Category,
		CreatedBy: announcement.CreatedBy,
	}
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return portal.Announcement{}, err
	}
	return fromAnnouncementModel(model), nil
}

func (r *AnnouncementRepo) FindByID(ctx context.Context, id string) (portal.Announcement, error) {
	var model AnnouncementModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.Announcement{}, portal.ErrNotFound
		}
		return portal.Announcement{}, err
	}
	return fromAnnouncementModel(model), nil
}

func (r *AnnouncementRepo) List(ctx context.Context, filter usecase.AnnouncementListFilter) ([]portal.Announcement, int64, error) {
	query := r.DB.WithContext(ctx).Model(&AnnouncementModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []AnnouncementModel
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	announcements := make([]portal.Announcement, 0, len(models))
	for _, model := range models {
		announcements = append(announcements, fromAnnouncementModel(model))
	}
	return announcements, total, nil
}

func (r *AnnouncementRepo) Update(ctx context.Context, announcement portal.Announcement) (portal.Announcement, error) {
	result := r.DB.WithContext(ctx).Model(&AnnouncementModel{}).Where("id = ?", announcement.ID).Updates(map[string]any{
		"title":    announcement.Title,
		"body":     announcement.Body,
		"category": announcement.Category,
	})
	if result.Error != nil {
		return portal.Announcement{}, result.Error
	}
	if result.RowsAffected == 0 {
		return portal.Announcement{}, portal.ErrNotFound
	}
	return r.FindByID(ctx, announcement.ID)
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Delete(&AnnouncementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return portal.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the counter atomically in the database; concurrent
// reads never lose a view.
func (r *AnnouncementRepo) IncrementViews(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Model(&AnnouncementModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return portal.ErrNotFound
	}
	return nil
}

func fromAnnouncementModel(model AnnouncementModel) portal.Announcement {
	return portal.Announcement{
		ID:        model.ID,
		Title:     model.Title,
		Body:      model.Body,
		Category:  model.Category,
		Views:     model.Views,
		CreatedBy: model.CreatedBy,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
