package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grampanchayat/internal/domain/portal"
	"grampanchayat/internal/usecase"
)

type UserRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(ctx context.Context, user portal.User) (portal.User, error) {
	model := toUserModel(user)
	model.ID = uuid.NewString()
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return portal.User{}, portal.ErrConflict
		}
		return portal.User{}, err
	}
	return fromUserModel(model), nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (portal.User, error) {
	var model UserModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.User{}, portal.ErrNotFound
		}
		return portal.User{}, err
	}
	return fromUserModel(model), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (portal.User, error) {
	var model UserModel
	if err := r.DB.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return portal.User{}, portal.ErrNotFound
		}
		return portal.User{}, err
	}
	return fromUserModel(model), nil
}

func (r *UserRepo) List(ctx context.Context, filter usecase.UserListFilter) ([]portal.User, int64, error) {
	query := r.DB.WithContext(ctx).Model(&UserModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []UserModel
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&models).Error; err != nil {
		return nil, 0, err
	}
	users := make([]portal.User, 0, len(models))
	for _, model := range models {
		users = append(users, fromUserModel(model))
	}
	return users, total, nil
}

func (r *UserRepo) Update(ctx context.Context, user portal.User) (portal.User, error) {
	model := toUserModel(user)
	result := r.DB.WithContext(ctx).Model(&UserModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":          model.Name,
		"phone":         model.Phone,
		"address":       model.Address,
		"ward_number":   model.WardNumber,
		"password_hash": model.PasswordHash,
		"role":          model.Role,
		"active":        model.Active,
		"verified":      model.Verified,
	})
	if result.Error != nil {
		return portal.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return portal.User{}, portal.ErrNotFound
	}
	return r.FindByID(ctx, user.ID)
}

func toUserModel(user portal.User) UserModel {
	return UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Address:      user.Address,
		WardNumber:   user.WardNumber,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Active:       user.Active,
		Verified:     user.Verified,
	}
}

func fromUserModel(model UserModel) portal.User {
	return portal.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		Phone:        model.Phone,
		Address:      model.Address,
		WardNumber:   model.WardNumber,
		PasswordHash: model.PasswordHash,
		Role:         portal.Role(model.Role),
		Active:       model.Active,
		Verified:     model.Verified,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
