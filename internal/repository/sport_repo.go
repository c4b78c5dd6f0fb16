package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shivamraghav1010/Player/internal/model"
	"gorm.io/gorm"
)

type SportRepository interface {
	Create(ctx context.Context, sport *model.Sport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sport, error)
	FindByName(ctx context.Context, name string) (*model.Sport, error)
	FindActive(ctx context.Context) ([]model.Sport, error)
	FindAll(ctx context.Context) ([]model.Sport, error)
	Update(ctx context.Context, sport *model.Sport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sportRepository struct {
	db *gorm.DB
}

func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) Create(ctx context.Context, sport *model.Sport) error {
	return r.db.WithContext(ctx).Create(sport).Error
}

func (r *sportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sport, error) {
	var sport model.Sport
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sport).Error; err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) FindByName(ctx context.Context, name string) (*model.Sport, error) {
	var sport model.Sport
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&sport).Error; err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) FindActive(ctx context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order(`"order" asc, name asc`).
		Find(&sports).Error
	return sports, err
}

func (r *sportRepository) FindAll(ctx context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	err := r.db.WithContext(ctx).
		Order(`"order" asc, name asc`).
		Find(&sports).Error
	return sports, err
}

func (r *sportRepository) Update(ctx context.Context, sport *model.Sport) error {
	return r.db.WithContext(ctx).Save(sport).Error
}

func (r *sportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Sport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
