package database

import (
	"context"
	"strings"

	"violation-tracker/internal/models"

	"gorm.io/gorm"
)

type violationRepo struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepo{db: db}
}

func (r *violationRepo) GetByID(ctx context.Context, id uint) (*models.Violation, error) {
	var v models.Violation
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &v, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *violationRepo) FindByVehicleSubstring(ctx context.Context, search string) ([]models.Violation, error) {
	q := r.db.WithContext(ctx).Order("id asc")
	if search != "" {
		q = q.Where(`vehicle_number LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(search)+"%")
	}

	violations := []models.Violation{}
	if err := q.Find(&violations).Error; err != nil {
		return nil, mapError(err)
	}
	return violations, nil
}

func (r *violationRepo) Insert(ctx context.Context, v *models.Violation) error {
	if v.Status == "" {
		v.Status = models.StatusUnpaid
	}
	return mapError(r.db.WithContext(ctx).Create(v).Error)
}

func (r *violationRepo) Update(ctx context.Context, v *models.Violation) error {
	res := r.db.WithContext(ctx).
		Model(v).
		Select("*").
		Omit("id", "created_at").
		Updates(v)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *violationRepo) WithTx(ctx context.Context, fn func(repo ViolationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&violationRepo{db: tx})
	})
}
