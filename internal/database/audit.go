package database

import (
	"context"

	"violation-tracker/internal/models"

	"gorm.io/gorm"
)

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Record(ctx context.Context, entry *models.AuditLog) error {
	return mapError(r.db.WithContext(ctx).Create(entry).Error)
}

// Latest returns the newest entries first, with the acting officer preloaded.
func (r *auditRepo) Latest(ctx context.Context, limit int) ([]models.AuditLog, error) {
	logs := []models.AuditLog{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, mapError(err)
	}
	return logs, nil
}
