package database

import (
	"context"
	"errors"
	"strings"

	"violation-tracker/internal/models"

	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=database

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ViolationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Violation, error)
	// FindByVehicleSubstring returns every violation when search is empty.
	FindByVehicleSubstring(ctx context.Context, search string) ([]models.Violation, error)
	Insert(ctx context.Context, v *models.Violation) error
	Update(ctx context.Context, v *models.Violation) error
	// WithTx runs fn against a repository bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(repo ViolationRepository) error) error
}

type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	Latest(ctx context.Context, limit int) ([]models.AuditLog, error)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		// sqlite builds without the error translator still say it plainly
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return ErrDuplicate
	default:
		return err
	}
}
