package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"violation-tracker/internal/database"
	"violation-tracker/internal/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=violations.go -destination=mock_services.go -package=services

// QRIssuer writes the status-check image for a violation.
type QRIssuer interface {
	Issue(violationID uint) (string, error)
	Remove(rel string) error
}

// AddViolationInput carries the raw add-violation form values.
type AddViolationInput struct {
	VehicleNumber string
	ViolationType string
	Location      string
	Date          string
	FineAmount    string
}

func (in AddViolationInput) parse() (*models.Violation, error) {
	v := &models.Violation{
		VehicleNumber: strings.TrimSpace(in.VehicleNumber),
		ViolationType: strings.TrimSpace(in.ViolationType),
		Location:      strings.TrimSpace(in.Location),
		Status:        models.StatusUnpaid,
	}

	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"vehicle_number", v.VehicleNumber, 20},
		{"violation_type", v.ViolationType, 100},
		{"location", v.Location, 100},
	} {
		if f.value == "" {
			return nil, invalid(f.name, f.name+" is required")
		}
		if utf8.RuneCountInString(f.value) > f.max {
			return nil, invalid(f.name, fmt.Sprintf("%s must be at most %d characters", f.name, f.max))
		}
	}

	date, err := time.Parse(models.DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, invalid("date", "date must be in YYYY-MM-DD format")
	}
	v.Date = date

	fine, err := strconv.ParseFloat(strings.TrimSpace(in.FineAmount), 64)
	if err != nil || math.IsNaN(fine) || math.IsInf(fine, 0) {
		return nil, invalid("fine_amount", "fine amount must be a number")
	}
	if fine < 0 {
		return nil, invalid("fine_amount", "fine amount must not be negative")
	}
	v.FineAmount = fine

	return v, nil
}

// ViolationService implements the officer and public violation operations.
type ViolationService struct {
	violations database.ViolationRepository
	audit      database.AuditRepository
	qr         QRIssuer
	log        *zap.SugaredLogger
}

func NewViolationService(
	violations database.ViolationRepository,
	audit database.AuditRepository,
	qr QRIssuer,
	log *zap.SugaredLogger,
) *ViolationService {
	return &ViolationService{
		violations: violations,
		audit:      audit,
		qr:         qr,
		log:        log,
	}
}

// Add stores a new Unpaid violation together with its QR code path.
// The row, the image and the path are committed as one unit: a failed QR
// write rolls the row back and a failed commit removes the image.
func (svc *ViolationService) Add(ctx context.Context, officerID uint, in AddViolationInput) (*models.Violation, error) {
	v, err := in.parse()
	if err != nil {
		return nil, err
	}

	var issued string
	err = svc.violations.WithTx(ctx, func(tx database.ViolationRepository) error {
		if err := tx.Insert(ctx, v); err != nil {
			return err
		}

		path, err := svc.qr.Issue(v.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrQRIssue, err)
		}
		issued = path
		v.QRCodePath = &path

		return tx.Update(ctx, v)
	})
	if err != nil {
		if issued != "" {
			if rmErr := svc.qr.Remove(issued); rmErr != nil {
				svc.log.Warnw("failed to remove orphaned qr code", "path", issued, "err", rmErr)
			}
		}
		svc.log.Errorw("failed to add violation", "vehicle_number", v.VehicleNumber, "err", err)
		return nil, err
	}

	svc.record(ctx, officerID, v.ID, models.AuditActionCreate,
		fmt.Sprintf("%s for %s at %s, fine %s", v.ViolationType, v.VehicleNumber, v.Location, v.FormattedFine()))

	svc.log.Infow("violation added", "violation_id", v.ID, "officer_id", officerID)
	return v, nil
}

// List returns every violation, or only those whose vehicle number contains search.
func (svc *ViolationService) List(ctx context.Context, search string) ([]models.Violation, error) {
	list, err := svc.violations.FindByVehicleSubstring(ctx, strings.TrimSpace(search))
	if err != nil {
		svc.log.Errorw("failed to list violations", "search", search, "err", err)
		return nil, err
	}
	return list, nil
}

func (svc *ViolationService) Get(ctx context.Context, id uint) (*models.Violation, error) {
	v, err := svc.violations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		svc.log.Errorw("failed to load violation", "violation_id", id, "err", err)
		return nil, err
	}
	return v, nil
}

// ToggleStatus flips Unpaid and Paid and returns the updated record.
func (svc *ViolationService) ToggleStatus(ctx context.Context, officerID, id uint) (*models.Violation, error) {
	var (
		updated *models.Violation
		from    models.ViolationStatus
	)
	err := svc.violations.WithTx(ctx, func(tx database.ViolationRepository) error {
		v, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		from = v.Status
		v.Status = v.Status.Toggled()
		if err := tx.Update(ctx, v); err != nil {
			return err
		}
		updated = v
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		svc.log.Errorw("failed to toggle violation status", "violation_id", id, "err", err)
		return nil, err
	}

	svc.record(ctx, officerID, id, models.AuditActionStatusChange,
		fmt.Sprintf("%s -> %s", from, updated.Status))

	return updated, nil
}

// RecentActivity returns the newest audit entries.
func (svc *ViolationService) RecentActivity(ctx context.Context, limit int) ([]models.AuditLog, error) {
	logs, err := svc.audit.Latest(ctx, limit)
	if err != nil {
		svc.log.Errorw("failed to load audit log", "err", err)
		return nil, err
	}
	return logs, nil
}

// audit failures never undo the officer action
func (svc *ViolationService) record(ctx context.Context, officerID, violationID uint, action, details string) {
	err := svc.audit.Record(ctx, &models.AuditLog{
		UserID:   officerID,
		Entity:   models.AuditEntityViolation,
		EntityID: violationID,
		Action:   action,
		Details:  details,
	})
	if err != nil {
		svc.log.Warnw("failed to write audit log",
			"violation_id", violationID,
			"action", action,
			"err", err,
		)
	}
}
