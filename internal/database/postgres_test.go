package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"violation-tracker/internal/config"
	"violation-tracker/internal/logger"
	"violation-tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestViolationRepository_Postgres_GetByIDNotFound(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewViolationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "violations" WHERE "violations"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_number"}))

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_Postgres_GetByIDError(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewViolationRepository(db)

	reset := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "violations"`).WillReturnError(reset)

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, reset)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_Postgres_FindEscapesLike(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewViolationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE vehicle_number LIKE $1 ESCAPE '\'`)).
		WithArgs(`%AB\_12%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_number", "status"}).
			AddRow(3, "KA_AB_12", "Unpaid"))

	got, err := repo.FindByVehicleSubstring(context.Background(), "AB_12")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, models.StatusUnpaid, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_Postgres_Insert(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewViolationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "violations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	v := newViolation("KA01AB1234")
	require.NoError(t, repo.Insert(context.Background(), v))
	assert.Equal(t, uint(42), v.ID)
	assert.Equal(t, models.StatusUnpaid, v.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationRepository_Postgres_UpdateMissingRow(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewViolationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "violations" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	v := newViolation("KA01AB1234")
	v.ID = 99
	assert.ErrorIs(t, repo.Update(context.Background(), v), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_PostgresContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_USER":     "postgres",
				"POSTGRES_DB":       "violations",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	retryDelay = 500 * time.Millisecond
	db, err := Open(&config.Config{
		DBDriver: config.DriverPostgres,
		DBDSN:    fmt.Sprintf("postgres://postgres:password@%s:%d/violations?sslmode=disable", host, port.Int()),
	}, logger.Nop())
	require.NoError(t, err)

	users := NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &models.User{Username: "alice", PasswordHash: "h"}))
	assert.ErrorIs(t, users.Create(ctx, &models.User{Username: "alice", PasswordHash: "h"}), ErrDuplicate)

	violations := NewViolationRepository(db)
	for _, plate := range []string{"KA01AB1234", "ka01ab9999", "MH02XY1111"} {
		require.NoError(t, violations.Insert(ctx, newViolation(plate)))
	}

	// postgres LIKE is case sensitive
	got, err := violations.FindByVehicleSubstring(ctx, "AB")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "KA01AB1234", got[0].VehicleNumber)

	_, err = violations.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}
