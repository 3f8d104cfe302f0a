package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlust-rentals/rental-service/internal/models"
)

func TestPackageRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	rows := sqlmock.NewRows([]string{"id", "package_id", "package_name", "package_type", "price_per_day", "duration", "additional_features"}).
		AddRow("p-1", 1, "City Hopper", models.PackageStandard, 45.0, `["24h"]`, `{"gps_navigation":true}`).
		AddRow("p-2", 2, "Coastal Cruiser", models.PackagePremium, 120.0, `["24h","48h"]`, `{}`)
	mock.ExpectQuery(`SELECT \* FROM "packages" ORDER BY package_id ASC`).WillReturnRows(rows)

	pkgs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, []string{"24h"}, pkgs[0].Duration)
	assert.True(t, pkgs[0].AdditionalFeatures["gps_navigation"])
	assert.Equal(t, []string{"24h", "48h"}, pkgs[1].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "packages" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPackageRepository_ExistsByPackageID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "packages" WHERE package_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "packages" WHERE package_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByPackageID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPackageID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPackageRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectExec(`INSERT INTO "packages"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.Package{ID: "p-1", PackageID: 1, PackageName: "City Hopper"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPackageRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectExec(`UPDATE "packages" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), &models.Package{ID: "p-1", PackageID: 1, PackageName: "City Hopper"}))

	mock.ExpectExec(`UPDATE "packages" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), &models.Package{ID: "missing", PackageID: 9})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPackageRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectExec(`DELETE FROM "packages" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
