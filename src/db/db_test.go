package db

import (
	"log"
	"regexp"
	"testing"

	"odyssey/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB opens a gorm handle over the sqlmock connection, so no
// real server is dialed.
func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestDB(t *testing.T) {
	gormDB, _ := NewMockDB()
	NewDB(gormDB)

	assert.Same(t, gormDB, GetDb())
	assert.Equal(t, "postgres", GetDb().Name())
}

func TestUserStoreCountByRole(t *testing.T) {
	gormDB, mock := NewMockDB()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE role = $1`)).
		WithArgs("AGENT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewUserStore(gormDB).CountByRole(types.ROLE_AGENT)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageStoreCounts(t *testing.T) {
	gormDB, mock := NewMockDB()
	store := NewPackageStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "travel_packages"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	total, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "travel_packages" WHERE status = $1`)).
		WithArgs("PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	pending, err := store.CountByStatus(types.PACKAGE_PENDING)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}
